package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var help bool
	flag.BoolVar(&help, "help", false, "Show this help message")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <wav-or-mp3-file>\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "\nPrints the SDL audio spec of an audio file.")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		fmt.Fprintln(os.Stderr, "  --help      Show this help message")
	}

	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: colorable.NewColorableStderr(),
	})

	if help || flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	path := flag.Arg(0)

	file, err := os.Open(path)
	if err != nil {
		log.Fatal().
			Err(err).
			Str("path", path).
			Msg("Unable to open file")
	}
	defer file.Close()

	var decoder AudioDecoder
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		decoder, err = newWavDecoder(file)
	case ".mp3":
		decoder, err = newMp3Decoder(file)
	default:
		err = fmt.Errorf("unsupported file extension %q", ext)
	}

	if err != nil {
		log.Fatal().
			Err(err).
			Str("path", path).
			Msg("Unable to read audio file")
	}

	spec := decoder.Spec()

	fmt.Printf("Filename:           %s\n", path)
	fmt.Printf("Format:             %s (0x%04x)\n", spec.Format, uint32(spec.Format))
	fmt.Printf("Channels:           %d\n", spec.Channels)
	fmt.Printf("Sample Rate:        %d Hz\n", spec.Freq)
	fmt.Printf("Frame Size:         %d bytes\n", spec.FrameSize())
	fmt.Printf("Bytes Per Second:   %d\n", spec.BytesPerSecond())

	length, err := decoder.Length()
	if err != nil {
		log.Warn().
			Err(err).
			Str("path", path).
			Msg("Unable to determine stream length")

		return
	}

	fmt.Printf("Duration:           %s\n", spec.Duration(length).Round(time.Millisecond))
	fmt.Printf("Frames:             %d\n", spec.BytesToFrames(uint64(length)))
}
