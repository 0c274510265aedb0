package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gen2brain/sdl3"
)

func main() {
	var (
		channels  int
		list      bool
		define    bool
		signed    bool
		bigEndian bool
		float     bool
		bits      uint
	)

	flag.IntVar(&channels, "channels", 2, "The channel count used to compute the frame size.")
	flag.BoolVar(&list, "list", false, "List all defined audio formats.")
	flag.BoolVar(&define, "define", false, "Build a format code from -signed, -big, -float and -bits.")
	flag.BoolVar(&signed, "signed", true, "Signed samples (with -define).")
	flag.BoolVar(&bigEndian, "big", false, "Big-endian samples (with -define).")
	flag.BoolVar(&float, "float", false, "Floating point samples (with -define).")
	flag.UintVar(&bits, "bits", 16, "Bits per sample (with -define).")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [format...]\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Decodes SDL audio format codes (0x8010) or names (S16LE, f32).")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
	}

	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: colorable.NewColorableStderr(),
	})

	var formats []sdl.AudioFormat

	switch {
	case list:
		formats = sdl.AudioFormats()
	case define:
		formats = append(formats, sdl.DefineAudioFormat(signed, bigEndian, float, uint32(bits)))
	case flag.NArg() == 0:
		flag.Usage()
		os.Exit(1)
	}

	for _, arg := range flag.Args() {
		f, err := parseFormat(arg)
		if err != nil {
			log.Fatal().
				Err(err).
				Str("arg", arg).
				Msg("Unable to parse audio format")
		}

		formats = append(formats, f)
	}

	for _, f := range formats {
		printFormat(f, channels)
	}
}

// parseFormat accepts a numeric code in any base strconv understands, or a format name.
func parseFormat(arg string) (sdl.AudioFormat, error) {
	if code, err := strconv.ParseUint(arg, 0, 32); err == nil {
		return sdl.AudioFormat(code), nil
	}

	return sdl.ParseAudioFormat(arg)
}

func printFormat(f sdl.AudioFormat, channels int) {
	fmt.Printf("%s (0x%04x):\n", f, uint32(f))

	if f == sdl.AUDIO_UNKNOWN {
		fmt.Println("  unspecified format")
		fmt.Println()

		return
	}

	fmt.Printf("%12s: %t\n", "Signed", f.IsSigned())
	fmt.Printf("%12s: %t\n", "Big endian", f.IsBigEndian())
	fmt.Printf("%12s: %t\n", "Float", f.IsFloat())
	fmt.Printf("%12s: %d\n", "Bits", f.BitSize())
	fmt.Printf("%12s: %d\n", "Bytes", f.ByteSize())
	fmt.Printf("%12s: 0x%02x\n", "Silence", f.SilenceValue())
	fmt.Printf("%12s: %t\n", "Native", f.IsNative())
	fmt.Printf("%12s: %d bytes (%d channels)\n", "Frame size", sdl.AudioFrameSize(f, channels), channels)
	fmt.Println()
}
