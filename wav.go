package sdl

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/riff"
	"github.com/go-audio/wav"
)

// WAV format tags.
const (
	wavFormatPCM        = 1
	wavFormatFloat      = 3
	wavFormatExtensible = 0xFFFE
)

// wavExtensibleFmt mirrors the fmt chunk of a WAVE_FORMAT_EXTENSIBLE file (WAVEFORMATEXTENSIBLE).
type wavExtensibleFmt struct {
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	ExtensionSize uint16
	ValidBits     uint16
	ChannelMask   uint32
	SubFormat     [16]byte // GUID; the first two bytes carry the format tag
}

// LoadWAVSpec reads the RIFF/WAVE header from r and returns the audio spec that SDL_LoadWAV reports for it.
// WAVE_FORMAT_EXTENSIBLE files are resolved through their sub-format GUID.
// Only the header is inspected; sample data is not decoded.
func LoadWAVSpec(r io.ReadSeeker) (AudioSpec, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		if err := decoder.Err(); err != nil {
			return AudioSpec{}, fmt.Errorf("%w: %w", ErrInvalidWAV, err)
		}

		return AudioSpec{}, ErrInvalidWAV
	}

	tag := decoder.WavAudioFormat
	if tag == wavFormatExtensible {
		subFormat, err := wavSubFormat(r)
		if err != nil {
			return AudioSpec{}, err
		}

		tag = subFormat
	}

	var float bool
	switch tag {
	case wavFormatPCM:
	case wavFormatFloat:
		float = true
	default:
		return AudioSpec{}, fmt.Errorf("%w: WAV format tag %d", ErrUnsupportedFormat, tag)
	}

	spec, err := AudioSpecFromGoAudio(decoder.Format(), int(decoder.BitDepth), float)
	if err != nil {
		return AudioSpec{}, fmt.Errorf("failed to map WAV format: %w", err)
	}

	return spec, nil
}

// wavSubFormat rewinds r and returns the format tag stored in the sub-format GUID of an extensible fmt chunk.
func wavSubFormat(r io.ReadSeeker) (uint16, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("failed to rewind WAV file: %w", err)
	}

	parser := riff.New(r)

	id, _, err := parser.IDnSize()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidWAV, err)
	}

	if id != riff.RiffID {
		return 0, fmt.Errorf("%w: missing RIFF header", ErrInvalidWAV)
	}

	var format [4]byte
	if _, err := io.ReadFull(r, format[:]); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidWAV, err)
	}

	for {
		chunk, err := parser.NextChunk()
		if err != nil {
			return 0, fmt.Errorf("%w: fmt chunk not found: %w", ErrInvalidWAV, err)
		}

		if chunk.ID != riff.FmtID {
			chunk.Drain()

			continue
		}

		var f wavExtensibleFmt
		if chunk.Size < binary.Size(f) {
			return 0, fmt.Errorf("%w: extensible fmt chunk is %d bytes", ErrInvalidWAV, chunk.Size)
		}

		if err := chunk.ReadLE(&f); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidWAV, err)
		}

		return binary.LittleEndian.Uint16(f.SubFormat[:2]), nil
	}
}

// LoadWAVSpecFile opens the named file and returns its audio spec.
func LoadWAVSpecFile(path string) (AudioSpec, error) {
	file, err := os.Open(path)
	if err != nil {
		return AudioSpec{}, fmt.Errorf("failed to open WAV file %s: %w", path, err)
	}
	defer file.Close()

	return LoadWAVSpec(file)
}
