package sdl

import (
	"fmt"
	"time"

	"github.com/go-audio/audio"
)

// AudioSpec mirrors SDL_AudioSpec.
// The field order and widths must match the C struct exactly (12 bytes, 4-byte aligned).
type AudioSpec struct {
	Format   AudioFormat // SDL_AudioFormat
	Channels int32       // int
	Freq     int32       // int, sample frames per second
}

// FrameSize returns the size in bytes of one sample frame.
func (s AudioSpec) FrameSize() int {
	return AudioFrameSize(s.Format, int(s.Channels))
}

// BytesPerSecond returns the data rate of a stream with this spec.
func (s AudioSpec) BytesPerSecond() int {
	return s.FrameSize() * int(s.Freq)
}

// FramesToBytes converts a number of frames to bytes.
func (s AudioSpec) FramesToBytes(frames uint64) uint64 {
	return frames * uint64(s.FrameSize())
}

// BytesToFrames converts a number of bytes to whole frames.
func (s AudioSpec) BytesToFrames(bytes uint64) uint64 {
	frameSize := uint64(s.FrameSize())
	if frameSize == 0 {
		return 0
	}

	return bytes / frameSize
}

// Duration returns the playback time of the given number of bytes.
// Whole seconds and the remainder are scaled separately so long streams do not overflow.
func (s AudioSpec) Duration(bytes int64) time.Duration {
	bps := int64(s.BytesPerSecond())
	if bps == 0 {
		return 0
	}

	sec := bytes / bps
	rem := bytes % bps

	return time.Duration(sec)*time.Second + time.Duration(rem*int64(time.Second)/bps)
}

// String returns a human-readable representation of the AudioSpec.
func (s AudioSpec) String() string {
	return fmt.Sprintf("%s, %d channels, %d Hz", s.Format, s.Channels, s.Freq)
}

// GoAudioFormat converts the spec to a go-audio format.
func (s AudioSpec) GoAudioFormat() *audio.Format {
	return &audio.Format{
		NumChannels: int(s.Channels),
		SampleRate:  int(s.Freq),
	}
}

// AudioSpecFromGoAudio builds an AudioSpec from a go-audio format and the sample layout.
// Integer samples map to U8, S16LE or S32LE, float samples to F32LE.
func AudioSpecFromGoAudio(f *audio.Format, bitDepth int, float bool) (AudioSpec, error) {
	if f == nil {
		return AudioSpec{}, fmt.Errorf("%w: nil format", ErrUnsupportedFormat)
	}

	var format AudioFormat
	switch {
	case float && bitDepth == 32:
		format = AUDIO_F32LE
	case !float && bitDepth == 8:
		format = AUDIO_U8
	case !float && bitDepth == 16:
		format = AUDIO_S16LE
	case !float && bitDepth == 32:
		format = AUDIO_S32LE
	default:
		kind := "int"
		if float {
			kind = "float"
		}

		return AudioSpec{}, fmt.Errorf("%w: %d-bit %s", ErrUnsupportedFormat, bitDepth, kind)
	}

	return AudioSpec{
		Format:   format,
		Channels: int32(f.NumChannels),
		Freq:     int32(f.SampleRate),
	}, nil
}
