package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/gen2brain/sdl3"
)

// AudioDecoder abstracts the file formats audioinfo can inspect.
type AudioDecoder interface {
	// Spec returns the SDL audio spec of the decoded stream.
	Spec() sdl.AudioSpec
	// Length returns the size of the decoded PCM data in bytes.
	Length() (int64, error)
}

// wavDecoder reports the spec through sdl.LoadWAVSpec and the data size through go-audio.
type wavDecoder struct {
	spec   sdl.AudioSpec
	length int64
}

func newWavDecoder(r io.ReadSeeker) (AudioDecoder, error) {
	spec, err := sdl.LoadWAVSpec(r)
	if err != nil {
		return nil, err
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind WAV file: %w", err)
	}

	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, sdl.ErrInvalidWAV
	}

	return &wavDecoder{spec: spec, length: int64(decoder.PCMSize)}, nil
}

func (w *wavDecoder) Spec() sdl.AudioSpec    { return w.spec }
func (w *wavDecoder) Length() (int64, error) { return w.length, nil }

// mp3Decoder wraps the go-mp3 decoder.
type mp3Decoder struct {
	spec   sdl.AudioSpec
	length int64 // Total decoded size in bytes
}

func newMp3Decoder(r io.Reader) (AudioDecoder, error) {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, err
	}

	return &mp3Decoder{
		spec: sdl.AudioSpec{
			Format:   sdl.AUDIO_S16LE, // always decodes to 16-bit little-endian
			Channels: 2,               // always decodes to stereo
			Freq:     int32(decoder.SampleRate()),
		},
		length: decoder.Length(),
	}, nil
}

func (m *mp3Decoder) Spec() sdl.AudioSpec { return m.spec }

func (m *mp3Decoder) Length() (int64, error) {
	if m.length < 0 {
		return 0, errors.New("unknown stream length")
	}

	return m.length, nil
}
