package sdl

import "errors"

var (
	// ErrUnknownAudioFormat is returned when a format name does not match any SDL_AUDIO_* constant.
	ErrUnknownAudioFormat = errors.New("sdl: unknown audio format")
	// ErrUnsupportedFormat is returned when a sample layout has no SDL audio format equivalent.
	ErrUnsupportedFormat = errors.New("sdl: unsupported sample format")
	// ErrInvalidWAV is returned when a stream does not contain a readable RIFF/WAVE header.
	ErrInvalidWAV = errors.New("sdl: invalid WAV file")
)
