package sdl

import (
	"encoding/binary"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sys/cpu"
)

// AudioFormatNames provides human-readable names for audio formats.
// The names are the SDL_AUDIO_ constant suffixes.
var AudioFormatNames = map[AudioFormat]string{
	AUDIO_UNKNOWN: "UNKNOWN",
	AUDIO_U8:      "U8",
	AUDIO_S8:      "S8",
	AUDIO_S16LE:   "S16LE",
	AUDIO_S16BE:   "S16BE",
	AUDIO_S32LE:   "S32LE",
	AUDIO_S32BE:   "S32BE",
	AUDIO_F32LE:   "F32LE",
	AUDIO_F32BE:   "F32BE",
}

// audioFormatAliases are the native byte order names accepted by ParseAudioFormat.
var audioFormatAliases = map[string]AudioFormat{
	"S16": AUDIO_S16,
	"S32": AUDIO_S32,
	"F32": AUDIO_F32,
}

// AudioFormats returns all defined audio formats sorted by value.
func AudioFormats() []AudioFormat {
	formats := make([]AudioFormat, 0, len(AudioFormatNames))
	for f := range AudioFormatNames {
		formats = append(formats, f)
	}

	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })

	return formats
}

// ParseAudioFormat returns the audio format with the given name.
// Matching is case-insensitive and accepts an optional "SDL_AUDIO_" or "AUDIO_" prefix,
// as well as the native byte order aliases S16, S32 and F32.
func ParseAudioFormat(name string) (AudioFormat, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	key = strings.TrimPrefix(key, "SDL_")
	key = strings.TrimPrefix(key, "AUDIO_")

	if f, ok := audioFormatAliases[key]; ok {
		return f, nil
	}

	for f, n := range AudioFormatNames {
		if n == key {
			return f, nil
		}
	}

	return AUDIO_UNKNOWN, fmt.Errorf("%w: %q", ErrUnknownAudioFormat, name)
}

// String returns the SDL name of a defined format, or a decoded description of any other code.
func (f AudioFormat) String() string {
	if name, ok := AudioFormatNames[f]; ok {
		return name
	}

	sign := "unsigned"
	if f.IsSigned() {
		sign = "signed"
	}

	order := "little-endian"
	if f.IsBigEndian() {
		order = "big-endian"
	}

	kind := "int"
	if f.IsFloat() {
		kind = "float"
	}

	return fmt.Sprintf("AudioFormat(0x%04x: %s %s %s %d-bit)", uint32(f), sign, order, kind, f.BitSize())
}

// SilenceValue returns the byte value that represents silence for the format.
// Unsigned 8-bit audio is centered on 0x80, everything else on zero.
func (f AudioFormat) SilenceValue() byte {
	if f == AUDIO_U8 {
		return 0x80
	}

	return 0x00
}

// ByteOrder returns the byte order of the samples.
func (f AudioFormat) ByteOrder() binary.ByteOrder {
	if f.IsBigEndian() {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNative reports whether the format's byte order matches the host.
func (f AudioFormat) IsNative() bool {
	return f.IsBigEndian() == cpu.IsBigEndian
}
