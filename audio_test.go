package sdl_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/cpu"

	"github.com/gen2brain/sdl3"
)

func TestAudioFormatNames(t *testing.T) {
	formats := sdl.AudioFormats()
	require.Len(t, formats, 9)
	assert.Equal(t, sdl.AUDIO_UNKNOWN, formats[0])
	assert.Equal(t, sdl.AUDIO_F32BE, formats[len(formats)-1])

	for i := 1; i < len(formats); i++ {
		assert.Less(t, uint32(formats[i-1]), uint32(formats[i]))
	}

	for _, f := range formats {
		name, ok := sdl.AudioFormatNames[f]
		require.True(t, ok)
		assert.Equal(t, name, f.String())
	}
}

func TestAudioFormatString(t *testing.T) {
	assert.Equal(t, "S16LE", sdl.AUDIO_S16LE.String())
	assert.Equal(t, "F32BE", sdl.AUDIO_F32BE.String())
	assert.Equal(t, "AudioFormat(0x0111: unsigned little-endian float 17-bit)", sdl.AudioFormat(0x0111).String())
	assert.Equal(t, "AudioFormat(0x9018: signed big-endian int 24-bit)", sdl.AudioFormat(0x9018).String())
}

func TestParseAudioFormat(t *testing.T) {
	testCases := map[string]sdl.AudioFormat{
		"U8":              sdl.AUDIO_U8,
		"s8":              sdl.AUDIO_S8,
		"S16LE":           sdl.AUDIO_S16LE,
		"s16be":           sdl.AUDIO_S16BE,
		"AUDIO_S32LE":     sdl.AUDIO_S32LE,
		"SDL_AUDIO_S32BE": sdl.AUDIO_S32BE,
		" f32le ":         sdl.AUDIO_F32LE,
		"sdl_audio_f32be": sdl.AUDIO_F32BE,
		"unknown":         sdl.AUDIO_UNKNOWN,
		"S16":             sdl.AUDIO_S16,
		"S32":             sdl.AUDIO_S32,
		"f32":             sdl.AUDIO_F32,
	}

	for name, want := range testCases {
		t.Run(name, func(t *testing.T) {
			f, err := sdl.ParseAudioFormat(name)
			require.NoError(t, err)
			assert.Equal(t, want, f)
		})
	}

	for _, name := range []string{"", "S24LE", "float", "0x8010"} {
		_, err := sdl.ParseAudioFormat(name)
		assert.ErrorIs(t, err, sdl.ErrUnknownAudioFormat, "name %q", name)
	}
}

func TestAudioFormatSilenceValue(t *testing.T) {
	assert.Equal(t, byte(0x80), sdl.AUDIO_U8.SilenceValue())

	for _, f := range []sdl.AudioFormat{sdl.AUDIO_S8, sdl.AUDIO_S16LE, sdl.AUDIO_S32BE, sdl.AUDIO_F32LE, sdl.AUDIO_UNKNOWN} {
		assert.Equal(t, byte(0x00), f.SilenceValue(), "format %s", f)
	}
}

func TestAudioFormatByteOrder(t *testing.T) {
	assert.Equal(t, binary.LittleEndian, sdl.AUDIO_S16LE.ByteOrder())
	assert.Equal(t, binary.BigEndian, sdl.AUDIO_S16BE.ByteOrder())
	assert.Equal(t, binary.BigEndian, sdl.AUDIO_F32BE.ByteOrder())

	buf := make([]byte, 2)
	sdl.AUDIO_S16BE.ByteOrder().PutUint16(buf, 0x1234)
	assert.Equal(t, []byte{0x12, 0x34}, buf)
}

func TestAudioFormatIsNative(t *testing.T) {
	assert.True(t, sdl.AUDIO_S16.IsNative())
	assert.True(t, sdl.AUDIO_F32.IsNative())
	assert.Equal(t, !cpu.IsBigEndian, sdl.AUDIO_S32LE.IsNative())
	assert.Equal(t, cpu.IsBigEndian, sdl.AUDIO_S32BE.IsNative())
}
