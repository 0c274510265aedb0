// Package sdl provides Go definitions for the SDL3 audio format ABI.
//
// The values and struct layouts in this package match the SDL3 C headers bit for bit,
// so they can be handed to the native library without translation.
package sdl

// AudioFormat describes the layout of a single PCM sample.
// These values correspond to the SDL_AUDIO_* constants in SDL_audio.h.
//
// Only the low 16 bits are meaningful:
//
//	++-----------------------sample is signed if set
//	||
//	||       ++-----------sample is bigendian if set
//	||       ||
//	||       ||          ++---sample is float if set
//	||       ||          ||
//	||       ||          || +=--sample bit size--++
//	||       ||          || ||                   ||
//	15 14 13 12 11 10 09 08 07 06 05 04 03 02 01 00
//
// The C type is an enum, so the value travels as a 32-bit unsigned integer.
type AudioFormat uint32

// Bit masks for the fields of an AudioFormat.
const (
	AUDIO_MASK_BITSIZE    = 0xFF
	AUDIO_MASK_FLOAT      = 1 << 8
	AUDIO_MASK_BIG_ENDIAN = 1 << 12
	AUDIO_MASK_SIGNED     = 1 << 15
)

const (
	AUDIO_UNKNOWN AudioFormat = 0x0000 // Unspecified audio format.
	AUDIO_U8      AudioFormat = 0x0008 // Unsigned 8-bit samples.
	AUDIO_S8      AudioFormat = 0x8008 // Signed 8-bit samples.
	AUDIO_S16LE   AudioFormat = 0x8010 // Signed 16-bit samples, little-endian.
	AUDIO_S16BE   AudioFormat = 0x9010 // Signed 16-bit samples, big-endian.
	AUDIO_S32LE   AudioFormat = 0x8020 // Signed 32-bit samples, little-endian.
	AUDIO_S32BE   AudioFormat = 0x9020 // Signed 32-bit samples, big-endian.
	AUDIO_F32LE   AudioFormat = 0x8120 // 32-bit floating point samples, little-endian.
	AUDIO_F32BE   AudioFormat = 0x9120 // 32-bit floating point samples, big-endian.
)

// DefineAudioFormat packs the sample properties into an AudioFormat, as SDL_DEFINE_AUDIO_FORMAT does.
// The size is masked to 8 bits and no combination is rejected, so DefineAudioFormat(false, false, true, 272)
// yields an unsigned 16-bit float code.
func DefineAudioFormat(signed, bigEndian, float bool, size uint32) AudioFormat {
	var f AudioFormat
	if signed {
		f |= AUDIO_MASK_SIGNED
	}

	if bigEndian {
		f |= AUDIO_MASK_BIG_ENDIAN
	}

	if float {
		f |= AUDIO_MASK_FLOAT
	}

	return f | AudioFormat(size&AUDIO_MASK_BITSIZE)
}

// BitSize returns the number of bits per sample.
func (f AudioFormat) BitSize() uint32 {
	return uint32(f & AUDIO_MASK_BITSIZE)
}

// ByteSize returns the number of bytes per sample.
func (f AudioFormat) ByteSize() uint32 {
	return f.BitSize() / 8
}

// IsFloat reports whether the samples are IEEE floating point.
func (f AudioFormat) IsFloat() bool {
	return f&AUDIO_MASK_FLOAT != 0
}

// IsInt reports whether the samples are integers.
func (f AudioFormat) IsInt() bool {
	return !f.IsFloat()
}

// IsBigEndian reports whether the samples are stored most significant byte first.
func (f AudioFormat) IsBigEndian() bool {
	return f&AUDIO_MASK_BIG_ENDIAN != 0
}

// IsLittleEndian reports whether the samples are stored least significant byte first.
func (f AudioFormat) IsLittleEndian() bool {
	return !f.IsBigEndian()
}

// IsSigned reports whether the samples are signed.
func (f AudioFormat) IsSigned() bool {
	return f&AUDIO_MASK_SIGNED != 0
}

// IsUnsigned reports whether the samples are unsigned.
func (f AudioFormat) IsUnsigned() bool {
	return !f.IsSigned()
}

// AudioFrameSize returns the size in bytes of one sample frame, i.e. one sample for every channel.
func AudioFrameSize(format AudioFormat, channels int) int {
	return int(format.ByteSize()) * channels
}
