//go:build mips || mips64 || ppc64 || s390x

package sdl

// Native byte order aliases. On big-endian architectures these are the BE formats.
const (
	AUDIO_S16 = AUDIO_S16BE
	AUDIO_S32 = AUDIO_S32BE
	AUDIO_F32 = AUDIO_F32BE
)
