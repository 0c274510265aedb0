//go:build 386 || amd64 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm

package sdl

// Native byte order aliases. On little-endian architectures these are the LE formats.
const (
	AUDIO_S16 = AUDIO_S16LE
	AUDIO_S32 = AUDIO_S32LE
	AUDIO_F32 = AUDIO_F32LE
)
