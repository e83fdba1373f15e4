//go:build arm64

package emit

const (
	archSupported = true
	archName      = "arm64"
)

func encodeJump(dst []byte, params, dispatch uintptr) int {
	return EncodeJumpARM64(dst, params, dispatch)
}
