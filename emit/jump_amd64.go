//go:build amd64

package emit

const (
	archSupported = true
	archName      = "amd64"
)

func encodeJump(dst []byte, params, dispatch uintptr) int {
	return EncodeJumpAMD64(dst, params, dispatch)
}
