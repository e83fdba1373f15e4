//go:build !amd64 && !arm64

package emit

import "runtime"

const archSupported = false

var archName = runtime.GOARCH

func encodeJump([]byte, uintptr, uintptr) int {
	panic("emit: no trampoline template for " + archName)
}
