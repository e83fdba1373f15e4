//go:build windows

package execmem

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func mapChunk(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_COMMIT|windows.MEM_RESERVE,
		windows.PAGE_EXECUTE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func unmapChunk(chunk []byte) error {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(chunk)))
	return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}
