//go:build darwin || freebsd || linux

package execmem

import "golang.org/x/sys/unix"

func mapChunk(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC,
		unix.MAP_PRIVATE|unix.MAP_ANON)
}

func unmapChunk(chunk []byte) error {
	return unix.Munmap(chunk)
}
