//go:build !darwin && !freebsd && !linux && !windows

package execmem

import "github.com/quill-lang/native-bridge/errors"

func mapChunk(int) ([]byte, error) {
	return nil, errors.Unsupported(errors.PhaseAlloc, "executable memory")
}

func unmapChunk([]byte) error {
	return nil
}
