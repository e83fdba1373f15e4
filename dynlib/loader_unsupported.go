//go:build !darwin && !freebsd && !linux && !windows

package dynlib

import (
	"github.com/quill-lang/native-bridge/errors"
)

type unsupportedLoader struct{}

// NewSystemLoader returns a loader that fails every operation; dynamic
// loading is not wired up on this platform.
func NewSystemLoader() Loader {
	return unsupportedLoader{}
}

func (unsupportedLoader) Open(name string) (Handle, error) {
	return 0, errors.Unsupported(errors.PhaseResolve, "dynamic library loading on this platform")
}

func (unsupportedLoader) Lookup(Handle, string) (uintptr, error) {
	return 0, errors.Unsupported(errors.PhaseResolve, "symbol lookup on this platform")
}

func (unsupportedLoader) Self() Handle    { return 0 }
func (unsupportedLoader) Default() Handle { return 0 }
