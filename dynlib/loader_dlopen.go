//go:build darwin || freebsd || linux

package dynlib

import (
	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/quill-lang/native-bridge/errors"
)

// pseudoDefault is the handle this loader publishes for the default
// namespace and the executable image. purego's RTLD_DEFAULT is zero on
// Linux, which would collide with the "no handle" convention, so the
// loader keeps its own marker and translates at lookup time.
const pseudoDefault = ^uintptr(0)

type dlopenLoader struct{}

// NewSystemLoader returns the platform loader, backed by the dlopen
// family. Open probes the candidate spellings of a name in order with
// RTLD_NOW|RTLD_GLOBAL so resolved libraries join the global scope.
func NewSystemLoader() Loader {
	return dlopenLoader{}
}

func (dlopenLoader) Open(name string) (Handle, error) {
	probe := &errors.ProbeError{Name: name}
	for _, path := range Candidates(name) {
		h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil && h != 0 {
			if len(probe.Attempts) > 0 {
				Logger().Debug("library opened after probing",
					zap.String("library", name),
					zap.String("path", path))
			}
			return Handle(h), nil
		}
		probe.Attempts = append(probe.Attempts, errors.ProbeAttempt{Path: path, Err: err})
	}
	return 0, probe
}

func (dlopenLoader) Lookup(h Handle, symbol string) (uintptr, error) {
	target := uintptr(h)
	if target == pseudoDefault {
		target = purego.RTLD_DEFAULT
	}
	return purego.Dlsym(target, symbol)
}

// Self returns the default-namespace handle: on ELF and Mach-O
// platforms the default scope already covers the executable image.
func (dlopenLoader) Self() Handle {
	return Handle(pseudoDefault)
}

func (dlopenLoader) Default() Handle {
	return Handle(pseudoDefault)
}
