//go:build windows

package dynlib

import (
	"golang.org/x/sys/windows"

	"github.com/quill-lang/native-bridge/errors"
)

type dllLoader struct {
	exe Handle
}

// NewSystemLoader returns the platform loader, backed by LoadLibrary.
// Windows has no default lookup namespace, so the executable module
// stands in for both reserved scopes.
func NewSystemLoader() Loader {
	h, err := windows.GetModuleHandle(nil)
	if err != nil {
		Logger().Warn("could not resolve executable module handle")
		h = 0
	}
	return &dllLoader{exe: Handle(h)}
}

func (l *dllLoader) Open(name string) (Handle, error) {
	probe := &errors.ProbeError{Name: name}
	for _, path := range Candidates(name) {
		h, err := windows.LoadLibrary(path)
		if err == nil && h != 0 {
			return Handle(h), nil
		}
		probe.Attempts = append(probe.Attempts, errors.ProbeAttempt{Path: path, Err: err})
	}
	return 0, probe
}

func (l *dllLoader) Lookup(h Handle, symbol string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(h), symbol)
}

func (l *dllLoader) Self() Handle {
	return l.exe
}

func (l *dllLoader) Default() Handle {
	return l.exe
}
