package dynlib

import (
	"runtime"
	"strings"
)

// Candidates returns the spellings probed, in order, when opening the
// library named name on this platform. A name carrying a path separator
// or a recognized library suffix is probed as-is; a bare name is also
// tried with the platform suffix and with the conventional lib prefix.
func Candidates(name string) []string {
	return candidatesFor(name, runtime.GOOS)
}

func candidatesFor(name, goos string) []string {
	if name == "" {
		return nil
	}
	if strings.ContainsAny(name, `/\`) || hasLibrarySuffix(name, goos) {
		return []string{name}
	}

	out := []string{name}
	switch goos {
	case "darwin":
		out = append(out, name+".dylib")
		if !strings.HasPrefix(name, "lib") {
			out = append(out, "lib"+name+".dylib")
		}
	case "windows":
		out = append(out, name+".dll")
	default:
		out = append(out, name+".so")
		if !strings.HasPrefix(name, "lib") {
			out = append(out, "lib"+name+".so")
		}
	}
	return out
}

// hasLibrarySuffix recognizes fully spelled names, including versioned
// ELF names such as libfoo.so.6.
func hasLibrarySuffix(name, goos string) bool {
	switch goos {
	case "darwin":
		return strings.HasSuffix(name, ".dylib")
	case "windows":
		return strings.HasSuffix(name, ".dll")
	}
	return strings.HasSuffix(name, ".so") || strings.Contains(name, ".so.")
}
