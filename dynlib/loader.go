package dynlib

// Handle is an opaque native library handle. The zero value means no
// handle. Handles published by a Registry stay mapped for the life of
// the process and are never explicitly released.
type Handle uintptr

// Loader abstracts the platform dynamic loader. Implementations must be
// safe for concurrent use, and Open must be idempotent: redundant opens
// of the same resolved library return an equivalent handle.
type Loader interface {
	// Open loads the library designated by name and returns its handle.
	Open(name string) (Handle, error)
	// Lookup resolves symbol against h and returns its address.
	Lookup(h Handle, symbol string) (uintptr, error)
	// Self returns the handle designating the running executable image.
	Self() Handle
	// Default returns the handle designating the loader's default
	// lookup namespace.
	Default() Handle
}
