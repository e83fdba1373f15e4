package dynlib

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/quill-lang/native-bridge/errors"
)

// Reserved library names resolved without consulting the handle cache.
const (
	// SelfLibrary designates the running executable image.
	SelfLibrary = "@self"
	// DefaultLibrary designates the loader's default lookup namespace,
	// the same scope an empty name resolves to.
	DefaultLibrary = "@default"
)

// cell is a write-once address cell. Publication is compare-and-swap:
// the first non-zero value wins and later publications are ignored,
// so producers must be idempotent for racing publications to be
// equivalent.
type cell struct {
	v atomic.Uintptr
}

func (c *cell) load() uintptr {
	return c.v.Load()
}

// publish installs v unless a value is already present and returns
// whichever value ended up published. Publishing zero is a no-op.
func (c *cell) publish(v uintptr) uintptr {
	if v == 0 {
		return c.v.Load()
	}
	if c.v.CompareAndSwap(0, v) {
		return v
	}
	return c.v.Load()
}

// Registry is the process-wide library handle cache. The name map is
// append-only: once a handle is published for a name it is never
// replaced or removed, and the handle is never released. A Registry is
// meant to live for the whole process; it has no teardown.
type Registry struct {
	loader Loader

	mu    sync.Mutex // guards the structure of names, never a slot's contents
	names map[string]*cell
}

// NewRegistry returns a registry backed by loader.
func NewRegistry(loader Loader) *Registry {
	return &Registry{
		loader: loader,
		names:  make(map[string]*cell),
	}
}

// Resolve returns the handle for the library named name, loading it on
// first use. The empty name and the reserved names bypass the cache.
//
// Resolve does not fail: a library that cannot be loaded yields the
// zero handle and leaves the slot empty, so a later call may retry.
// Concurrent first-time resolutions of the same name may each load the
// library; the loads are idempotent and the first published handle
// wins, so redundant work is simply unobserved.
func (r *Registry) Resolve(name string) Handle {
	switch name {
	case "", DefaultLibrary:
		return r.loader.Default()
	case SelfLibrary:
		return r.loader.Self()
	}

	r.mu.Lock()
	c := r.names[name]
	if c == nil {
		c = &cell{}
		r.names[name] = c
	}
	r.mu.Unlock()

	if h := Handle(c.load()); h != 0 {
		return h
	}
	h, err := r.loader.Open(name)
	if err != nil || h == 0 {
		Logger().Debug("library load failed",
			zap.String("library", name),
			zap.Error(err))
		return 0
	}
	return Handle(c.publish(uintptr(h)))
}

// LoadAndLookup resolves symbol within the library named name, caching
// the library handle in slot. The first call fills the slot; every call
// after that is lock-free. Loader failures come back as structured
// errors, never panics.
func (r *Registry) LoadAndLookup(slot *Slot, name, symbol string) (uintptr, error) {
	h := Handle(slot.h.load())
	if h == 0 {
		h = Handle(slot.h.publish(uintptr(r.Resolve(name))))
	}
	if h == 0 {
		return 0, errors.LibraryNotFound(name)
	}
	addr, err := r.loader.Lookup(h, symbol)
	if err != nil {
		return 0, errors.SymbolNotFound(name, symbol, err)
	}
	return addr, nil
}
