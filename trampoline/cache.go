package trampoline

import (
	"sync"

	nativebridge "github.com/quill-lang/native-bridge"
)

// Record ties one generated trampoline to its closure and bound
// parameter block. Within a root, exactly one live record exists per
// (binding list, closure) identity pair.
type Record struct {
	entry     uintptr
	params    *ParamBlock
	permanent bool
}

// Entry returns the native entry point foreign callers invoke.
func (r *Record) Entry() uintptr {
	return r.entry
}

// Params returns the bound-parameter block.
func (r *Record) Params() *ParamBlock {
	return r.params
}

// Permanent reports whether the record lives for the whole process.
func (r *Record) Permanent() bool {
	return r.permanent
}

// Cache is one trampoline cache root, owned by a call site. The zero
// Cache is ready for use.
//
// Closures with no formal parameters live in a single flat level keyed
// by closure identity. Parameterized closures key an inner level by the
// identity of their binding list first, so unrelated call sites with
// different parameterizations never collide. The inner level for the
// flat case is never allocated.
type Cache struct {
	mu    sync.RWMutex
	flat  map[nativebridge.Value]*Record
	byEnv map[*nativebridge.BindingList]map[nativebridge.Value]*Record
}

// lookup requires c.mu held (read or write).
func (c *Cache) lookup(fn nativebridge.Value, parameterized bool, bindings *nativebridge.BindingList) *Record {
	if parameterized {
		inner := c.byEnv[bindings]
		if inner == nil {
			return nil
		}
		return inner[fn]
	}
	return c.flat[fn]
}

// insert requires c.mu held for writing.
func (c *Cache) insert(fn nativebridge.Value, parameterized bool, bindings *nativebridge.BindingList, rec *Record) {
	if parameterized {
		if c.byEnv == nil {
			c.byEnv = make(map[*nativebridge.BindingList]map[nativebridge.Value]*Record)
		}
		inner := c.byEnv[bindings]
		if inner == nil {
			inner = make(map[nativebridge.Value]*Record)
			c.byEnv[bindings] = inner
		}
		inner[fn] = rec
		return
	}
	if c.flat == nil {
		c.flat = make(map[nativebridge.Value]*Record)
	}
	c.flat[fn] = rec
}

// Len reports the number of records held by the root.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := len(c.flat)
	for _, inner := range c.byEnv {
		n += len(inner)
	}
	return n
}
