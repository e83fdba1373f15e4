// Package dynlib resolves dynamic libraries and the symbols inside them.
//
// A Registry is the process-wide library handle cache: each library name
// is loaded at most once per process, the mapping is append-only, and a
// published handle is never replaced or released. A short mutex guards
// only the structure of the name map; it is never held across a native
// load, and handles are published and read atomically. Concurrent
// first-time resolutions of one name may load redundantly, which the
// platform loader makes idempotent; the first published handle wins.
//
// A Slot is a caller-owned cell caching the library handle for one
// (library, symbol) use site. It fills at most once and every read after
// that is a plain atomic load, keeping repeated foreign-call dispatch off
// every lock.
//
// # Resolution
//
//	reg := dynlib.NewRegistry(dynlib.NewSystemLoader())
//
//	var slot dynlib.Slot
//	addr, err := reg.LoadAndLookup(&slot, "m", "cos")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Resolve never returns an error: a library that cannot be loaded yields
// the zero handle and the failure is surfaced by LoadAndLookup, which is
// the layer that knows the symbol being asked for.
//
// # Reserved Names
//
// The empty name and DefaultLibrary resolve to the loader's default
// lookup namespace; SelfLibrary resolves to the running executable.
// Reserved names bypass the cache entirely.
//
// # Name Probing
//
// Open probes the platform spellings of a bare library name in order:
// the name as given, then with the platform suffix, then with the lib
// prefix. Names carrying a path separator or a recognized suffix are
// probed as-is. See Candidates.
package dynlib
