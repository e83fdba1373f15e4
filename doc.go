// Package nativebridge is the foreign-function bridge of the quill runtime.
//
// The bridge does two jobs. It resolves named dynamic libraries and the
// symbols inside them, exactly once per name, with a lock-free read path
// for every call after the first. And it synthesizes trampolines: small
// pieces of native-callable code that let foreign callers invoke a
// specialized instance of a runtime closure, including closures
// parameterized by type arguments bound at the call site.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	nativebridge/        Root package with the Value and BindingList types
//	├── dynlib/          Library handle cache, symbol slots, loader adapters
//	├── trampoline/      Trampoline cache, parameter blocks, lifecycle registry
//	├── execmem/         Executable memory pool for trampoline bodies
//	├── emit/            Machine-code templates per target architecture
//	├── hostinfo/        CPU name, feature string, backend identifier
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Resolve a symbol:
//
//	reg := dynlib.NewRegistry(dynlib.NewSystemLoader())
//
//	var slot dynlib.Slot
//	addr, err := reg.LoadAndLookup(&slot, "m", "cos")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Build a trampoline for a closure:
//
//	emitter, err := emit.NewTemplateEmitter(dispatch)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mgr := trampoline.NewManager(trampoline.Options{
//	    Specializer: sp,
//	    Emitter:     emitter,
//	})
//
//	var cache trampoline.Cache
//	entry, err := mgr.GetOrCreate(&cache, finalizer, fn, formals, env, bindings)
//
// # Lifetime Model
//
// Trampolines have two lifetimes. A trampoline whose finalizer value is a
// concrete type, a canonical singleton instance, or a generic template's
// own wrapper is permanent: it is never reclaimed. Every other trampoline
// is tracked in a weak registry keyed by its finalizer's identity and is
// reclaimed exactly once, when the collector reports the finalizer
// unreachable.
//
// # Thread Safety
//
// Registry, Slot, Cache, and Manager are safe for concurrent use. Library
// handles published for a name are never replaced; concurrent first-time
// resolutions may redundantly load the same library, which the platform
// loader makes idempotent.
package nativebridge
