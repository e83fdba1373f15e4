// Package trampoline builds, caches, and reclaims the small pieces of
// native-callable code that let foreign callers invoke a specialized
// runtime closure.
//
// # Cache Shape
//
// A Cache is a per-call-site root. Closures with no formal parameters
// live in a single flat level keyed by closure identity. Parameterized
// closures go through two levels: first the identity of the binding
// list, then the closure, so unrelated call sites with different type
// parameterizations never collide. Identity means pointer identity;
// binding lists with equal contents but separate allocations are
// distinct keys.
//
// # Building
//
// A Manager owns the collaborators a build needs: the Specializer that
// instantiates each formal parameter, the Arena that provides the
// fixed-size native storage, the Emitter that writes the machine code,
// and the Collector that drives reclamation. On a cache miss the
// manager allocates a parameter block with two reserved leading cells
// (storage, closure), runs the specialization loop, and emits the body:
//
//	mgr := trampoline.NewManager(trampoline.Options{
//	    Specializer: sp,
//	    Emitter:     emitter,
//	})
//
//	var cache trampoline.Cache
//	entry, err := mgr.GetOrCreate(&cache, finalizer, fn, formals, env, bindings)
//
// A specialization result that is not Top must be a concrete immutable
// type to be baked in; anything else is recorded as Unspecialized and
// deferred to dynamic dispatch at call time. If the specializer fails,
// the partially built parameter block is released and the error is
// returned: no cache entry, no leak.
//
// # Lifetime
//
// A record is permanent when its finalizer value is a concrete type,
// the canonical singleton instance of its type, or a generic template
// equal to its own canonical wrapper. Permanent records are deliberately
// leaked for the life of the process. Every other record enters the
// weak registry keyed by the finalizer's identity; when the collector
// reports the finalizer unreachable, the callback removes the entry,
// frees the native storage, and releases the parameter block, each
// exactly once. A callback firing for an unknown key is a fatal
// bookkeeping fault and panics.
//
// The registry holds the finalizer's identity, never the finalizer, so
// tracking a record does not delay its collection.
//
// # Accounting
//
// Manager.Stats reports live parameter blocks and tracked finalizers;
// wrap the storage arena in a CountingArena to account for native
// blocks as well.
package trampoline
