package trampoline

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	nativebridge "github.com/quill-lang/native-bridge"
	"github.com/quill-lang/native-bridge/errors"
)

// Specializer is the runtime's generic-instantiation engine seen as a
// black box: a call either yields the value bound to formal under
// (env, bindings) or reports that the formal is not specializable. A
// failed call must leave no global state behind.
type Specializer interface {
	Instantiate(formal, env nativebridge.Value, bindings *nativebridge.BindingList) (nativebridge.Value, error)
}

// Emitter writes the machine-code body of a trampoline into storage and
// returns the entry point foreign callers will invoke. Emission must
// not fail; a zero entry point is treated as an unrecoverable fault.
type Emitter interface {
	Emit(storage Block, params *ParamBlock) uintptr
}

// Collector registers reclamation callbacks with the garbage collector.
// A callback runs at most once, after obj becomes unreachable, on an
// unspecified goroutine.
type Collector interface {
	Register(obj nativebridge.Value, fn func())
}

// Options configures a Manager.
type Options struct {
	// Specializer resolves formal parameters. Required.
	Specializer Specializer
	// Emitter writes trampoline bodies. Required.
	Emitter Emitter
	// Arena provides trampoline storage. Defaults to HeapArena.
	Arena Arena
	// Collector drives reclamation of finalizer-tracked records.
	// Defaults to the runtime collector.
	Collector Collector
}

// Manager builds, caches, and reclaims trampolines. One manager serves
// any number of cache roots; the weak registry tracking non-permanent
// records is manager-wide. All methods are safe for concurrent use.
type Manager struct {
	arena Arena
	spec  Specializer
	emit  Emitter
	gc    Collector

	// mu guards registry so record insertion and collector-driven
	// removal exclude each other.
	mu       sync.Mutex
	registry map[uintptr][]*Record

	liveParams atomic.Int64
}

// Stats reports live allocation counts for leak accounting.
type Stats struct {
	// ParamBlocks counts parameter blocks allocated and not yet
	// released.
	ParamBlocks int64
	// TrackedFinalizers counts finalizer keys with records awaiting
	// collection.
	TrackedFinalizers int
}

// NewManager returns a manager using the given collaborators.
func NewManager(opts Options) *Manager {
	if opts.Arena == nil {
		opts.Arena = HeapArena{}
	}
	if opts.Collector == nil {
		opts.Collector = RuntimeCollector{}
	}
	return &Manager{
		arena:    opts.Arena,
		spec:     opts.Specializer,
		emit:     opts.Emitter,
		gc:       opts.Collector,
		registry: make(map[uintptr][]*Record),
	}
}

// GetOrCreate returns the native entry point for fn specialized under
// (formals, env, bindings), building and registering a trampoline on
// first use. finalizer decides the record's lifetime: a concrete type,
// a canonical singleton instance, or a template wrapper makes the record
// permanent; any other value ties reclamation to that value's
// collection.
//
// A hit returns the recorded entry immediately, with no
// re-specialization and no allocation. On a miss the root is locked
// across the whole build so a fixed (bindings, fn) pair converges on
// one record. A specialization failure is returned after the partially
// built parameter block is released; the cache is untouched.
func (m *Manager) GetOrCreate(
	cache *Cache,
	finalizer nativebridge.Value,
	fn nativebridge.Value,
	formals []nativebridge.Value,
	env nativebridge.Value,
	bindings *nativebridge.BindingList,
) (uintptr, error) {
	if fn == nil {
		return 0, errors.InvalidInput(errors.PhaseRegistry, "nil closure")
	}
	if finalizer == nil {
		return 0, errors.InvalidInput(errors.PhaseRegistry, "nil finalizer")
	}

	parameterized := len(formals) > 0

	cache.mu.RLock()
	rec := cache.lookup(fn, parameterized, bindings)
	cache.mu.RUnlock()
	if rec != nil {
		return rec.entry, nil
	}

	cache.mu.Lock()
	defer cache.mu.Unlock()
	if rec := cache.lookup(fn, parameterized, bindings); rec != nil {
		return rec.entry, nil
	}

	params := m.newParamBlock(fn, len(formals))
	for i, formal := range formals {
		v, err := m.spec.Instantiate(formal, env, bindings)
		if err != nil {
			m.releaseParams(params)
			return 0, errors.Specialization(err)
		}
		// Only a concrete immutable result may be baked into the
		// trampoline; anything else would pin a value whose identity
		// or contents cannot be trusted across calls. Top stands as
		// itself.
		if v != nativebridge.Top {
			if v == nil || !v.ConcreteType() || !v.Immutable() {
				v = nativebridge.Unspecialized
			}
		}
		params.bound[i] = v
	}

	storage, err := m.arena.Alloc()
	if err != nil {
		m.releaseParams(params)
		return 0, errors.AllocationFailed(BlockSize, err)
	}
	params.storage = storage

	entry := m.emit.Emit(storage, params)
	if entry == 0 {
		panic("trampoline: emitter returned a zero entry point")
	}

	rec = &Record{entry: entry, params: params}
	cache.insert(fn, parameterized, bindings, rec)
	m.classify(rec, finalizer)

	Logger().Debug("trampoline created",
		zap.Uintptr("entry", entry),
		zap.Int("formals", len(formals)),
		zap.Bool("permanent", rec.permanent))
	return entry, nil
}

func (m *Manager) newParamBlock(fn nativebridge.Value, formals int) *ParamBlock {
	m.liveParams.Add(1)
	return &ParamBlock{
		fn:    fn,
		bound: make([]nativebridge.Value, formals),
	}
}

func (m *Manager) releaseParams(p *ParamBlock) {
	p.release()
	m.liveParams.Add(-1)
}

// Stats returns current accounting counters.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	tracked := len(m.registry)
	m.mu.Unlock()
	return Stats{
		ParamBlocks:       m.liveParams.Load(),
		TrackedFinalizers: tracked,
	}
}
