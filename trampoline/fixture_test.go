package trampoline

import (
	stderrors "errors"
	"sync"

	nativebridge "github.com/quill-lang/native-bridge"
)

// val is a pointer-shaped runtime value with scripted predicates.
type val struct {
	name      string
	concrete  bool
	immutable bool
	singleton bool
	template  bool
}

func (v *val) ConcreteType() bool    { return v.concrete }
func (v *val) Immutable() bool       { return v.immutable }
func (v *val) Singleton() bool       { return v.singleton }
func (v *val) TemplateWrapper() bool { return v.template }
func (v *val) String() string        { return v.name }

func concreteVal(name string) *val { return &val{name: name, concrete: true, immutable: true} }
func mutableVal(name string) *val  { return &val{name: name, concrete: true} }
func plainVal(name string) *val    { return &val{name: name} }

// scriptSpecializer answers Instantiate from a per-formal script,
// defaulting to Top, and can be told to fail on one formal.
type scriptSpecializer struct {
	mu      sync.Mutex
	results map[nativebridge.Value]nativebridge.Value
	failAt  nativebridge.Value
	calls   int
}

func newScriptSpecializer() *scriptSpecializer {
	return &scriptSpecializer{results: make(map[nativebridge.Value]nativebridge.Value)}
}

func (s *scriptSpecializer) Instantiate(formal, env nativebridge.Value, bindings *nativebridge.BindingList) (nativebridge.Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failAt != nil && formal == s.failAt {
		return nil, stderrors.New("cannot instantiate")
	}
	if v, ok := s.results[formal]; ok {
		return v, nil
	}
	return nativebridge.Top, nil
}

func (s *scriptSpecializer) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// countEmitter records emissions and uses the storage base address as
// the entry point, the way the template backends do.
type countEmitter struct {
	mu      sync.Mutex
	emitted int
	last    *ParamBlock
	entry   uintptr // forced entry; zero means use storage.Addr()
}

func (e *countEmitter) Emit(storage Block, params *ParamBlock) uintptr {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.emitted++
	e.last = params
	if e.entry != 0 {
		return e.entry
	}
	return storage.Addr()
}

func (e *countEmitter) emitCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.emitted
}

// zeroEmitter simulates a broken backend.
type zeroEmitter struct{}

func (zeroEmitter) Emit(Block, *ParamBlock) uintptr { return 0 }

// failArena simulates an exhausted storage pool.
type failArena struct{}

func (failArena) Alloc() (Block, error) { return Block{}, stderrors.New("pool exhausted") }
func (failArena) Free(Block)            {}

// manualCollector records registrations and lets tests trigger
// collection deterministically. Registering the same object twice is a
// bug in the caller, so it panics the test.
type manualCollector struct {
	mu        sync.Mutex
	callbacks map[nativebridge.Value]func()
}

func newManualCollector() *manualCollector {
	return &manualCollector{callbacks: make(map[nativebridge.Value]func())}
}

func (c *manualCollector) Register(obj nativebridge.Value, fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, dup := c.callbacks[obj]; dup {
		panic("finalizer already registered for object")
	}
	c.callbacks[obj] = fn
}

// collect runs and forgets the callback for obj, as the real collector
// would after obj became unreachable. It reports whether a callback was
// registered.
func (c *manualCollector) collect(obj nativebridge.Value) bool {
	c.mu.Lock()
	fn := c.callbacks[obj]
	delete(c.callbacks, obj)
	c.mu.Unlock()
	if fn == nil {
		return false
	}
	fn()
	return true
}

func (c *manualCollector) registered(obj nativebridge.Value) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.callbacks[obj]
	return ok
}

// testManager wires a manager with counting fakes for every
// collaborator.
func testManager(gc Collector) (*Manager, *CountingArena, *scriptSpecializer, *countEmitter) {
	arena := NewCountingArena(nil)
	spec := newScriptSpecializer()
	em := &countEmitter{}
	m := NewManager(Options{
		Specializer: spec,
		Emitter:     em,
		Arena:       arena,
		Collector:   gc,
	})
	return m, arena, spec, em
}
