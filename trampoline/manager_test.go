package trampoline

import (
	stderrors "errors"
	"testing"

	nativebridge "github.com/quill-lang/native-bridge"
	"github.com/quill-lang/native-bridge/errors"
)

func TestSpecializationFailureRollsBack(t *testing.T) {
	m, arena, spec, em := testManager(newManualCollector())

	good := plainVal("T")
	bad := plainVal("U")
	never := plainVal("V")
	spec.failAt = bad

	fn := plainVal("f")
	env := plainVal("env")
	bindings := nativebridge.NewBindingList(concreteVal("Int64"))
	formals := []nativebridge.Value{good, bad, never}

	var cache Cache
	_, err := m.GetOrCreate(&cache, plainVal("owner"), fn, formals, env, bindings)
	if err == nil {
		t.Fatal("expected a specialization error")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseSpecialize, Kind: errors.KindSpecialization}) {
		t.Errorf("error = %v, want specialize/specialization_failed", err)
	}

	if n := cache.Len(); n != 0 {
		t.Errorf("cache holds %d records after failure, want 0", n)
	}
	if cache.byEnv != nil {
		t.Error("failed build left a binding-list level behind")
	}
	if n := arena.Live(); n != 0 {
		t.Errorf("arena has %d live blocks after failure, want 0", n)
	}
	if n := m.Stats().ParamBlocks; n != 0 {
		t.Errorf("live parameter blocks = %d after failure, want 0", n)
	}
	if n := em.emitCount(); n != 0 {
		t.Fatalf("emitter ran %d times before the failure, want 0", n)
	}

	// A fixed specializer must be able to retry the same arguments.
	spec.failAt = nil
	entry, err := m.GetOrCreate(&cache, plainVal("owner"), fn, formals, env, bindings)
	if err != nil {
		t.Fatalf("retry after fixed specializer: %v", err)
	}
	if entry == 0 {
		t.Fatal("retry returned a zero entry")
	}
	if n := cache.Len(); n != 1 {
		t.Errorf("cache holds %d records after retry, want 1", n)
	}
	if n := em.emitCount(); n != 1 {
		t.Errorf("emitter ran %d times across failure and retry, want 1", n)
	}
}

func TestAllocationFailureRollsBack(t *testing.T) {
	arena := NewCountingArena(failArena{})
	spec := newScriptSpecializer()
	em := &countEmitter{}
	m := NewManager(Options{
		Specializer: spec,
		Emitter:     em,
		Arena:       arena,
		Collector:   newManualCollector(),
	})

	var cache Cache
	_, err := m.GetOrCreate(&cache, plainVal("owner"), plainVal("f"),
		[]nativebridge.Value{plainVal("T")}, plainVal("env"),
		nativebridge.NewBindingList(concreteVal("Int64")))
	if err == nil {
		t.Fatal("expected an allocation error")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseAlloc, Kind: errors.KindAllocation}) {
		t.Errorf("error = %v, want alloc/allocation", err)
	}

	if n := cache.Len(); n != 0 {
		t.Errorf("cache holds %d records after failure, want 0", n)
	}
	if n := arena.Live(); n != 0 {
		t.Errorf("arena has %d live blocks after failure, want 0", n)
	}
	if n := m.Stats().ParamBlocks; n != 0 {
		t.Errorf("live parameter blocks = %d after failure, want 0", n)
	}
	if n := em.emitCount(); n != 0 {
		t.Errorf("emitter ran %d times, want 0", n)
	}
}

func TestEmitterZeroEntryPanics(t *testing.T) {
	m := NewManager(Options{
		Specializer: newScriptSpecializer(),
		Emitter:     zeroEmitter{},
		Collector:   newManualCollector(),
	})

	defer func() {
		if recover() == nil {
			t.Fatal("zero entry point did not panic")
		}
	}()
	var cache Cache
	m.GetOrCreate(&cache, plainVal("owner"), plainVal("f"), nil, nil, nil)
}

func TestStats(t *testing.T) {
	gc := newManualCollector()
	m, _, _, _ := testManager(gc)

	var cache Cache
	permanentOwner := concreteVal("Int64")
	if _, err := m.GetOrCreate(&cache, permanentOwner, plainVal("f"), nil, nil, nil); err != nil {
		t.Fatalf("GetOrCreate permanent: %v", err)
	}
	tracked := plainVal("method")
	if _, err := m.GetOrCreate(&cache, tracked, plainVal("g"), nil, nil, nil); err != nil {
		t.Fatalf("GetOrCreate tracked: %v", err)
	}

	st := m.Stats()
	if st.ParamBlocks != 2 {
		t.Errorf("ParamBlocks = %d, want 2", st.ParamBlocks)
	}
	if st.TrackedFinalizers != 1 {
		t.Errorf("TrackedFinalizers = %d, want 1", st.TrackedFinalizers)
	}

	if !gc.collect(tracked) {
		t.Fatal("collector had no callback for the tracked finalizer")
	}
	st = m.Stats()
	if st.ParamBlocks != 1 {
		t.Errorf("ParamBlocks after reclaim = %d, want 1", st.ParamBlocks)
	}
	if st.TrackedFinalizers != 0 {
		t.Errorf("TrackedFinalizers after reclaim = %d, want 0", st.TrackedFinalizers)
	}
}
