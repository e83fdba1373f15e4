package trampoline

import "testing"

func TestHeapArenaAlloc(t *testing.T) {
	var a HeapArena
	b, err := a.Alloc()
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if len(b.Bytes()) != BlockSize {
		t.Errorf("block size = %d, want %d", len(b.Bytes()), BlockSize)
	}
	if b.Addr() == 0 {
		t.Error("block address is zero")
	}
	for i, c := range b.Bytes() {
		if c != 0 {
			t.Fatalf("byte %d not zeroed: %#x", i, c)
		}
	}
}

func TestEmptyBlockAddr(t *testing.T) {
	var b Block
	if b.Addr() != 0 {
		t.Errorf("empty block address = %#x, want 0", b.Addr())
	}
}

func TestCountingArenaLive(t *testing.T) {
	a := NewCountingArena(nil)
	if n := a.Live(); n != 0 {
		t.Fatalf("fresh arena live = %d, want 0", n)
	}

	b1, err := a.Alloc()
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	b2, err := a.Alloc()
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if n := a.Live(); n != 2 {
		t.Errorf("live after two allocs = %d, want 2", n)
	}

	a.Free(b1)
	if n := a.Live(); n != 1 {
		t.Errorf("live after one free = %d, want 1", n)
	}
	a.Free(b2)
	if n := a.Live(); n != 0 {
		t.Errorf("live after both freed = %d, want 0", n)
	}
}

func TestCountingArenaFailedAllocNotCounted(t *testing.T) {
	a := NewCountingArena(failArena{})
	if _, err := a.Alloc(); err == nil {
		t.Fatal("expected alloc failure")
	}
	if n := a.Live(); n != 0 {
		t.Errorf("live after failed alloc = %d, want 0", n)
	}
}
