package trampoline

import (
	"sync"
	"unsafe"
)

// BlockSize is the native storage footprint of one trampoline body.
// Current targets need at most 36 bytes; the block keeps headroom so a
// backend change does not alter the allocation contract.
const BlockSize = 64

// Block is one unit of native trampoline storage.
type Block struct {
	buf []byte
}

// Bytes exposes the writable storage an emitter fills with machine code.
func (b Block) Bytes() []byte {
	return b.buf
}

// Addr returns the base address of the storage, or zero for an empty
// block.
func (b Block) Addr() uintptr {
	if len(b.buf) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b.buf)))
}

// MakeBlock wraps buf as a block. Arena implementations outside this
// package use it to hand out storage they mapped themselves.
func MakeBlock(buf []byte) Block {
	return Block{buf: buf}
}

// Arena allocates fixed-size native storage blocks for trampoline
// bodies. Implementations must be safe for concurrent use. A block is
// freed at most once, and only by the lifecycle that owns it.
type Arena interface {
	// Alloc returns a zeroed block of BlockSize bytes.
	Alloc() (Block, error)
	// Free returns a block to the arena.
	Free(b Block)
}

// HeapArena allocates blocks from the Go heap. Heap blocks are not
// executable; use an executable pool (execmem.Pool) when foreign code
// will actually jump to the trampoline.
type HeapArena struct{}

func (HeapArena) Alloc() (Block, error) {
	return Block{buf: make([]byte, BlockSize)}, nil
}

func (HeapArena) Free(Block) {}

// CountingArena wraps another arena and tracks live blocks, for
// allocation accounting in tests and leak hunting in long-lived
// processes.
type CountingArena struct {
	inner Arena

	mu     sync.Mutex
	allocs int
	frees  int
}

// NewCountingArena wraps inner; a nil inner counts over a HeapArena.
func NewCountingArena(inner Arena) *CountingArena {
	if inner == nil {
		inner = HeapArena{}
	}
	return &CountingArena{inner: inner}
}

func (c *CountingArena) Alloc() (Block, error) {
	b, err := c.inner.Alloc()
	if err != nil {
		return Block{}, err
	}
	c.mu.Lock()
	c.allocs++
	c.mu.Unlock()
	return b, nil
}

func (c *CountingArena) Free(b Block) {
	c.mu.Lock()
	c.frees++
	c.mu.Unlock()
	c.inner.Free(b)
}

// Live reports blocks allocated and not yet freed.
func (c *CountingArena) Live() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.allocs - c.frees
}
