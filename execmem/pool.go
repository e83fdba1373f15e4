package execmem

import (
	"sync"

	"go.uber.org/zap"

	"github.com/quill-lang/native-bridge/errors"
	"github.com/quill-lang/native-bridge/trampoline"
)

// defaultBlocksPerChunk carves one 4 KiB page into 64-byte blocks.
const defaultBlocksPerChunk = 64

// Options configures a Pool.
type Options struct {
	// BlocksPerChunk is the number of blocks carved from each mapped
	// chunk. Zero selects a page-sized chunk.
	BlocksPerChunk int
}

// Pool is a trampoline.Arena backed by executable pages.
type Pool struct {
	perChunk int

	mu     sync.Mutex
	chunks [][]byte
	free   []trampoline.Block
	handed int
	closed bool
}

var _ trampoline.Arena = (*Pool)(nil)

// NewPool returns an empty pool. The first Alloc maps the first chunk.
func NewPool(opts Options) *Pool {
	per := opts.BlocksPerChunk
	if per <= 0 {
		per = defaultBlocksPerChunk
	}
	return &Pool{perChunk: per}
}

// Alloc returns a zeroed executable block.
func (p *Pool) Alloc() (trampoline.Block, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return trampoline.Block{}, errors.Closed(errors.PhaseAlloc, "executable pool")
	}
	if len(p.free) == 0 {
		if err := p.grow(); err != nil {
			return trampoline.Block{}, errors.AllocationFailed(p.perChunk*trampoline.BlockSize, err)
		}
	}
	b := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	clear(b.Bytes())
	p.handed++
	return b, nil
}

// grow maps one more chunk and carves it into free blocks. p.mu held.
func (p *Pool) grow() error {
	chunk, err := mapChunk(p.perChunk * trampoline.BlockSize)
	if err != nil {
		return err
	}
	p.chunks = append(p.chunks, chunk)
	for off := 0; off < len(chunk); off += trampoline.BlockSize {
		// The three-index slice caps capacity at the block boundary so
		// an overlong write cannot spill into the neighbor block.
		p.free = append(p.free, trampoline.MakeBlock(chunk[off:off+trampoline.BlockSize:off+trampoline.BlockSize]))
	}
	Logger().Debug("executable chunk mapped",
		zap.Int("bytes", len(chunk)),
		zap.Int("chunks", len(p.chunks)))
	return nil
}

// Free returns a block to the pool. Freeing after Close is a no-op;
// the pages are already unmapped.
func (p *Pool) Free(b trampoline.Block) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.free = append(p.free, b)
	p.handed--
}

// Close unmaps every chunk and rejects further allocation. All blocks
// handed out become invalid; callers must reclaim their trampolines
// first.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	if p.handed > 0 {
		Logger().Warn("closing executable pool with live blocks", zap.Int("blocks", p.handed))
	}
	var firstErr error
	for _, chunk := range p.chunks {
		if err := unmapChunk(chunk); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	p.chunks = nil
	p.free = nil
	return firstErr
}

// Stats describes current pool occupancy.
type Stats struct {
	// Chunks is the number of mapped chunks.
	Chunks int
	// Free is the number of blocks available without growing.
	Free int
	// Live is the number of blocks handed out and not yet returned.
	Live int
}

// Stats returns current occupancy counters.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		Chunks: len(p.chunks),
		Free:   len(p.free),
		Live:   p.handed,
	}
}
