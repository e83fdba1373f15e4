// Package execmem provides executable native storage for trampoline
// bodies.
//
// A Pool maps anonymous pages with execute permission and carves them
// into fixed trampoline.BlockSize blocks. Freed blocks return to the
// pool and are re-zeroed before reuse, so a block handed out by Alloc
// is always clean. The pool grows one chunk at a time and never unmaps
// a chunk before Close.
//
// # Platform Notes
//
// Unix targets map chunks read+write+execute in a single mmap call.
// Hardened platforms that enforce strict W^X for unsigned processes
// can refuse the mapping; Alloc surfaces that as an allocation error,
// and callers that only need addressable storage can fall back to
// trampoline.HeapArena.
//
// Windows targets commit chunks with VirtualAlloc and
// PAGE_EXECUTE_READWRITE protection.
package execmem
