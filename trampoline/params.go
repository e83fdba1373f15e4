package trampoline

import (
	"sync/atomic"
	"unsafe"

	nativebridge "github.com/quill-lang/native-bridge"
)

// ParamBlock is the bound-parameter record attached to one trampoline.
// Cell 0 holds the native storage block, cell 1 the owning closure, and
// the remaining cells carry one entry per formal parameter: a concrete
// immutable value, Top, or Unspecialized. The block is single-owner
// with explicit free semantics; releasing it twice panics.
type ParamBlock struct {
	storage  Block
	fn       nativebridge.Value
	bound    []nativebridge.Value
	released atomic.Bool
}

// Closure returns the owning closure.
func (p *ParamBlock) Closure() nativebridge.Value {
	return p.fn
}

// Bound returns the per-formal bound values in declaration order.
func (p *ParamBlock) Bound() []nativebridge.Value {
	return p.bound
}

// Storage returns the native storage block recorded in the reserved
// leading cell.
func (p *ParamBlock) Storage() Block {
	return p.storage
}

// NativeAddr returns the address generated code closes over. The
// dispatch entry receives it in the platform scratch register and
// recovers the closure and bound values through it. The address stays
// valid for as long as the owning record lives.
func (p *ParamBlock) NativeAddr() uintptr {
	return uintptr(unsafe.Pointer(p))
}

func (p *ParamBlock) release() {
	if !p.released.CompareAndSwap(false, true) {
		panic("trampoline: parameter block released twice")
	}
	p.fn = nil
	p.bound = nil
}
