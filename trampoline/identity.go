package trampoline

import (
	"unsafe"

	nativebridge "github.com/quill-lang/native-bridge"
)

// identityOf returns the identity key for a runtime value. Values are
// pointer-shaped, so the interface's data word is the value's address.
// The registry stores only this key, never the value, which is what
// keeps the mapping weak.
func identityOf(v nativebridge.Value) uintptr {
	type iface struct {
		typ  unsafe.Pointer
		data unsafe.Pointer
	}
	return uintptr((*iface)(unsafe.Pointer(&v)).data)
}
