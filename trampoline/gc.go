package trampoline

import (
	"runtime"

	nativebridge "github.com/quill-lang/native-bridge"
)

// RuntimeCollector registers callbacks through runtime.SetFinalizer.
// The callback runs on the finalizer goroutine once the collector
// proves obj unreachable. An object can carry at most one runtime
// finalizer, so a finalizer value should be tracked by a single
// manager.
type RuntimeCollector struct{}

func (RuntimeCollector) Register(obj nativebridge.Value, fn func()) {
	runtime.SetFinalizer(obj, func(nativebridge.Value) { fn() })
}
