package emit

import (
	"go.uber.org/zap"

	"github.com/quill-lang/native-bridge/errors"
	"github.com/quill-lang/native-bridge/trampoline"
)

// BackendName is the fixed identifier of the active code-generation
// backend.
const BackendName = "TemplateJIT"

// TemplateEmitter fills trampoline storage from the target template,
// baking in the parameter block address and the shared dispatch entry.
type TemplateEmitter struct {
	dispatch uintptr
}

var _ trampoline.Emitter = (*TemplateEmitter)(nil)

// NewTemplateEmitter returns an emitter whose trampolines jump to
// dispatch. Construction fails on targets without a template and on a
// zero dispatch address; a constructed emitter cannot fail to emit.
func NewTemplateEmitter(dispatch uintptr) (*TemplateEmitter, error) {
	if !archSupported {
		return nil, errors.Unsupported(errors.PhaseEmit, "trampoline template for "+archName)
	}
	if dispatch == 0 {
		return nil, errors.InvalidInput(errors.PhaseEmit, "zero dispatch address")
	}
	return &TemplateEmitter{dispatch: dispatch}, nil
}

// Emit writes the jump sequence into storage and returns the storage
// base as the entry point.
func (e *TemplateEmitter) Emit(storage trampoline.Block, params *trampoline.ParamBlock) uintptr {
	n := encodeJump(storage.Bytes(), params.NativeAddr(), e.dispatch)
	Logger().Debug("trampoline emitted",
		zap.String("arch", archName),
		zap.Int("bytes", n),
		zap.Uintptr("entry", storage.Addr()))
	return storage.Addr()
}
