package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in the bridge the error occurred
type Phase string

const (
	PhaseResolve    Phase = "resolve"    // library and symbol resolution
	PhaseSpecialize Phase = "specialize" // formal parameter instantiation
	PhaseEmit       Phase = "emit"       // trampoline code emission
	PhaseRegistry   Phase = "registry"   // lifetime bookkeeping
	PhaseAlloc      Phase = "alloc"      // native storage allocation
)

// Kind categorizes the error
type Kind string

const (
	KindLibraryNotFound Kind = "library_not_found"
	KindSymbolNotFound  Kind = "symbol_not_found"
	KindSpecialization  Kind = "specialization_failed"
	KindAllocation      Kind = "allocation"
	KindUnsupported     Kind = "unsupported"
	KindInvalidInput    Kind = "invalid_input"
	KindClosed          Kind = "closed"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Cause   error
	Phase   Phase
	Kind    Kind
	Library string
	Symbol  string
	Detail  string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Library != "" || e.Symbol != "" {
		b.WriteString(": ")
		if e.Library != "" && e.Symbol != "" {
			b.WriteString("library ")
			b.WriteString(strconv.Quote(e.Library))
			b.WriteString(", symbol ")
			b.WriteString(strconv.Quote(e.Symbol))
		} else if e.Library != "" {
			b.WriteString("library ")
			b.WriteString(strconv.Quote(e.Library))
		} else {
			b.WriteString("symbol ")
			b.WriteString(strconv.Quote(e.Symbol))
		}
	}

	if e.Detail != "" {
		if e.Library != "" || e.Symbol != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Library sets the library name
func (b *Builder) Library(name string) *Builder {
	b.err.Library = name
	return b
}

// Symbol sets the symbol name
func (b *Builder) Symbol(name string) *Builder {
	b.err.Symbol = name
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// LibraryNotFound creates a library resolution error
func LibraryNotFound(name string) *Error {
	return &Error{
		Phase:   PhaseResolve,
		Kind:    KindLibraryNotFound,
		Library: name,
		Detail:  "could not load library",
	}
}

// SymbolNotFound creates a symbol lookup error
func SymbolNotFound(library, symbol string, cause error) *Error {
	return &Error{
		Phase:   PhaseResolve,
		Kind:    KindSymbolNotFound,
		Library: library,
		Symbol:  symbol,
		Cause:   cause,
	}
}

// Specialization wraps a failure from the specialization evaluator
func Specialization(cause error) *Error {
	return &Error{
		Phase:  PhaseSpecialize,
		Kind:   KindSpecialization,
		Detail: "instantiate formal parameter",
		Cause:  cause,
	}
}

// AllocationFailed creates a native storage allocation error
func AllocationFailed(size int, cause error) *Error {
	return &Error{
		Phase:  PhaseAlloc,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("allocate %d-byte block", size),
		Cause:  cause,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Closed creates an error for use of a closed resource
func Closed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s is closed", what),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// ProbeAttempt records one candidate spelling tried while opening a library
type ProbeAttempt struct {
	Path string // candidate path handed to the platform loader
	Err  error  // loader's verdict for this candidate
}

// ProbeError is returned when none of a library name's candidate
// spellings could be opened
type ProbeError struct {
	Name     string
	Attempts []ProbeAttempt
}

func (e *ProbeError) Error() string {
	if len(e.Attempts) == 0 {
		return fmt.Sprintf("[resolve] library_not_found: library %q - no candidates probed", e.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "cannot open library %q, tried %d candidate(s):", e.Name, len(e.Attempts))
	for _, a := range e.Attempts {
		b.WriteString("\n  - ")
		b.WriteString(a.Path)
		if a.Err != nil {
			b.WriteString(": ")
			b.WriteString(a.Err.Error())
		}
	}
	return b.String()
}

// Is reports whether target matches this error type
func (e *ProbeError) Is(target error) bool {
	_, ok := target.(*ProbeError)
	return ok
}
