// Package errors provides structured error types for the native-bridge library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: library and symbol names, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindSymbolNotFound).
//		Library("crypto").
//		Symbol("EVP_sha256").
//		Detail("handle has no such export").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.LibraryNotFound("m")
//	err := errors.SymbolNotFound("m", "cos", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
