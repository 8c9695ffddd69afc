// Package errors provides structured error types for the hostabi packages.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the slot path, the target encoding and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseMemory, errors.KindOutOfBounds).
//		Path("descriptor", "title").
//		Detail("field end %d exceeds 32-bit address space", end).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidUTF16(errors.PhaseEncode, path, []byte(s), 3)
//	err := errors.OutOfBounds(errors.PhaseMemory, path, 70000, 65536)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
