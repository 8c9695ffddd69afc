// Package cstr copies Go strings into fixed-capacity, nul-terminated
// buffers shared with a foreign plugin host.
//
// Two encodings are supported:
//
//   - narrow: 8-bit units (C char, signed or unsigned), raw UTF-8 bytes
//   - wide: 16-bit UTF-16 code units (VST3 TChar style)
//
// Both copiers behave like strlcpy: the last slot is always reserved for the
// terminator, overlong input is truncated silently, and nothing at or past
// len(dest) is ever written. A zero-length destination is left untouched.
//
// Truncation is unit-level. A narrow copy may split a multi-byte UTF-8
// sequence and a wide copy may split a surrogate pair; hosts accept this.
//
// CopyWide rejects strings that have no nul-terminated UTF-16 form (invalid
// UTF-8 or an interior NUL). It returns a structured error, logs a debug
// diagnostic through Logger, and leaves the destination unmodified.
package cstr
