// Package hostabi provides the string marshalling primitives a Go plugin
// wrapper needs when it talks to a foreign plugin host over a binary
// interface.
//
// # Architecture Overview
//
//	hostabi/          Root package with the foreign Memory interface
//	├── paramid/      Host-compatible parameter id hash
//	├── cstr/         Bounded copies into fixed-size nul-terminated buffers
//	├── slot/         Fixed-size string fields inside foreign linear memory
//	├── errors/       Structured error types
//	└── cmd/paramid/  Command line tool for inspecting ids and buffers
//
// # Quick Start
//
// Derive a parameter id and fill a descriptor's name fields:
//
//	id := paramid.Hash("gain") // 3165055
//
//	var shortName [8]int8
//	cstr.CopyNarrow(shortName[:], "Output Gain") // "Output " + nul
//
//	var title [128]uint16
//	if _, err := cstr.CopyWide(title[:], "Output Gain"); err != nil {
//	    // title is unchanged
//	}
//
// # Thread Safety
//
// All operations are pure and may run concurrently as long as each call
// targets its own destination buffer. Nothing here locks the destination.
package hostabi
