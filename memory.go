package hostabi

// Memory is a foreign-owned linear memory region, typically a plugin
// guest's WebAssembly memory.
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
}

// MemorySizer provides the current size of the memory in bytes.
type MemorySizer interface {
	Size() uint32
}
