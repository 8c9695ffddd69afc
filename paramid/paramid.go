package paramid

import "strconv"

// SignMask clears bit 31 of a raw hash.
const SignMask uint32 = 0x7FFFFFFF

// ID is a host-visible parameter identifier. Bit 31 is always clear.
type ID uint32

// New returns the identifier for name.
func New(name string) ID {
	return ID(Hash(name))
}

// String renders the id in decimal, the form hosts report ids in.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Hash computes the parameter id for name over its UTF-8 bytes.
func Hash(name string) uint32 {
	var h uint32
	for i := 0; i < len(name); i++ {
		h = h*31 + uint32(name[i])
	}
	return h & SignMask
}

// HashBytes is Hash over a raw byte sequence, e.g. a name read back out of a
// narrow buffer.
func HashBytes(b []byte) uint32 {
	var h uint32
	for _, c := range b {
		h = h*31 + uint32(c)
	}
	return h & SignMask
}
