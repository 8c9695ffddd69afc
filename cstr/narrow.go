package cstr

// Narrow8 is the set of 8-bit character unit types a narrow buffer may use.
type Narrow8 interface {
	~int8 | ~uint8
}

// CopyNarrow copies the UTF-8 bytes of src into dest and nul-terminates it,
// truncating src to len(dest)-1 bytes. It returns the number of bytes copied,
// not counting the terminator.
func CopyNarrow[T Narrow8](dest []T, src string) int {
	if len(dest) == 0 {
		return 0
	}

	n := min(len(dest)-1, len(src))
	for i := 0; i < n; i++ {
		dest[i] = T(src[i])
	}
	dest[n] = 0
	return n
}

// Narrow returns the string held in buf, up to the first terminator or the
// end of buf when it has none.
func Narrow[T Narrow8](buf []T) string {
	b := make([]byte, 0, len(buf))
	for _, c := range buf {
		if c == 0 {
			break
		}
		b = append(b, byte(c))
	}
	return string(b)
}
