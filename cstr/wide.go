package cstr

import (
	"unicode/utf16"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/wippyai/hostabi/errors"
)

// Wide16 is the set of 16-bit code unit types a wide buffer may use.
type Wide16 interface {
	~int16 | ~uint16
}

// CopyWide encodes src as UTF-16 into dest and nul-terminates it, truncating
// to len(dest)-1 code units. It returns the number of units copied, not
// counting the terminator.
//
// If src cannot be encoded, dest is left as it was and the error is an
// *errors.Error of kind KindInvalidUTF16 or KindInteriorNul.
func CopyWide[T Wide16](dest []T, src string) (int, error) {
	if len(dest) == 0 {
		return 0, nil
	}

	if err := validateWide(src); err != nil {
		Logger().Debug("invalid UTF-16 string",
			zap.Error(err),
			zap.Int("capacity", len(dest)))
		return 0, err
	}

	limit := len(dest) - 1
	n := 0
	for _, r := range src {
		if n == limit {
			break
		}
		if r >= 0x10000 {
			hi, lo := utf16.EncodeRune(r)
			dest[n] = T(hi)
			n++
			if n == limit {
				break
			}
			dest[n] = T(lo)
			n++
			continue
		}
		dest[n] = T(r)
		n++
	}
	dest[n] = 0
	return n, nil
}

// WideLen returns the number of UTF-16 code units src encodes to, without a
// terminator.
func WideLen(src string) (int, error) {
	if err := validateWide(src); err != nil {
		return 0, err
	}
	n := 0
	for _, r := range src {
		n += utf16.RuneLen(r)
	}
	return n, nil
}

// Wide decodes the string held in buf, up to the first terminator or the end
// of buf. Unpaired surrogates decode to U+FFFD.
func Wide[T Wide16](buf []T) string {
	units := make([]uint16, 0, len(buf))
	for _, c := range buf {
		if c == 0 {
			break
		}
		units = append(units, uint16(c))
	}
	return string(utf16.Decode(units))
}

// validateWide reports whether src has a nul-terminated UTF-16 form.
// Encoded surrogates are rejected by the UTF-8 decoder.
func validateWide(src string) error {
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		if r == utf8.RuneError && size == 1 {
			return errors.InvalidUTF16(errors.PhaseEncode, nil, []byte(src[i:]), i)
		}
		if r == 0 {
			return errors.InteriorNul(errors.PhaseEncode, nil, i, "utf16")
		}
		i += size
	}
	return nil
}
