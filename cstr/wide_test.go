package cstr

import (
	stderrors "errors"
	"slices"
	"testing"
	"unicode/utf16"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/hostabi/errors"
)

const guardUnit = 0xA5A5

type tchar int16

func guardedWide(n, guard int) (dest []uint16, backing []uint16) {
	backing = make([]uint16, n+guard)
	for i := range backing {
		backing[i] = guardUnit
	}
	return backing[:n], backing
}

func checkWideGuard(t *testing.T, backing []uint16, n int) {
	t.Helper()
	for i := n; i < len(backing); i++ {
		if backing[i] != guardUnit {
			t.Fatalf("guard unit %d overwritten: %#x", i, backing[i])
		}
	}
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })
	return logs
}

func TestCopyWide(t *testing.T) {
	tests := []struct {
		name string
		src  string
		cap  int
		want []uint16
	}{
		{"fits", "gain", 8, []uint16{'g', 'a', 'i', 'n', 0}},
		{"empty source", "", 3, []uint16{0}},
		{"exact capacity truncates one", "gain", 4, []uint16{'g', 'a', 'i', 0}},
		{"truncated", "Output Gain", 5, []uint16{'O', 'u', 't', 'p', 0}},
		{"capacity one", "gain", 1, []uint16{0}},
		{"bmp", "Ärger", 8, []uint16{0xC4, 'r', 'g', 'e', 'r', 0}},
		{"surrogate pair", "a🎹", 8, []uint16{'a', 0xD83C, 0xDFB9, 0}},
		{"splits surrogate pair", "a🎹", 3, []uint16{'a', 0xD83C, 0}},
		{"pair just fits", "a🎹", 4, []uint16{'a', 0xD83C, 0xDFB9, 0}},
		{"replacement char is valid", "�", 2, []uint16{0xFFFD, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest, backing := guardedWide(tt.cap, 8)
			n, err := CopyWide(dest, tt.src)
			if err != nil {
				t.Fatalf("CopyWide: %v", err)
			}
			if n != len(tt.want)-1 {
				t.Errorf("copied %d, want %d", n, len(tt.want)-1)
			}
			if !slices.Equal(dest[:len(tt.want)], tt.want) {
				t.Errorf("dest = %#x, want %#x", dest[:len(tt.want)], tt.want)
			}
			for i := len(tt.want); i < tt.cap; i++ {
				if dest[i] != guardUnit {
					t.Errorf("trailing slot %d modified: %#x", i, dest[i])
				}
			}
			checkWideGuard(t, backing, tt.cap)
		})
	}
}

func TestCopyWide_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind errors.Kind
	}{
		{"invalid byte", "ga\xffin", errors.KindInvalidUTF16},
		{"truncated sequence", "gain\xc3", errors.KindInvalidUTF16},
		{"encoded lone surrogate", "a\xed\xa0\x80b", errors.KindInvalidUTF16},
		{"interior nul", "ga\x00in", errors.KindInteriorNul},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := observeLogs(t)
			dest, backing := guardedWide(6, 4)
			before := slices.Clone(backing)

			n, err := CopyWide(dest, tt.src)
			if err == nil {
				t.Fatal("expected error")
			}
			if n != 0 {
				t.Errorf("copied %d, want 0", n)
			}

			var e *errors.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("error %T is not *errors.Error", err)
			}
			if e.Kind != tt.kind || e.Phase != errors.PhaseEncode {
				t.Errorf("got %s/%s, want %s/%s", e.Phase, e.Kind, errors.PhaseEncode, tt.kind)
			}
			if !slices.Equal(backing, before) {
				t.Errorf("dest modified: %#x", backing)
			}
			if logs.FilterMessage("invalid UTF-16 string").Len() != 1 {
				t.Errorf("expected one diagnostic, got %v", logs.All())
			}
		})
	}
}

func TestCopyWide_ZeroCapacity(t *testing.T) {
	logs := observeLogs(t)
	dest, backing := guardedWide(0, 4)

	n, err := CopyWide(dest, "gain")
	if err != nil || n != 0 {
		t.Errorf("CopyWide = %d, %v; want 0, nil", n, err)
	}
	checkWideGuard(t, backing, 0)

	// zero capacity short-circuits before encoding
	if _, err := CopyWide(dest, "\xff"); err != nil {
		t.Errorf("invalid source with zero capacity: %v", err)
	}
	if logs.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", logs.All())
	}
}

func TestCopyWide_Signed(t *testing.T) {
	var dest [4]tchar
	if _, err := CopyWide(dest[:], "🎹"); err != nil {
		t.Fatal(err)
	}
	if uint16(dest[0]) != 0xD83C || uint16(dest[1]) != 0xDFB9 || dest[2] != 0 {
		t.Errorf("dest = %v", dest)
	}
	if got := Wide(dest[:]); got != "🎹" {
		t.Errorf("Wide = %q, want 🎹", got)
	}
}

func TestCopyWide_Properties(t *testing.T) {
	sources := []string{"", "a", "gain", "Output Gain", "Ärger über Öl", "🎹 piano 🎸", "日本語パラメータ"}
	for _, src := range sources {
		units := utf16.Encode([]rune(src))
		for n := 0; n <= 24; n++ {
			dest, backing := guardedWide(n, 8)
			copied, err := CopyWide(dest, src)
			if err != nil {
				t.Fatalf("%q cap %d: %v", src, n, err)
			}
			checkWideGuard(t, backing, n)
			if n == 0 {
				continue
			}

			want := min(n-1, len(units))
			if copied != want {
				t.Errorf("%q cap %d: copied %d, want %d", src, n, copied, want)
			}
			if dest[copied] != 0 {
				t.Errorf("%q cap %d: missing terminator at %d", src, n, copied)
			}
			if !slices.Equal(dest[:copied], units[:copied]) {
				t.Errorf("%q cap %d: prefix %#x, want %#x", src, n, dest[:copied], units[:copied])
			}
		}
	}
}

func TestCopyWide_Idempotent(t *testing.T) {
	a := make([]uint16, 5)
	b := make([]uint16, 5)
	_, _ = CopyWide(a, "a🎹bc")
	_, _ = CopyWide(b, "a🎹bc")
	_, _ = CopyWide(b, "a🎹bc")
	if !slices.Equal(a, b) {
		t.Errorf("repeated copy differs: %#x vs %#x", a, b)
	}
}

func TestWideLen(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"", 0},
		{"gain", 4},
		{"Ärger", 5},
		{"a🎹", 3},
	}
	for _, tt := range tests {
		n, err := WideLen(tt.src)
		if err != nil || n != tt.want {
			t.Errorf("WideLen(%q) = %d, %v; want %d", tt.src, n, err, tt.want)
		}
	}
	if _, err := WideLen("\xff"); err == nil {
		t.Error("WideLen should reject invalid UTF-8")
	}
}

func TestWide(t *testing.T) {
	if got := Wide([]uint16{'m', 'i', 'x', 0, 'z'}); got != "mix" {
		t.Errorf("Wide = %q, want mix", got)
	}
	if got := Wide([]uint16{'a', 0xD83C}); got != "a�" {
		t.Errorf("split pair decoded as %q", got)
	}
}

func BenchmarkCopyWide(b *testing.B) {
	var dest [128]uint16
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = CopyWide(dest[:], "Filter Envelope Attack")
	}
}
