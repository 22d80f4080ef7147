package unicodeutil

import "testing"

func TestMonoLowercase(t *testing.T) {
	tests := []struct {
		name string
		in   rune
		want rune
	}{
		{"ascii upper", 'A', 'a'},
		{"already lower", 'a', 'a'},
		{"turkish dotted I", 'İ', 'i'},
		{"greek sigma unconditional", 'Σ', 'σ'},
		{"han unaffected", '拼', '拼'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonoLowercase(tt.in); got != tt.want {
				t.Errorf("MonoLowercase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFindNonASCIIByte(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want int
	}{
		{"empty", nil, -1},
		{"all ascii short", []byte("abc"), -1},
		{"all ascii long", []byte("abcdefghijklmnop"), -1},
		{"non-ascii at start", []byte("\xe6\x8b\xbcabc"), 0},
		{"non-ascii after 8 bytes", []byte("abcdefgh\xe6\x8b\xbc"), 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindNonASCIIByte(tt.in); got != tt.want {
				t.Errorf("FindNonASCIIByte(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFloorCeilCharBoundary(t *testing.T) {
	s := []byte("a拼b") // 'a'(1) + 拼(3 bytes) + 'b'(1)
	if got := FloorCharBoundary(s, 2); got != 1 {
		t.Errorf("FloorCharBoundary(2) = %d, want 1", got)
	}
	if got := CeilCharBoundary(s, 2); got != 4 {
		t.Errorf("CeilCharBoundary(2) = %d, want 4", got)
	}
	if got := FloorCharBoundary(s, len(s)+5); got != len(s) {
		t.Errorf("FloorCharBoundary(out of range) = %d, want %d", got, len(s))
	}
}
