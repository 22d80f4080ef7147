package romaji

import (
	"errors"
	"testing"
)

func TestRomanizeKanaPrefix(t *testing.T) {
	d := NewDictionary(DefaultConfig())
	tests := []struct {
		name     string
		in       string
		wantN    int
		wantRom  string
		wantOK   bool
	}{
		{"single kana", "こんにちは", len("こ"), "ko", true},
		{"no match", "abc", 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, rom, ok := d.RomanizeKanaPrefix([]byte(tt.in))
			if n != tt.wantN || rom != tt.wantRom || ok != tt.wantOK {
				t.Errorf("RomanizeKanaPrefix(%q) = (%d, %q, %v), want (%d, %q, %v)",
					tt.in, n, rom, ok, tt.wantN, tt.wantRom, tt.wantOK)
			}
		})
	}
}

func TestRomanizeWordAndTryForEachKanjiHeteronym(t *testing.T) {
	d := NewDictionary(DefaultConfig())
	var readings []string
	d.RomanizeWordAndTryForEach([]byte("奈々"), 0, func(n int, romaji string) (any, bool) {
		readings = append(readings, romaji)
		return nil, false
	})
	want := []string{"dai", "ikan", "karanashi", "na", "nai"}
	if len(readings) != len(want) {
		t.Fatalf("got %v, want %v", readings, want)
	}
	for i := range want {
		if readings[i] != want[i] {
			t.Fatalf("got %v, want %v", readings, want)
		}
	}
}

func TestRomanizeWordAndTryForEachNomaRepetition(t *testing.T) {
	// 水樹奈々: the trailing 々 must, per spec.md §4.B, yield 奈's own
	// readings again (since 奈 immediately precedes it) before the literal
	// "noma" fallback.
	full := []byte("水樹奈々")
	pos := len("水樹奈") // byte offset of 々

	var gotReadings []string
	d := NewDictionary(DefaultConfig())
	d.RomanizeWordAndTryForEach(full, pos, func(n int, romaji string) (any, bool) {
		gotReadings = append(gotReadings, romaji)
		return nil, false
	})

	wantPrefix := []string{"dai", "ikan", "karanashi", "na", "nai"}
	for i, w := range wantPrefix {
		if gotReadings[i] != w {
			t.Fatalf("reading %d = %q, want %q (full: %v)", i, gotReadings[i], w, gotReadings)
		}
	}
	if gotReadings[len(gotReadings)-1] != NomaRomaji {
		t.Fatalf("expected final fallback %q, got %v", NomaRomaji, gotReadings)
	}
}

func TestRomanizeWordAndTryForEachNomaTooEarly(t *testing.T) {
	// 々 at the very start of the haystack (pos=0 < KanjiMinLen) has no
	// preceding kanji to repeat; only the literal "noma" fallback fires.
	d := NewDictionary(DefaultConfig())
	var got []string
	d.RomanizeWordAndTryForEach([]byte("々"), 0, func(n int, romaji string) (any, bool) {
		got = append(got, romaji)
		return nil, false
	})
	if len(got) != 1 || got[0] != NomaRomaji {
		t.Fatalf("got %v, want [%q]", got, NomaRomaji)
	}
}

func TestCacheRoundTrip(t *testing.T) {
	d := NewDictionary(DefaultConfig())
	blob, err := d.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	restored, err := Deserialize(blob, true)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if n, rom, ok := restored.RomanizeKanaPrefix([]byte("こんにちは")); !ok || rom != "ko" || n != len("こ") {
		t.Fatalf("restored dictionary lookup failed: n=%d rom=%q ok=%v", n, rom, ok)
	}

	if _, err := Deserialize(blob, false); !errors.Is(err, ErrKanjiFlagMismatch) {
		t.Fatalf("expected ErrKanjiFlagMismatch, got %v", err)
	}

	corrupted := append([]byte(nil), blob...)
	corrupted[0] = 'X'
	if _, err := Deserialize(corrupted, true); !errors.Is(err, ErrBadMagic) {
		t.Fatalf("expected ErrBadMagic, got %v", err)
	}
}
