package pinyin

import "testing"

func TestInitNotationsIdempotent(t *testing.T) {
	d := NewDictionary()
	d.InitNotations(NotationSet(NotationAsciiQuanpin))
	first := d.InitedNotations()
	d.InitNotations(NotationSet(NotationAsciiQuanpin))
	second := d.InitedNotations()
	if first != second {
		t.Fatalf("InitNotations not idempotent: %v != %v", first, second)
	}
	if !second.Has(NotationAsciiQuanpin) {
		t.Fatalf("expected NotationAsciiQuanpin initialized")
	}
}

func TestGetPinyinsAndTryForEach(t *testing.T) {
	d := NewDictionary()
	d.InitNotations(AllNotations)

	var seen []string
	result, stop := d.GetPinyinsAndTryForEach('行', func(e PinyinEntry) (any, bool) {
		s, _ := e.Notation(NotationAsciiQuanpin)
		seen = append(seen, s)
		if s == "hang" {
			return s, true
		}
		return nil, false
	})
	if !stop || result != "hang" {
		t.Fatalf("expected early stop at hang, got result=%v stop=%v seen=%v", result, stop, seen)
	}
	if len(seen) != 2 {
		t.Fatalf("expected both readings of 行 visited before stop, got %v", seen)
	}
}

func TestPrefixing(t *testing.T) {
	if !Prefixing(NotationAsciiFirstLetter, NotationAsciiQuanpin) {
		t.Fatal("expected AsciiFirstLetter to be a prefix notation of AsciiQuanpin")
	}
	if Prefixing(NotationAsciiQuanpin, NotationAsciiFirstLetter) {
		t.Fatal("prefix relation must not be symmetric")
	}
}
