package meta

import (
	"errors"
	"testing"

	"github.com/ibgo/ibmatcher/analyzer"
	"github.com/ibgo/ibmatcher/matcher"
	"github.com/ibgo/ibmatcher/pinyin"
	"github.com/ibgo/ibmatcher/romaji"
)

func TestCompilePlainRegex(t *testing.T) {
	re, err := Compile(`\d{3}-\d{4}`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	m := re.Find([]byte("call 555-1234 now"))
	if m == nil {
		t.Fatalf("expected a match")
	}
	if m.String() != "555-1234" {
		t.Fatalf("match = %q, want %q", m.String(), "555-1234")
	}
}

func TestCompileInvalidPatternErrors(t *testing.T) {
	_, err := Compile(`(unterminated`)
	if err == nil {
		t.Fatalf("expected an error for an invalid pattern")
	}
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v (%T), want *CompileError", err, err)
	}
}

// scenario 5 of spec.md §8: "pyss" via regex with pinyin notations
// {Ascii, Ascii-first-letter} against "apyss".
func TestCompileMatchLiteralFolding(t *testing.T) {
	notations := pinyin.NotationSet(pinyin.NotationAsciiQuanpin).With(pinyin.NotationAsciiFirstLetter)
	dict := pinyin.NewDictionary()
	dict.InitNotations(notations)

	matchCfg := &matcher.Config{
		CaseInsensitive: true,
		Pinyin:          &matcher.PinyinConfig{Notations: notations, Dict: dict},
	}

	re, err := CompileMatch("pyss", matchCfg, analyzer.Standard)
	if err != nil {
		t.Fatalf("CompileMatch: %v", err)
	}

	m := re.Find([]byte("apyss"))
	if m == nil {
		t.Fatalf("expected a match")
	}
	if m.Start() != 1 || m.End() != 5 {
		t.Fatalf("match = [%d,%d), want [1,5)", m.Start(), m.End())
	}
}

func TestCompileMatchWithRomajiInRegex(t *testing.T) {
	matchCfg := &matcher.Config{
		CaseInsensitive: true,
		Romaji:          &matcher.RomajiConfig{Dict: romaji.NewDictionary(romaji.DefaultConfig())},
	}

	re, err := CompileMatch(`raki.suta`, matchCfg, analyzer.Standard)
	if err != nil {
		t.Fatalf("CompileMatch: %v", err)
	}
	_ = re // exercised further by the literal matcher's own romaji tests;
	// here we only confirm the folded-literal build succeeds end to end.
}

func TestFindIterNonOverlapping(t *testing.T) {
	re, err := Compile(`\d+`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	it := re.FindIter([]byte("1 22 333"))
	var got []string
	for {
		m := it.Next()
		if m == nil {
			break
		}
		got = append(got, m.String())
	}
	want := []string{"1", "22", "333"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCapturesGroupIndex(t *testing.T) {
	re, err := Compile(`(\w+)@(\w+)`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	cm := re.Captures([]byte("user@example"))
	if cm == nil {
		t.Fatalf("expected a match")
	}
	if string(cm.Group(1)) != "user" {
		t.Fatalf("group 1 = %q, want %q", cm.Group(1), "user")
	}
	if string(cm.Group(2)) != "example" {
		t.Fatalf("group 2 = %q, want %q", cm.Group(2), "example")
	}
}

// scenario 7 of spec.md §8: leftmost-first alternation precedence.
func TestAlternationLeftmostFirst(t *testing.T) {
	re, err := Compile(`samwise|sam`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	m := re.Find([]byte("samwise"))
	if m == nil {
		t.Fatalf("expected a match")
	}
	if m.Start() != 0 || m.End() != 7 {
		t.Fatalf("match = [%d,%d), want [0,7)", m.Start(), m.End())
	}
}

func TestTryIsMatchHaystackTooLong(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VisitedCapacity = 1024 // smallest cap Validate accepts; a 1 MiB haystack exceeds it
	re, err := CompileWithConfig(`a+`, cfg)
	if err != nil {
		t.Fatalf("CompileWithConfig: %v", err)
	}

	_, err = re.TryIsMatch(make([]byte, 1<<20))
	if err == nil {
		t.Fatalf("expected ErrHaystackTooLong for an oversized haystack")
	}
	var me *MatchError
	if !errors.As(err, &me) {
		t.Fatalf("error = %v (%T), want *MatchError", err, err)
	}
}

func TestIsMatchPanicsOnOversizedHaystack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VisitedCapacity = 1024
	re, err := CompileWithConfig(`a+`, cfg)
	if err != nil {
		t.Fatalf("CompileWithConfig: %v", err)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected IsMatch to panic for an oversized haystack")
		}
	}()
	re.IsMatch(make([]byte, 1<<20))
}
