package ibmatcher

import (
	"testing"

	"github.com/ibgo/ibmatcher/analyzer"
	"github.com/ibgo/ibmatcher/matcher"
	"github.com/ibgo/ibmatcher/pinyin"
	"github.com/ibgo/ibmatcher/romaji"
)

// scenario 1: "pysousuoeve" against "拼音搜索Everything" (mixed pinyin
// first-letter + quanpin, then a plain English tail).
func TestMatcherPinyinMixedNotations(t *testing.T) {
	dict := pinyin.NewDictionary()
	dict.InitNotations(pinyin.AllNotations)
	cfg := &matcher.Config{
		CaseInsensitive: true,
		Pinyin:          &matcher.PinyinConfig{Notations: pinyin.AllNotations, Dict: dict},
	}

	m := NewMatcher("pysousuoeve", matcher.LangNone, cfg, analyzer.Standard)
	match, ok := m.Find([]byte("拼音搜索Everything"))
	if !ok {
		t.Fatalf("expected a match")
	}
	if match.Start != 0 {
		t.Fatalf("Start = %d, want 0", match.Start)
	}
}

// scenario 2: "konosuba" against "この素晴らしい世界に祝福を", a partial
// match ending mid-word through the romaji sub-matcher.
func TestMatcherRomajiPartialMatch(t *testing.T) {
	dict := romaji.NewDictionary(romaji.DefaultConfig())
	cfg := &matcher.Config{
		CaseInsensitive: true,
		Romaji:          &matcher.RomajiConfig{Dict: dict, PartialWord: true},
	}

	m := NewMatcher("konosuba", matcher.LangNone, cfg, analyzer.Standard)
	match, ok := m.Find([]byte("この素晴らしい世界に祝福を"))
	if !ok {
		t.Fatalf("expected a partial match")
	}
	if match.Start != 0 {
		t.Fatalf("Start = %d, want 0", match.Start)
	}
}

// scenario 10: "mizukinana" against "水樹奈々", exercising the NOMA (々)
// kanji-repetition fallback.
func TestMatcherRomajiNomaRepetition(t *testing.T) {
	dict := romaji.NewDictionary(romaji.DefaultConfig())
	cfg := &matcher.Config{
		CaseInsensitive: true,
		Romaji:          &matcher.RomajiConfig{Dict: dict},
	}

	m := NewMatcher("mizukinana", matcher.LangNone, cfg, analyzer.Standard)
	haystack := []byte("水樹奈々")
	match, ok := m.Find(haystack)
	if !ok {
		t.Fatalf("expected a match consuming the repeated 奈 via 々")
	}
	if match.Start != 0 || match.End != len(haystack) {
		t.Fatalf("match = %+v, want a full-string match", match)
	}
}

// scenario 5: "pyss" via a regex, with the pinyin literal matcher wired in
// through literal folding, found inside "apyssb".
func TestRegexPinyinLiteralFolding(t *testing.T) {
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
	m := re.Find([]byte("apyssb"))
	if m == nil {
		t.Fatalf("expected a match")
	}
	if m.String() != "pyss" {
		t.Fatalf("match = %q, want %q", m.String(), "pyss")
	}
}

// scenario 7: leftmost-first alternation precedence, "samwise|sam" must take
// the first alternative when both could match at the same start position.
func TestRegexAlternationLeftmostFirst(t *testing.T) {
	re, err := Compile(`samwise|sam`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	m := re.Find([]byte("samwise"))
	if m == nil || m.String() != "samwise" {
		t.Fatalf("match = %v, want %q", m, "samwise")
	}
}

// scenario 9: a plain date regex with no pinyin/romaji involvement at all.
func TestRegexPlainDatePattern(t *testing.T) {
	re, err := Compile(`^\d{4}-\d{2}-\d{2}$`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !re.IsMatch([]byte("2026-07-31")) {
		t.Fatalf("expected 2026-07-31 to match")
	}
	if re.IsMatch([]byte("2026-7-31")) {
		t.Fatalf("did not expect 2026-7-31 to match (missing zero padding)")
	}
}

func TestRegexCapturesAndSubexpNames(t *testing.T) {
	re, err := Compile(`(?P<user>\w+)@(?P<host>\w+)`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	names := re.SubexpNames()
	if len(names) != 3 || names[1] != "user" || names[2] != "host" {
		t.Fatalf("SubexpNames = %v, want [\"\" \"user\" \"host\"]", names)
	}

	cm := re.Captures([]byte("alice@example"))
	if cm == nil {
		t.Fatalf("expected a match")
	}
	if string(cm.Group(1)) != "alice" || string(cm.Group(2)) != "example" {
		t.Fatalf("groups = %q/%q, want alice/example", cm.Group(1), cm.Group(2))
	}
}

func TestRegexFindIterAcrossHaystack(t *testing.T) {
	re, err := Compile(`\d+`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	it := re.FindIter([]byte("a1 b22 c333"))
	var matches []string
	for {
		m := it.Next()
		if m == nil {
			break
		}
		matches = append(matches, m.String())
	}
	if len(matches) != 3 || matches[0] != "1" || matches[1] != "22" || matches[2] != "333" {
		t.Fatalf("matches = %v, want [1 22 333]", matches)
	}
}

func TestRegexCloneSharesCompiledEngine(t *testing.T) {
	re, err := Compile(`foo`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	clone := re.Clone()
	if !clone.IsMatch([]byte("xfoox")) {
		t.Fatalf("clone should behave identically to the original")
	}
}

func TestMustCompilePanicsOnInvalidPattern(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected MustCompile to panic on an invalid pattern")
		}
	}()
	MustCompile(`(unterminated`)
}
