package matcher

import (
	"testing"

	"github.com/ibgo/ibmatcher/analyzer"
	"github.com/ibgo/ibmatcher/pinyin"
	"github.com/ibgo/ibmatcher/romaji"
)

func pinyinCfg(notations pinyin.NotationSet) *PinyinConfig {
	d := pinyin.NewDictionary()
	d.InitNotations(notations)
	return &PinyinConfig{Notations: notations, Dict: d}
}

func romajiCfg() *RomajiConfig {
	return &RomajiConfig{Dict: romaji.NewDictionary(romaji.DefaultConfig())}
}

// scenario 1 of spec.md §8: "pysousuoeve" against "拼音搜索Everything".
func TestPinyinFirstLetterAndQuanpinMix(t *testing.T) {
	cfg := &Config{
		CaseInsensitive: true,
		Pinyin:          pinyinCfg(pinyin.AllNotations),
	}
	p := NewPattern("pysousuoeve", LangNone)
	m := Compile(p, cfg, analyzer.Standard)

	match, ok := m.Find([]byte("拼音搜索Everything"))
	if !ok {
		t.Fatalf("expected a match")
	}
	if match.Start != 0 {
		t.Fatalf("Start = %d, want 0", match.Start)
	}
}

// scenario 2 of spec.md §8: "konosuba" against "この素晴らしい世界に祝福を",
// a partial match ending mid-word.
func TestRomajiPartialWordMatch(t *testing.T) {
	cfg := &Config{
		CaseInsensitive: true,
		Romaji:          romajiCfg(),
		IsPatternPartial: true,
	}
	cfg.Romaji.PartialWord = true
	p := NewPattern("konosuba", LangNone)
	m := Compile(p, cfg, analyzer.Standard)

	match, ok := m.Find([]byte("この素晴らしい世界に祝福を"))
	if !ok {
		t.Fatalf("expected a partial match")
	}
	if match.Start != 0 {
		t.Fatalf("Start = %d, want 0", match.Start)
	}
	if !match.IsPatternPartial {
		t.Fatalf("expected IsPatternPartial, got full match ending at %d", match.End)
	}
}

// scenario 10 of spec.md §8: "mizukinana" against "水樹奈々", exercising the
// NOMA (々) kanji-repetition fallback (package romaji's seedKanji "奈"
// entries, sourced from original_source/ib-romaji/src/kanji.rs).
func TestRomajiNomaRepetition(t *testing.T) {
	cfg := &Config{
		CaseInsensitive: true,
		Romaji:          romajiCfg(),
	}
	p := NewPattern("mizukinana", LangNone)
	m := Compile(p, cfg, analyzer.Standard)

	match, ok := m.Find([]byte("水樹奈々"))
	if !ok {
		t.Fatalf("expected a match consuming the repeated 奈 via 々")
	}
	if match.Start != 0 || match.End != len("水樹奈々") {
		t.Fatalf("match = %+v, want full-string match", match)
	}
}

func TestLangOnlyForbidsPinyin(t *testing.T) {
	cfg := &Config{
		CaseInsensitive: true,
		Pinyin:          pinyinCfg(pinyin.AllNotations),
	}
	p := NewPattern("pin", LangRomajiOnly)
	m := Compile(p, cfg, analyzer.Standard)

	if _, ok := m.Find([]byte("拼")); ok {
		t.Fatalf("LangRomajiOnly must forbid pinyin candidates")
	}
}

func TestLangEnglishOnlyIsLiteralOnly(t *testing.T) {
	cfg := &Config{
		CaseInsensitive: true,
		Pinyin:          pinyinCfg(pinyin.AllNotations),
		Romaji:          romajiCfg(),
	}
	p := NewPattern("PIN", LangEnglishOnly)
	m := Compile(p, cfg, analyzer.Standard)

	if _, ok := m.Find([]byte("拼")); ok {
		t.Fatalf("LangEnglishOnly must never consult pinyin")
	}
	if !m.IsMatch([]byte("xxpinxx")) {
		t.Fatalf("LangEnglishOnly must still match case-insensitive literal text")
	}
}

func TestStartsWithAnchorsFind(t *testing.T) {
	cfg := &Config{CaseInsensitive: true, StartsWith: true}
	p := NewPattern("abc", LangNone)
	m := Compile(p, cfg, analyzer.Standard)

	if _, ok := m.Find([]byte("xabc")); ok {
		t.Fatalf("StartsWith must reject a match not at position 0")
	}
	if _, ok := m.Find([]byte("abcx")); !ok {
		t.Fatalf("StartsWith must accept a match at position 0")
	}
}

func TestTestIsAlwaysAnchored(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPattern("abc", LangNone)
	m := Compile(p, cfg, analyzer.Default)

	if m.Test([]byte("xabc")) {
		t.Fatalf("Test must not match when pattern isn't at position 0")
	}
	if !m.Test([]byte("abcxyz")) {
		t.Fatalf("Test must match a prefix at position 0")
	}
}

func TestFindAtAnchorsExactlyAtPos(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPattern("bc", LangNone)
	m := Compile(p, cfg, analyzer.Default)

	n, ok := m.FindAt([]byte("abcd"), 1)
	if !ok || n != 2 {
		t.Fatalf("FindAt(pos=1) = (%d, %v), want (2, true)", n, ok)
	}
	if _, ok := m.FindAt([]byte("abcd"), 0); ok {
		t.Fatalf("FindAt(pos=0) must not match when pattern starts at pos 1")
	}
}

func TestAsciiAutomatonFastPath(t *testing.T) {
	cfg := DefaultConfig() // CaseInsensitive, no pinyin/romaji: LangEnglishOnly+ASCII pattern takes the automaton path
	p := NewPattern("hello", LangEnglishOnly)
	m := Compile(p, cfg, analyzer.Standard)

	match, ok := m.Find([]byte("say HELLO there"))
	if !ok {
		t.Fatalf("expected ASCII fast path to find case-insensitive match")
	}
	if match.Start != 4 || match.End != 9 {
		t.Fatalf("match = %+v, want {Start:4 End:9}", match)
	}
}
