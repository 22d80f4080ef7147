package analyzer

import (
	"reflect"
	"testing"

	"github.com/ibgo/ibmatcher/pinyin"
)

func TestMinHaystackLen(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    int
	}{
		{"ascii", "pysousuoeve", 11},
		{"empty", "", 0},
		{"han", "拼音", 6},
		{"mixed", "a拼", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze([]rune(tt.pattern), pinyin.AllNotations, Standard).MinHaystackLen
			if got != tt.want {
				t.Errorf("MinHaystackLen(%q) = %d, want %d", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestNotationGroupsPrefixCorrectness(t *testing.T) {
	notations := pinyin.NotationSet(pinyin.NotationAsciiQuanpin).With(pinyin.NotationAsciiFirstLetter)
	a := Analyze([]rune("ke"), notations, Standard)

	if !reflect.DeepEqual(a.NotationsPrefixGroup, []pinyin.Notation{pinyin.NotationAsciiFirstLetter, pinyin.NotationAsciiQuanpin}) {
		t.Fatalf("NotationsPrefixGroup = %v, want [AsciiFirstLetter, AsciiQuanpin]", a.NotationsPrefixGroup)
	}
	if len(a.NotationsFallback) != 0 {
		t.Fatalf("NotationsFallback = %v, want empty", a.NotationsFallback)
	}
}

func TestNotationGroupsFallbackWhenNoPrefixRelation(t *testing.T) {
	notations := pinyin.NotationSet(pinyin.NotationShuangpinMS).With(pinyin.NotationToneMarked)
	a := Analyze([]rune("x"), notations, Standard)

	if len(a.NotationsPrefixGroup) != 0 {
		t.Fatalf("NotationsPrefixGroup = %v, want empty (no prefix relation between these two)", a.NotationsPrefixGroup)
	}
	if len(a.NotationsFallback) != 2 {
		t.Fatalf("NotationsFallback = %v, want both notations", a.NotationsFallback)
	}
}

func TestDefaultConfigSkipsGrouping(t *testing.T) {
	notations := pinyin.NotationSet(pinyin.NotationAsciiQuanpin).With(pinyin.NotationAsciiFirstLetter)
	a := Analyze([]rune("ke"), notations, Default)

	if len(a.NotationsPrefixGroup) != 0 {
		t.Fatalf("Default config should not compute a prefix group, got %v", a.NotationsPrefixGroup)
	}
	if len(a.NotationsFallback) != 2 {
		t.Fatalf("Default config should fall back to every enabled notation, got %v", a.NotationsFallback)
	}
}
