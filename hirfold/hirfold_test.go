package hirfold

import (
	"regexp/syntax"
	"testing"
)

func parse(t *testing.T, pattern string) *syntax.Regexp {
	t.Helper()
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		t.Fatalf("syntax.Parse(%q): %v", pattern, err)
	}
	return re.Simplify()
}

func TestFoldSingleLiteral(t *testing.T) {
	re := parse(t, "abc")
	result := Fold(re, MaxFoldedLiterals)

	if len(result.Literals) != 1 || result.Literals[0] != "abc" {
		t.Fatalf("Literals = %v, want [\"abc\"]", result.Literals)
	}
	if len(result.Placeholders) != 1 {
		t.Fatalf("Placeholders has %d entries, want 1", len(result.Placeholders))
	}
	if result.Root.Op != syntax.OpLiteral || len(result.Root.Rune) != 1 || result.Root.Rune[0] != 0 {
		t.Fatalf("Root = %+v, want a single placeholder byte 0", result.Root)
	}
}

func TestFoldPreservesNonLiteralStructure(t *testing.T) {
	re := parse(t, `abc|\d+`)
	result := Fold(re, MaxFoldedLiterals)

	if result.Root.Op != syntax.OpAlternate {
		t.Fatalf("Root.Op = %v, want OpAlternate", result.Root.Op)
	}
	if len(result.Literals) != 1 || result.Literals[0] != "abc" {
		t.Fatalf("Literals = %v, want only the literal leaf folded", result.Literals)
	}
}

func TestFoldOriginalTreeUntouched(t *testing.T) {
	re := parse(t, "abc|def")
	original := re.String()
	_ = Fold(re, MaxFoldedLiterals)

	if re.String() != original {
		t.Fatalf("Fold mutated its input: got %q, want %q", re.String(), original)
	}
}

func TestFoldRespectsLimit(t *testing.T) {
	re := parse(t, "ab|cd|ef")
	result := Fold(re, 2)

	if len(result.Literals) != 2 {
		t.Fatalf("Literals has %d entries, want 2 (limit)", len(result.Literals))
	}
}

func TestFoldCaseFlagPropagates(t *testing.T) {
	re := parse(t, "(?i)abc")
	result := Fold(re, MaxFoldedLiterals)

	if len(result.FoldCase) != 1 || !result.FoldCase[0] {
		t.Fatalf("FoldCase = %v, want [true]", result.FoldCase)
	}
}

func TestFoldZeroLimitFoldsNothing(t *testing.T) {
	re := parse(t, "abc")
	result := Fold(re, 0)

	if len(result.Literals) != 0 {
		t.Fatalf("Literals = %v, want empty when limit is 0", result.Literals)
	}
	if result.Root.Op != syntax.OpLiteral || len(result.Root.Rune) != 3 {
		t.Fatalf("Root = %+v, want the original unfolded literal", result.Root)
	}
}
