package romaji

// seedKana, seedKanji, and seedWord stand in for ib-romaji's full reference
// tables (explicitly out of scope per spec.md §1 — "Romaji and pinyin
// reference data (static tables)"). The kanji entries for 奈 are taken
// verbatim from ib-romaji's own kanji.rs noma test (original_source/
// ib-romaji/src/kanji.rs) so the 々 repetition-mark scenario (spec.md §8,
// scenario #10: "mizukinana" / 水樹奈々) reproduces exactly.
func seedKana() map[string]string {
	return map[string]string{
		"こ": "ko",
		"の": "no",
		"す": "su",
		"ば": "ba",
		"ら": "ra",
		"し": "shi",
		"い": "i",
		"ん": "n",
	}
}

func seedKanji() map[rune][]string {
	return map[rune][]string{
		'水': {"mizu", "sui"},
		'樹': {"ki", "ju"},
		'奈': {"dai", "ikan", "karanashi", "na", "nai"},
		'素': {"su", "moto"},
		'晴': {"hare", "sei"},
	}
}

func seedWord() map[string][]string {
	return map[string][]string{
		"素晴らしい": {"subarashii"},
	}
}
