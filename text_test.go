package edist_test

import (
	"testing"

	"github.com/katalvlaran/edist"
	"github.com/stretchr/testify/assert"
)

// TestEditsStrings_Codepoints verifies the rune-level adapter, including
// multi-byte codepoints indexed by rune position, not byte offset.
func TestEditsStrings_Codepoints(t *testing.T) {
	got := edist.EditsStrings("café", "cafe") // "café" with precomposed é

	want := edist.Script[rune]{{Op: edist.Substitute, Val: 'e', Index: 3}}
	assert.Equal(t, want, got, "é→e is one substitution at rune index 3")

	// 日本語 → 日本誤
	got = edist.EditsStrings("日本語", "日本誤")
	want = edist.Script[rune]{{Op: edist.Substitute, Val: '誤', Index: 2}}
	assert.Equal(t, want, got, "CJK substitution at rune index 2")
}

// TestEditsGraphemes_CombiningMark shows the difference between the two
// granularities: "e" + U+0301 is one grapheme cluster but two codepoints.
func TestEditsGraphemes_CombiningMark(t *testing.T) {
	composed := "café" // "café" spelled with a combining acute accent

	got := edist.EditsGraphemes(composed, "cafe")
	want := edist.Script[string]{{Op: edist.Substitute, Val: "e", Index: 3}}
	assert.Equal(t, want, got, "the accented cluster substitutes as one unit")

	// At codepoint granularity the same pair is a single deletion of the
	// combining mark instead.
	runes := edist.EditsStrings(composed, "cafe")
	assert.Equal(t, edist.Script[rune]{{Op: edist.Delete, Val: '́', Index: 4}}, runes,
		"codepoint view deletes the combining mark")
}

// TestLevenshteinGraphemes_EmojiFamily exercises ZWJ sequences: a family
// emoji is one grapheme cluster but several codepoints.
func TestLevenshteinGraphemes_EmojiFamily(t *testing.T) {
	family := "\U0001F468‍\U0001F469‍\U0001F467" // man+ZWJ+woman+ZWJ+girl
	man := "\U0001F468"

	assert.Equal(t, 1, edist.LevenshteinGraphemes(family, man),
		"one cluster replaced by another is distance 1")
	assert.Equal(t, 4, edist.LevenshteinStrings(family, man),
		"codepoint view deletes the four codepoints after the shared leading man")
}

// TestLevenshteinGraphemes_PlainASCII must agree with the codepoint view
// when no multi-codepoint clusters are involved.
func TestLevenshteinGraphemes_PlainASCII(t *testing.T) {
	assert.Equal(t, edist.LevenshteinStrings("kitten", "sitting"),
		edist.LevenshteinGraphemes("kitten", "sitting"),
		"granularities agree on plain ASCII")
}

// TestEditsGraphemesFunc_CustomCost checks the cost function flows
// through the grapheme adapter.
func TestEditsGraphemesFunc_CustomCost(t *testing.T) {
	expensiveSub := func(op edist.Op, _ string, _ int) float64 {
		if op == edist.Substitute {
			return 3
		}

		return 1
	}

	got := edist.EditsGraphemesFunc("abc", "adc", expensiveSub)
	want := edist.Script[string]{
		{Op: edist.Insert, Val: "d", Index: 1},
		{Op: edist.Delete, Val: "b", Index: 1},
	}
	assert.Equal(t, want, got, "cost bias applies at grapheme granularity too")
}
