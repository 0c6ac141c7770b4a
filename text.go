package edist

import "github.com/rivo/uniseg"

// Text adapters. The evaluators work on sequences of comparable elements;
// these helpers decompose UTF-8 text into atomic units first. Two
// granularities are offered:
//
//   - codepoint (rune): one unit per Unicode code point, the cheap option;
//   - grapheme cluster: one unit per user-perceived character, so a
//     combining sequence or an emoji ZWJ family edits as a single unit.
//
// No Unicode normalization is performed on either side; normalize first
// if "é" and "é" should compare equal.

// EditsStrings returns the minimal edit script between two strings at
// codepoint granularity under UnitCost.
func EditsStrings(a, b string) Script[rune] {
	return EditsFunc([]rune(a), []rune(b), UnitCost[rune])
}

// EditsStringsFunc is EditsStrings with a caller-supplied cost function.
func EditsStringsFunc(a, b string, cost CostFunc[rune]) Script[rune] {
	return EditsFunc([]rune(a), []rune(b), cost)
}

// EditsGraphemes returns the minimal edit script between two strings at
// extended-grapheme-cluster granularity under UnitCost. Each element of
// the script carries one whole cluster as a string.
func EditsGraphemes(a, b string) Script[string] {
	return EditsFunc(graphemes(a), graphemes(b), UnitCost[string])
}

// EditsGraphemesFunc is EditsGraphemes with a caller-supplied cost function.
func EditsGraphemesFunc(a, b string, cost CostFunc[string]) Script[string] {
	return EditsFunc(graphemes(a), graphemes(b), cost)
}

// LevenshteinStrings returns the codepoint-wise Levenshtein distance of
// two UTF-8 strings.
func LevenshteinStrings(a, b string) int {
	return Levenshtein([]rune(a), []rune(b))
}

// LevenshteinGraphemes returns the Levenshtein distance of two UTF-8
// strings counted in extended grapheme clusters.
func LevenshteinGraphemes(a, b string) int {
	return Levenshtein(graphemes(a), graphemes(b))
}

// graphemes splits s into extended grapheme clusters, per UAX #29.
func graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}

	return out
}
