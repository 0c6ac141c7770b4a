// Package edist computes minimal edit scripts and Levenshtein distances
// between ordered sequences of comparable elements, with pluggable
// per-operation costs.
//
// 🚀 What is edist?
//
//	Given a source and a target sequence, edist answers two questions:
//	  • WHAT edits turn source into target? → Edits / EditsFunc
//	  • HOW FAR apart are they?             → Levenshtein
//	The script is minimal under the supplied cost function, and matching
//	Delete/Insert pairs of equal value are collapsed into Move operations.
//	Typical uses: fuzzy matching, spell-check suggestions, reconciling
//	ordered collections, human-readable "what changed" output.
//
// ✨ Key features:
//   - generic over any comparable element type — runes, strings, ints, any
//   - caller-supplied cost function to bias the script shape
//     (e.g. price Substitute high to prefer Insert+Delete, hence Moves)
//   - deterministic tie-breaking: Delete, then Insert, then Substitute
//   - Move detection as a separate, reusable pass (ReduceMoves)
//   - text adapters at codepoint and grapheme-cluster granularity
//   - scripts replay with Script.Apply and pretty-print with Script.String
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/edist"
//
//	script := edist.EditsStrings("avery", "garvey")
//	fmt.Println(script)              // + g@0, > r@[3→2]
//	dist := edist.LevenshteinStrings("kitten", "sitting") // 3
//
// Index semantics: Delete and Move-origin indices refer to the ORIGINAL
// source; Insert, Substitute and Move-destination indices refer to the
// FINAL target. See Edit for the full contract.
//
// Concurrency: every call owns its DP state outright — no globals, no
// shared caches — so concurrent calls from any number of goroutines are
// safe without locking.
//
// Performance:
//
//   - Edits:       O(n·m) DP states, O(n·m) memory for the memo table
//   - Levenshtein: O(n·m) time, O(min(n,m)) memory (two-row DP,
//     common prefix/suffix trimmed first)
//
// No Unicode normalization is performed; callers who need NFC/NFD
// equivalence must normalize before diffing.
package edist
