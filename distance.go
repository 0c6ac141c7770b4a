package edist

// Levenshtein — edit distance without the script.
//
// Description:
//
//	Levenshtein returns the minimal number of Insert/Delete/Substitute
//	operations transforming a into b, i.e. the total cost of Edits(a, b)
//	under UnitCost. It never materializes a script, so it runs the classic
//	two-row Wagner–Fischer DP instead of the memoized script recursion:
//	same recurrence, same answer, a fraction of the memory.
//
// Algorithm Outline:
//  1. Trim the common prefix and suffix — they contribute nothing.
//  2. Swap so the shorter remainder drives row width.
//  3. One-row DP: row[i] holds the distance from a[:i] to the consumed
//     part of b; prevDiag carries the diagonal value between updates.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(min(n, m))
func Levenshtein[T comparable](a, b []T) int {
	// Common prefix and suffix are free.
	for len(a) > 0 && len(b) > 0 && a[0] == b[0] {
		a, b = a[1:], b[1:]
	}
	for len(a) > 0 && len(b) > 0 && a[len(a)-1] == b[len(b)-1] {
		a, b = a[:len(a)-1], b[:len(b)-1]
	}

	// Keep a the shorter side; its length bounds the row we allocate.
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) == 0 {
		return len(b)
	}

	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}
	for j := 1; j <= len(b); j++ {
		prevDiag := row[0]
		row[0] = j
		for i := 1; i <= len(a); i++ {
			old := row[i]
			if a[i-1] == b[j-1] {
				row[i] = prevDiag
			} else {
				row[i] = 1 + min(row[i-1], old, prevDiag)
			}
			prevDiag = old
		}
	}

	return row[len(a)]
}
