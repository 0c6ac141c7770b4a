package edist

// ReduceMoves rewrites a forward-ordered edit script so that a Delete and
// an Insert of the same value collapse into a single Move: the origin
// index comes from the Delete, the destination from the Insert.
//
// Matching is FIRST-FOUND over the whole input script, not
// nearest-index: for every Insert the first Delete of equal value wins
// (and vice versa). When both halves of a pair resolve, they yield equal
// Move tuples and the duplicate is dropped. With several same-value
// pairs in flight this can produce a non-intuitive pairing; that is the
// documented behavior, relied upon by callers that replay scripts.
//
// Output order follows input order with duplicate Moves removed;
// Substitutes and unmatched Inserts/Deletes pass through untouched.
//
// Complexity: O(k²) for a script of k operations.
func ReduceMoves[T comparable](script Script[T]) Script[T] {
	out := make(Script[T], 0, len(script))
	emitted := make(map[Edit[T]]struct{})

	for _, e := range script {
		var counterpart Op
		switch e.Op {
		case Insert:
			counterpart = Delete
		case Delete:
			counterpart = Insert
		default:
			out = append(out, e)
			continue
		}

		match, ok := findFirst(script, counterpart, e.Val)
		if !ok {
			out = append(out, e)
			continue
		}

		mv := Edit[T]{Op: Move, Val: e.Val}
		if e.Op == Delete {
			mv.Index, mv.To = e.Index, match.Index
		} else {
			mv.Index, mv.To = match.Index, e.Index
		}
		if _, dup := emitted[mv]; dup {
			continue
		}
		emitted[mv] = struct{}{}
		out = append(out, mv)
	}

	return out
}

// findFirst scans the whole script in order for the first operation of
// the given kind carrying an equal value.
func findFirst[T comparable](script Script[T], kind Op, val T) (Edit[T], bool) {
	for _, e := range script {
		if e.Op == kind && e.Val == val {
			return e, true
		}
	}

	return Edit[T]{}, false
}
