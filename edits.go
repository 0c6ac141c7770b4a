package edist

// Edits — minimal edit script via memoized recursive DP.
//
// Description:
//
//	Edits computes one minimal-cost sequence of Insert/Delete/Substitute
//	operations transforming src into tgt, then collapses matching
//	Delete/Insert pairs of equal value into Move operations
//	(see ReduceMoves). Costs come from a caller-supplied CostFunc, so the
//	script shape can be biased — e.g. an expensive Substitute pushes the
//	result toward Insert+Delete pairs and therefore toward Moves.
//
// Algorithm Outline:
//  1. The recursion conceptually consumes the REVERSED inputs head-first,
//     which is the same as walking the original sequences back-to-front.
//     A state is the pair of remaining prefix lengths (i, j): src[:i] and
//     tgt[:j] are still unprocessed, and the elements under decision are
//     src[i-1] and tgt[j-1].
//  2. Base cases: (0, 0) is the empty script at cost 0; with one side
//     empty, the other drains through Insert/Delete operations.
//  3. Equal heads match silently: no operation is emitted and no cost is
//     added — the state collapses to (i-1, j-1).
//  4. Unequal heads evaluate three continuations, in this fixed order:
//     Delete src[i-1], Insert tgt[j-1], Substitute by tgt[j-1].
//     Each candidate cost = recursive subcost + CostFunc of the new
//     operation. The FIRST candidate achieving the minimum wins, so ties
//     break Delete → Insert → Substitute.
//  5. Operation indices derive from the remaining length at decision time
//     (i-1 for Delete, j-1 for Insert and Substitute), which is exactly
//     the element's position in the original sequence.
//  6. Every state is solved at most once per call: results are memoized in
//     a table owned by the call frame, so concurrent calls never share
//     state and no locking is needed.
//  7. The recursion resolves scripts back-to-front; the finished list is
//     reversed into forward order and handed to ReduceMoves.
//
// Complexity:
//
//	Time   = O(n·m) states (script copies add an O(n+m) factor per state)
//	Memory = O(n·m) memo entries, released when the call returns
//
// Errors: none. Any panic raised by the CostFunc propagates unrecovered
// and no partial script is returned.

// Edits returns a minimal edit script transforming src into tgt under
// UnitCost, with equal-value Delete/Insert pairs collapsed into Moves.
// An empty script means the sequences are already equal.
func Edits[T comparable](src, tgt []T) Script[T] {
	return EditsFunc(src, tgt, UnitCost[T])
}

// EditsFunc is Edits with a caller-supplied cost function.
// A nil cost falls back to UnitCost.
func EditsFunc[T comparable](src, tgt []T, cost CostFunc[T]) Script[T] {
	if cost == nil {
		cost = UnitCost[T]
	}

	// The memo table lives and dies with this call.
	ev := &evaluator[T]{
		src:   src,
		tgt:   tgt,
		cost:  cost,
		memo:  make([]cell[T], (len(src)+1)*(len(tgt)+1)),
		width: len(tgt) + 1,
	}
	backward, _ := ev.solve(len(src), len(tgt))

	// Restore forward (ascending-position) order before post-processing.
	forward := make(Script[T], len(backward))
	for k, e := range backward {
		forward[len(backward)-1-k] = e
	}

	return ReduceMoves(forward)
}

// cell is one memoized subproblem result. The stored script is in
// backward (descending-position) order and is shared between states that
// resolve to it, so it must never be mutated — prepend always copies.
type cell[T comparable] struct {
	script []Edit[T]
	cost   float64
	done   bool
}

// evaluator carries the per-call state of the DP recursion.
type evaluator[T comparable] struct {
	src, tgt []T
	cost     CostFunc[T]
	memo     []cell[T]
	width    int // len(tgt)+1, row stride of the memo table
}

// solve returns the minimal script and cost for the state (i, j): the
// first i elements of src and first j elements of tgt remain unprocessed.
func (ev *evaluator[T]) solve(i, j int) ([]Edit[T], float64) {
	c := &ev.memo[i*ev.width+j]
	if c.done {
		return c.script, c.cost
	}

	var script []Edit[T]
	var total float64
	switch {
	case i == 0 && j == 0:
		// Both drained: nothing left to do.
	case i == 0:
		op := Edit[T]{Op: Insert, Val: ev.tgt[j-1], Index: j - 1}
		sub, subCost := ev.solve(0, j-1)
		script = prepend(op, sub)
		total = subCost + ev.cost(Insert, op.Val, op.Index)
	case j == 0:
		op := Edit[T]{Op: Delete, Val: ev.src[i-1], Index: i - 1}
		sub, subCost := ev.solve(i-1, 0)
		script = prepend(op, sub)
		total = subCost + ev.cost(Delete, op.Val, op.Index)
	case ev.src[i-1] == ev.tgt[j-1]:
		// Matched elements emit nothing and cost nothing.
		script, total = ev.solve(i-1, j-1)
	default:
		script, total = ev.cheapest(i, j)
	}

	c.script, c.cost, c.done = script, total, true

	return script, total
}

// cheapest evaluates the three candidate continuations for a mismatched
// head pair and keeps the first one achieving the minimal total cost.
// The candidate order (Delete, Insert, Substitute) is part of the
// contract: it decides every tie.
func (ev *evaluator[T]) cheapest(i, j int) ([]Edit[T], float64) {
	candidates := [3]Edit[T]{
		{Op: Delete, Val: ev.src[i-1], Index: i - 1},
		{Op: Insert, Val: ev.tgt[j-1], Index: j - 1},
		{Op: Substitute, Val: ev.tgt[j-1], Index: j - 1},
	}

	var best []Edit[T]
	var bestCost float64
	for k, op := range candidates {
		var sub []Edit[T]
		var subCost float64
		switch op.Op {
		case Delete:
			sub, subCost = ev.solve(i-1, j)
		case Insert:
			sub, subCost = ev.solve(i, j-1)
		default: // Substitute
			sub, subCost = ev.solve(i-1, j-1)
		}
		total := subCost + ev.cost(op.Op, op.Val, op.Index)
		if k == 0 || total < bestCost {
			best, bestCost = prepend(op, sub), total
		}
	}

	return best, bestCost
}

// prepend returns a fresh slice [op, rest...]; rest stays untouched so
// memoized scripts can be shared between states.
func prepend[T comparable](op Edit[T], rest []Edit[T]) []Edit[T] {
	out := make([]Edit[T], len(rest)+1)
	out[0] = op
	copy(out[1:], rest)

	return out
}
