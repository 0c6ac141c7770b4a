package edist

import "fmt"

// Op identifies the kind of a single edit operation.
//
//   - Insert     — a value added to the sequence.
//   - Delete     — a value removed from the sequence.
//   - Substitute — a value replaced in place.
//   - Move       — a Delete/Insert pair of equal value, collapsed by the
//     post-processing pass (see ReduceMoves). Never produced by the DP
//     evaluator itself and never priced by a CostFunc.
type Op uint8

const (
	// Insert adds Val at target position Index.
	Insert Op = iota

	// Delete removes Val from source position Index.
	Delete

	// Substitute replaces the element aligned with target position Index by Val.
	Substitute

	// Move relocates Val from source position Index to target position To.
	Move
)

// opNames is indexed by Op; keep in sync with the constants above.
var opNames = [...]string{"Insert", "Delete", "Substitute", "Move"}

// String returns the operation kind name, or "Op(n)" for unknown values.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}

	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Edit is one step of an edit script.
//
// Index semantics are asymmetric and deliberate — they are what a CostFunc
// and any script consumer observe:
//
//   - Delete:     Index is the position in the ORIGINAL (pre-edit) source.
//   - Insert:     Index is the position in the FINAL target.
//   - Substitute: Index is the position in the FINAL target (the replaced
//     source element is the one aligned with that target position).
//   - Move:       Index is the origin (source position of the paired
//     Delete), To is the destination (target position of the paired Insert).
//
// To is meaningful only when Op == Move and is zero otherwise.
type Edit[T comparable] struct {
	Op    Op
	Val   T
	Index int
	To    int
}

// Script is an ordered edit script: applied to the source sequence it
// produces the target sequence. Operations appear in forward scan order
// (ascending positions as resolved by the evaluator), never re-sorted.
type Script[T comparable] []Edit[T]

// CostFunc prices a single primitive operation (Insert, Delete or
// Substitute; never Move). It must be pure: the evaluator may invoke it
// several times for the same candidate operation while exploring
// alternatives, and the relative order of invocations is unspecified.
//
// A CostFunc that panics aborts the whole computation; the panic propagates
// to the caller and no partial script is returned.
type CostFunc[T comparable] func(op Op, val T, index int) float64

// UnitCost is the default cost function: every primitive operation costs 1,
// regardless of kind, value or position. Under UnitCost the total script
// cost equals the classic Levenshtein distance.
func UnitCost[T comparable](_ Op, _ T, _ int) float64 { return 1 }
