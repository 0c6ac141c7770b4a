package edist

import (
	"fmt"
	"strings"
)

// opGlyphs is the compact per-kind prefix used by Script.String.
var opGlyphs = [...]string{Insert: "+", Delete: "-", Substitute: "~", Move: ">"}

// String renders the script in a compact single-line form, one entry per
// operation, e.g.:
//
//	+ g@0, > r@[3→2]
//
// "+" inserts, "-" deletes, "~" substitutes and ">" moves (origin→destination).
func (s Script[T]) String() string {
	var out strings.Builder
	for k, e := range s {
		if k > 0 {
			out.WriteString(", ")
		}
		out.WriteString(opGlyphs[e.Op])
		if e.Op == Move {
			fmt.Fprintf(&out, " %s@[%d→%d]", formatVal(e.Val), e.Index, e.To)
		} else {
			fmt.Fprintf(&out, " %s@%d", formatVal(e.Val), e.Index)
		}
	}

	return out.String()
}

// formatVal renders a script value for display. Rune values print as the
// character itself rather than its codepoint number; everything else goes
// through %v.
func formatVal[T comparable](v T) string {
	if r, ok := any(v).(rune); ok {
		return string(r)
	}

	return fmt.Sprintf("%v", v)
}

// Apply replays the script against src and returns the resulting target
// sequence. It honors the script's index semantics: Deletes and Move
// origins name positions in src, Inserts, Substitutes and Move
// destinations name positions in the result.
//
// Apply assumes a well-formed script for src, such as one produced by
// Edits(src, tgt); feeding it a script computed for a different source is
// undefined. An empty script returns src unchanged.
//
// Complexity: O(len(src) + len(s)).
func (s Script[T]) Apply(src []T) []T {
	if len(s) == 0 {
		return src
	}

	removed := make(map[int]struct{})  // source positions consumed by Delete / Move origin
	produced := make(map[int]T)        // target positions filled by Insert / Move destination
	replaced := make(map[int]T)        // target positions rewritten by Substitute
	outLen := len(src)
	for _, e := range s {
		switch e.Op {
		case Insert:
			produced[e.Index] = e.Val
			outLen++
		case Delete:
			removed[e.Index] = struct{}{}
			outLen--
		case Substitute:
			replaced[e.Index] = e.Val
		case Move:
			removed[e.Index] = struct{}{}
			produced[e.To] = e.Val
		}
	}

	out := make([]T, 0, outLen)
	si := 0
	for ti := 0; ti < outLen; ti++ {
		if v, ok := produced[ti]; ok {
			out = append(out, v)
			continue
		}
		for {
			if _, gone := removed[si]; !gone {
				break
			}
			si++
		}
		if v, ok := replaced[ti]; ok {
			out = append(out, v)
		} else {
			out = append(out, src[si])
		}
		si++
	}

	return out
}
