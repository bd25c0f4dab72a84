// Package flowio reads flow networks from the whitespace text format
//
//	<u_label> <v_label> <capacity>
//
// one edge per line. Blank lines and lines starting with '#' are ignored.
// Node labels are arbitrary tokens ("s", "t", "v7", "(2,5)", ...); they are
// resolved to dense integer ids in order of first appearance. The source and
// sink are located by label, "s" and "t" by default.
//
// What this package offers:
//
//   - ReadGraph: parse a stream into a *core.Graph.
//   - ReadGraphFile: convenience wrapper over a file path.
//   - Strict parsing by default; WithTolerant downgrades malformed lines to
//     skips (observable via WithOnSkip) for hand-edited experiment inputs.
//
// Errors: ErrBadLine (wrong arity), ErrBadCapacity (non-integer or negative),
// ErrSourceNotFound, ErrSinkNotFound. Wrap-and-inspect with errors.Is.
package flowio
