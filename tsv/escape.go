package tsv

import "strings"

// listSeparator joins a list-valued slot's elements inside one TSV cell
// (spec.md §4.F: "multi-valued slots are pipe-joined within one cell").
const listSeparator = "|"

// EscapeListElement percent-encodes a literal '|' in a single list element
// as %7C before it is joined with [listSeparator], resolving spec.md §9
// Open Question #1 ("how should a literal '|' inside a list-slot value be
// distinguished from the separator?"). Tabs and newlines are also encoded,
// since they would otherwise corrupt the TSV grid.
func EscapeListElement(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "|", "%7C")
	s = strings.ReplaceAll(s, "\t", "%09")
	s = strings.ReplaceAll(s, "\n", "%0A")

	return s
}

// UnescapeListElement reverses [EscapeListElement].
func UnescapeListElement(s string) string {
	s = strings.ReplaceAll(s, "%0A", "\n")
	s = strings.ReplaceAll(s, "%09", "\t")
	s = strings.ReplaceAll(s, "%7C", "|")
	s = strings.ReplaceAll(s, "%25", "%")

	return s
}

// JoinList renders a list-valued slot's elements as one TSV cell.
func JoinList(elems []string) string {
	escaped := make([]string, len(elems))
	for i, e := range elems {
		escaped[i] = EscapeListElement(e)
	}

	return strings.Join(escaped, listSeparator)
}

// SplitList parses a TSV cell back into a list-valued slot's elements. An
// empty cell yields a nil slice, not a one-element slice containing "".
func SplitList(cell string) []string {
	if cell == "" {
		return nil
	}

	parts := strings.Split(cell, listSeparator)
	out := make([]string, len(parts))

	for i, p := range parts {
		out[i] = UnescapeListElement(p)
	}

	return out
}
