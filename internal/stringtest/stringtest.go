// Package stringtest provides helpers for building expected multi-line TSV
// and YAML fixture text without ambiguous raw-string tabs or newlines.
package stringtest

import "strings"

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected SSSOM/TSV output with explicit line
// endings, since the wire format is specified as LF-terminated (spec.md §6).
//
// Example:
//
//	want := stringtest.JoinLF(
//		"#subject_id\tpredicate_id\tobject_id",
//		"A:1\tskos:exactMatch\tB:1",
//	)
func JoinLF(ss ...string) string {
	var sb strings.Builder

	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}

// JoinTab joins fields with a literal tab, for building expected TSV rows.
func JoinTab(fields ...string) string {
	return strings.Join(fields, "\t")
}
