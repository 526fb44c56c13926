// Package reader implements the Reader Factory described in spec.md
// §4.M: it classifies an input stream by its first non-whitespace byte
// (optionally overridden by filename extension) and dispatches to the
// matching format reader.
package reader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sssom/sssom-core/codec"
	"github.com/sssom/sssom-core/model"
	"github.com/sssom/sssom-core/tsv"
)

// Format identifies a wire format recognised by the factory.
type Format int

const (
	// FormatTSV is SSSOM/TSV with embedded YAML front-matter.
	FormatTSV Format = iota
	// FormatTSVBare is SSSOM/TSV with no front matter; external metadata
	// must be supplied.
	FormatTSVBare
	// FormatJSON is the JSON codec (spec.md §6, interface contract only).
	FormatJSON
	// FormatTurtle is the Turtle codec (spec.md §6, interface contract only).
	FormatTurtle
)

// Sniff classifies r's content by peeking at its first non-whitespace
// byte, per spec.md §4.M:
//
//	'#'              -> TSV with embedded metadata
//	'{'               -> JSON
//	'@' or '['        -> Turtle
//	letter or digit   -> TSV without metadata
//
// It returns a reader that still sees every byte of the original stream
// (the peek is non-destructive).
func Sniff(r io.Reader) (Format, *bufio.Reader, error) {
	br := bufio.NewReaderSize(r, 64*1024)

	for {
		b, err := br.Peek(1)
		if err != nil {
			return FormatTSV, br, fmt.Errorf("reader: empty input: %w", err)
		}

		switch b[0] {
		case ' ', '\t', '\r', '\n':
			if _, err := br.ReadByte(); err != nil {
				return FormatTSV, br, err
			}

			continue
		case '#':
			return FormatTSV, br, nil
		case '{':
			return FormatJSON, br, nil
		case '@', '[':
			return FormatTurtle, br, nil
		default:
			return FormatTSVBare, br, nil
		}
	}
}

// FromExtension maps a filename extension to a [Format], for callers that
// want to override sniffing (spec.md §4.M: "optionally, a filename
// extension overrides peeking").
func FromExtension(filename string) (Format, bool) {
	lower := strings.ToLower(filename)

	switch {
	case strings.HasSuffix(lower, ".sssom.tsv"), strings.HasSuffix(lower, ".tsv"):
		return FormatTSV, true
	case strings.HasSuffix(lower, ".sssom.json"), strings.HasSuffix(lower, ".json"):
		return FormatJSON, true
	case strings.HasSuffix(lower, ".ttl"):
		return FormatTurtle, true
	default:
		return FormatTSV, false
	}
}

// Open reads r as format, dispatching to the matching reader. For
// FormatTSV/FormatTSVBare this is [tsv.Read]; externalMetadata is passed
// through for either (unused for embedded-metadata TSV unless a sidecar
// key is missing from the front matter). FormatJSON/FormatTurtle are out
// of scope for this module (spec.md §1 Non-goals): they return
// [codec.ErrNotImplemented] without consulting any codec.Registry.
func Open(r io.Reader, format Format, externalMetadata map[string]any) (*model.MappingSet, error) {
	switch format {
	case FormatTSV, FormatTSVBare:
		return tsv.Read(r, externalMetadata)
	case FormatJSON:
		return nil, fmt.Errorf("reader: JSON: %w", codec.ErrNotImplemented)
	case FormatTurtle:
		return nil, fmt.Errorf("reader: Turtle: %w", codec.ErrNotImplemented)
	default:
		return nil, fmt.Errorf("reader: unknown format %d", format)
	}
}

// OpenAuto sniffs r's format and opens it, letting filenameHint (if
// non-empty) override the sniffed format per [FromExtension].
func OpenAuto(r io.Reader, filenameHint string, externalMetadata map[string]any) (*model.MappingSet, error) {
	format, br, err := Sniff(r)
	if err != nil {
		return nil, err
	}

	if filenameHint != "" {
		if f, ok := FromExtension(filenameHint); ok {
			format = f
		}
	}

	return Open(br, format, externalMetadata)
}
