// Package codec declares the JSON and Turtle wire-format interfaces
// spec.md §6 describes but explicitly leaves unimplemented (spec.md §1
// Non-goals: "JSON/Turtle codec bodies — interface contracts only").
//
// The contracts exist so [github.com/sssom/sssom-core/reader] has
// something concrete to dispatch to, and so a future implementation slots
// in by registering against [Registry] without changing the reader or
// model packages — mirroring the teacher's Annotator-registry shape
// (a name -> constructor table), here a format name -> [Codec] table.
package codec

import (
	"errors"
	"io"

	"github.com/sssom/sssom-core/model"
)

// ErrNotImplemented is returned by every stub [Codec] in this package.
var ErrNotImplemented = errors.New("codec: not implemented")

// Codec reads and writes one wire format's representation of a
// [model.MappingSet].
//
// For JSON: "a document with either long IRIs everywhere or short CURIEs
// plus a JSON-LD @context" (spec.md §6). For Turtle: "each mapping is an
// owl:Axiom-style reified node with owl:annotatedSource/Property/Target"
// (spec.md §6). Exact schemas are delegated to their format libraries;
// round-trip equivalence with TSV must be preserved for the subset of
// values representable.
type Codec interface {
	Decode(r io.Reader) (*model.MappingSet, error)
	Encode(w io.Writer, set *model.MappingSet) error
}

// Registry is a name -> [Codec] table, so hosts can register
// implementations without this module depending on their libraries.
type Registry struct {
	codecs map[string]Codec
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Codec)}
}

// Register binds name (e.g. "json", "turtle") to c.
func (r *Registry) Register(name string, c Codec) {
	r.codecs[name] = c
}

// Lookup returns the codec registered for name.
func (r *Registry) Lookup(name string) (Codec, bool) {
	c, ok := r.codecs[name]
	return c, ok
}

// stubCodec implements [Codec] by always failing with
// [ErrNotImplemented], establishing the contract's shape without a body.
type stubCodec struct{}

func (stubCodec) Decode(io.Reader) (*model.MappingSet, error)     { return nil, ErrNotImplemented }
func (stubCodec) Encode(io.Writer, *model.MappingSet) error { return ErrNotImplemented }

// JSON is the stub [Codec] for the JSON wire format.
var JSON Codec = stubCodec{}

// Turtle is the stub [Codec] for the Turtle wire format.
var Turtle Codec = stubCodec{}
