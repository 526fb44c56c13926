package model

import "errors"

// Sentinel errors returned by package model, wrapped with context via
// fmt.Errorf("%w: ...", ...) at the call site, following the teacher
// module's error convention (see log.ErrUnknownLogLevel and friends).
var (
	// ErrRequiredSlotEmpty indicates an attempt to clear one of the three
	// mandatory ID slots (spec.md §4.J "empty or null deletes the slot
	// except for the three mandatory ID slots where it is an error").
	ErrRequiredSlotEmpty = errors.New("required slot cannot be empty")
	// ErrOutOfRange indicates a confidence/similarity/registry-confidence
	// value outside [0, 1] (spec.md §3 invariants).
	ErrOutOfRange = errors.New("value out of range [0,1]")
	// ErrUnknownSlot indicates a slot name not present in the registry.
	ErrUnknownSlot = errors.New("unknown slot")
	// ErrTypeMismatch indicates a [slot.Value] of the wrong Kind was
	// passed to a slot's setter.
	ErrTypeMismatch = errors.New("slot value type mismatch")
	// ErrNotInvertible indicates no inverse is known for a mapping's
	// predicate (spec.md §4.G).
	ErrNotInvertible = errors.New("predicate has no known inverse")
	// ErrInvalidExtensionName indicates an extension slot name that either
	// fails the `[A-Za-z_][A-Za-z0-9_]*` pattern or collides with a
	// standard slot name (spec.md §3 invariants).
	ErrInvalidExtensionName = errors.New("invalid extension slot name")
)
