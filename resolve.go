// Package compspec compiles compact textual compression specifications into
// per-variable filter policies. A specification string such as
//
//	"temperature:lossy,zfp,rate,4.0 lossless,zstd,5"
//
// assigns a policy to each named variable, an optional fallback policy for
// all remaining variables (the "default" slot) and an optional fallback for
// coordinate variables (the "coordinates" slot). Resolve turns such a string
// and the caller's variable and coordinate names into the concrete HDF5
// filter ids and parameter tuples a storage adapter needs. Resolution is a
// pure function of its inputs: no state is kept between calls and identical
// inputs yield structurally equal tables.
package compspec

import (
	"fmt"

	"github.com/scigolib/compspec/internal/grammar"
)

// EncodingTable maps variable names, plus the "default" and "coordinates"
// slots, to their resolved encodings.
type EncodingTable map[string]VariableEncoding

// PolicyTable maps variable names, plus the "default" and "coordinates"
// slots, to their resolved filter descriptors.
type PolicyTable map[string]FilterDescriptor

// Resolve parses a specification string and resolves it against the caller's
// variable and coordinate names, returning the filter descriptor chosen for
// every name. This facade composes ParseSpecification, ResolveEncodings and
// VariableEncoding.Filter; any error aborts the whole call.
func Resolve(text string, variables, coordinates []string) (PolicyTable, error) {
	encodings, err := ResolveEncodings(text, variables, coordinates)
	if err != nil {
		return nil, err
	}

	policies := make(PolicyTable, len(encodings))
	for name, enc := range encodings {
		descriptor, err := enc.Filter()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		policies[name] = descriptor
	}
	return policies, nil
}

// ResolveEncodings parses a specification string and resolves it into a
// complete encoding table covering every supplied name. Adapters that want
// the semantic policies rather than filter descriptors use this entry point.
func ResolveEncodings(text string, variables, coordinates []string) (EncodingTable, error) {
	spec, err := ParseSpecification(text)
	if err != nil {
		return nil, err
	}
	return spec.Resolve(variables, coordinates)
}

// Resolve merges the parsed entries into a complete encoding table.
//
// Entries are classified in order; two entries for the same slot are
// rejected (a bare entry and an explicit "default:" entry count as the same
// slot). A named entry must match one of the supplied names. Missing slots
// are then synthesized: the default slot falls back to lossless lz4 level 9,
// and so does the coordinates slot, independently of any default override.
// Finally every supplied variable resolves to its own entry or the default
// slot, and every supplied coordinate to its own entry or the coordinates
// slot.
func (s Specification) Resolve(variables, coordinates []string) (EncodingTable, error) {
	known := make(map[string]struct{}, len(variables)+len(coordinates))
	for _, name := range variables {
		known[name] = struct{}{}
	}
	for _, name := range coordinates {
		known[name] = struct{}{}
	}

	slots := make(EncodingTable, len(s.Entries)+2)
	for _, e := range s.Entries {
		if _, dup := slots[e.Target]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlot, e.Target)
		}
		if e.Target != grammar.DefaultLabel && e.Target != grammar.CoordinatesLabel {
			if _, ok := known[e.Target]; !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownTargetName, e.Target)
			}
		}
		slots[e.Target] = e.Encoding
	}

	fallback := VariableEncoding{Mode: Lossless, Backend: DefaultBackend, Level: DefaultLevel}
	if _, ok := slots[grammar.DefaultLabel]; !ok {
		slots[grammar.DefaultLabel] = fallback
	}
	if _, ok := slots[grammar.CoordinatesLabel]; !ok {
		slots[grammar.CoordinatesLabel] = fallback
	}

	table := make(EncodingTable, len(slots)+len(variables)+len(coordinates))
	for name, enc := range slots {
		table[name] = enc
	}
	for _, name := range variables {
		if _, ok := table[name]; !ok {
			table[name] = slots[grammar.DefaultLabel]
		}
	}
	for _, name := range coordinates {
		if _, ok := table[name]; !ok {
			table[name] = slots[grammar.CoordinatesLabel]
		}
	}
	return table, nil
}
