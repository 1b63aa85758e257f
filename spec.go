package compspec

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/scigolib/compspec/internal/grammar"
)

// Entry is one "[name:]policy" unit of a specification string. Bare entries
// are normalized to the "default" target during parsing, since both forms
// address the same slot.
type Entry struct {
	Target   string
	Encoding VariableEncoding
}

// String returns the entry in specification syntax.
func (e Entry) String() string {
	return grammar.JoinEntry(e.Target, e.Encoding.String())
}

// Specification is the parsed, unresolved form of a specification string:
// the ordered entries exactly as written. It is immutable after parsing.
type Specification struct {
	Entries []Entry
}

// String returns the specification as a single-line specification string.
func (s Specification) String() string {
	entries := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		entries[i] = e.String()
	}
	return grammar.JoinEntries(entries)
}

// ParseSpecification splits a specification string into entries and parses
// each entry into a typed policy. Entries are whitespace-separated; within
// an entry, everything before the first ':' is the target name and the rest
// is a comma-separated policy. The entries are returned in input order with
// no fallback resolution applied.
func ParseSpecification(text string) (Specification, error) {
	raw := grammar.SplitEntries(text)
	entries := make([]Entry, 0, len(raw))
	for _, token := range raw {
		name, policy, named := grammar.CutName(token)
		if !named {
			name = grammar.DefaultLabel
		}
		enc, err := parsePolicy(policy)
		if err != nil {
			return Specification{}, fmt.Errorf("entry %q: %w", token, err)
		}
		entries = append(entries, Entry{Target: name, Encoding: enc})
	}
	return Specification{Entries: entries}, nil
}

// IsValidSpecification reports whether text parses as a specification with
// no entry targeting the same slot twice. It never returns an error; use
// ParseSpecification to learn why a specification is invalid.
func IsValidSpecification(text string) bool {
	spec, err := ParseSpecification(text)
	if err != nil {
		return false
	}
	seen := make(map[string]struct{}, len(spec.Entries))
	for _, e := range spec.Entries {
		if _, dup := seen[e.Target]; dup {
			return false
		}
		seen[e.Target] = struct{}{}
	}
	return true
}

func parsePolicy(policy string) (VariableEncoding, error) {
	fields := grammar.SplitFields(policy)
	switch strings.ToLower(fields[0]) {
	case "lossless":
		return parseLossless(fields)
	case "lossy":
		return parseLossy(fields)
	default:
		return VariableEncoding{}, fmt.Errorf("%w: unrecognized mode %q", ErrSyntax, fields[0])
	}
}

// parseLossless handles "lossless[,backend[,level]]". The backend and level
// are positional: a level is only accepted after an explicit backend.
func parseLossless(fields []string) (VariableEncoding, error) {
	if len(fields) > 3 {
		return VariableEncoding{}, fmt.Errorf("%w: lossless takes at most a backend and a level, got %d fields",
			ErrSyntax, len(fields))
	}

	enc := VariableEncoding{Mode: Lossless, Backend: DefaultBackend, Level: DefaultLevel}
	if len(fields) > 1 {
		backend, ok := backendsByName[fields[1]]
		if !ok {
			return VariableEncoding{}, fmt.Errorf("%w: %q", ErrBackendName, fields[1])
		}
		enc.Backend = backend
	}
	if len(fields) > 2 {
		level, err := strconv.Atoi(fields[2])
		if err != nil {
			return VariableEncoding{}, fmt.Errorf("%w: level %q is not an integer", ErrParameterType, fields[2])
		}
		if level < 1 || level > 9 {
			return VariableEncoding{}, fmt.Errorf("%w: level %d not in [1,9]", ErrLevelRange, level)
		}
		enc.Level = level
	}
	return enc, nil
}

// parseLossy handles "lossy,compressor,method,parameter". All three fields
// after the mode keyword are mandatory.
func parseLossy(fields []string) (VariableEncoding, error) {
	if len(fields) != 4 {
		return VariableEncoding{}, fmt.Errorf("%w: lossy needs compressor, method and parameter, got %d fields",
			ErrParameterCount, len(fields)-1)
	}

	compressor, ok := compressorsByName[strings.ToLower(fields[1])]
	if !ok {
		return VariableEncoding{}, fmt.Errorf("%w: %q", ErrUnsupportedCompressor, fields[1])
	}

	method, ok := methodsByName[compressor][fields[2]]
	if !ok {
		return VariableEncoding{}, fmt.Errorf("%w: %q is not a %s method", ErrUnsupportedMode, fields[2], compressor)
	}

	parameter, err := strconv.ParseFloat(fields[3], 64)
	if err != nil || math.IsNaN(parameter) || math.IsInf(parameter, 0) {
		return VariableEncoding{}, fmt.Errorf("%w: %q is not a numeric literal", ErrParameterType, fields[3])
	}

	return VariableEncoding{Mode: Lossy, Compressor: compressor, Method: method, Parameter: parameter}, nil
}

var backendsByName = map[string]Backend{
	"blosclz": BloscLZ,
	"lz4":     LZ4,
	"lz4hc":   LZ4HC,
	"snappy":  Snappy,
	"zlib":    Zlib,
	"zstd":    Zstd,
}

var compressorsByName = map[string]Compressor{
	"zfp": ZFP,
	"sz":  SZ,
	"sz3": SZ3,
}

// methodsByName indexes each compressor's method set by specification token.
var methodsByName = func() map[Compressor]map[string]Method {
	byName := make(map[Compressor]map[string]Method, len(lossyMethods))
	for compressor, methods := range lossyMethods {
		byName[compressor] = make(map[string]Method, len(methods))
		for method := range methods {
			byName[compressor][method.String()] = method
		}
	}
	return byName
}()
