package compspec

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/scigolib/compspec/internal/grammar"
)

// FromMap joins a per-name mapping of policy strings into the single-line
// form accepted by ParseSpecification. Names are emitted in sorted order so
// equal maps produce equal strings.
func FromMap(policies map[string]string) string {
	names := make([]string, 0, len(policies))
	for name := range policies {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]string, len(names))
	for i, name := range names {
		entries[i] = grammar.JoinEntry(name, policies[name])
	}
	return grammar.JoinEntries(entries)
}

// LoadFile reads a YAML mapping of names to policy strings and joins it into
// a single specification string, ready for Resolve. A specification file
// looks like:
//
//	default: lossless
//	temperature: lossy,zfp,rate,4.0
//	coordinates: lossless,zstd,5
func LoadFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read specification file: %w", err)
	}

	var policies map[string]string
	if err := yaml.Unmarshal(raw, &policies); err != nil {
		return "", fmt.Errorf("parse specification file %s: %w", path, err)
	}
	return FromMap(policies), nil
}
