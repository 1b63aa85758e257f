// Package grammar implements the textual layer of the compression
// specification format: splitting a specification string into entries,
// separating entry names from policy text, and splitting a policy into
// its comma-separated fields. It performs no semantic validation.
package grammar

import "strings"

// Separators of the compression specification format.
const (
	EntrySeparator = " " // between entries (any whitespace is accepted on input)
	NameSeparator  = ":" // between an entry name and its policy
	FieldSeparator = "," // between policy fields
)

// Reserved entry names that address fallback slots rather than variables.
const (
	DefaultLabel     = "default"
	CoordinatesLabel = "coordinates"
)

// SplitEntries splits a specification string into its non-empty entries.
func SplitEntries(text string) []string {
	return strings.Fields(text)
}

// CutName separates the target name from the policy text of one entry.
// The name is everything before the first NameSeparator; named reports
// whether a separator was present at all.
func CutName(entry string) (name, policy string, named bool) {
	name, policy, named = strings.Cut(entry, NameSeparator)
	if !named {
		return "", entry, false
	}
	return name, policy, true
}

// SplitFields splits a policy text into its comma-separated fields.
func SplitFields(policy string) []string {
	return strings.Split(policy, FieldSeparator)
}

// JoinEntry assembles one named entry from a target name and policy text.
func JoinEntry(name, policy string) string {
	return name + NameSeparator + policy
}

// JoinEntries assembles entries back into a single specification string,
// preserving the order of the input slice.
func JoinEntries(entries []string) string {
	return strings.Join(entries, EntrySeparator)
}
