package types

import (
	"strings"
)

// Ensure is the desired state of the edited text
type Ensure string

const (
	// EnsurePresent means the ensure-text must be in the file
	EnsurePresent Ensure = "present"

	// EnsureAbsent means every span matching the match pattern must be removed
	EnsureAbsent Ensure = "absent"
)

// UndefinedMatch is the sentinel hosts pass for an unset match value
const UndefinedMatch = "undef"

// EditSpec describes a single edit of a single file. It is built once per
// operation and never modified afterwards.
type EditSpec struct {
	// Name is the resource title, used only for reporting
	Name string

	// Path is the file to edit
	Path string

	// Match locates existing content. Empty or UndefinedMatch means
	// "match the ensure-text itself".
	Match string

	// MatchIsString forces Match to be treated as a literal string
	MatchIsString bool

	// Exact selects verbatim, possibly multi-line regex semantics instead of
	// the default single-line anchoring
	Exact bool

	// Ensure is the desired state
	Ensure Ensure

	// Line is the desired content. It may contain backreference tokens such
	// as \1 that are resolved against each match.
	Line string

	// Creates is an alternate pattern used only for existence checks
	Creates string

	AlwaysEnsureMatches bool
	NoAppend            bool
	NoFailWithoutParent bool
}

// HasMatch reports whether an explicit match value was given
func (s EditSpec) HasMatch() bool {
	return s.Match != "" && s.Match != UndefinedMatch
}

// IsAbsent reports whether the spec asks for removal
func (s EditSpec) IsAbsent() bool {
	return s.Ensure == EnsureAbsent
}

// DisplayName returns the resource name, falling back to the path
func (s EditSpec) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Path
}

// Chomp removes one trailing line terminator (\r\n, \n or \r) from s
func Chomp(s string) string {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2]
	case strings.HasSuffix(s, "\n"), strings.HasSuffix(s, "\r"):
		return s[:len(s)-1]
	}
	return s
}
