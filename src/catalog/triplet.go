package catalog

import (
	"fmt"
	"strings"
)

// ParseTriplet parses the `Source-REL->Target` pattern grammar: a label,
// a literal `-`, a relationship type, a literal `->`, then a label. The
// source data puts the target label on its own line, so whitespace right
// after the arrow is tolerated. Labels and relationship types are non-empty
// and contain neither `-` nor `>`.
func ParseTriplet(pattern string) (Triplet, error) {
	dash := strings.Index(pattern, "-")
	if dash < 0 {
		return Triplet{}, fmt.Errorf("pattern %q: missing separator", pattern)
	}

	source := pattern[:dash]
	rest := pattern[dash+1:]

	arrow := strings.Index(rest, "->")
	if arrow < 0 {
		return Triplet{}, fmt.Errorf("pattern %q: missing arrow", pattern)
	}

	relationship := rest[:arrow]
	target := strings.TrimLeft(rest[arrow+2:], " \t\r\n")

	t := Triplet{
		Source:       source,
		Relationship: relationship,
		Target:       target,
	}

	for _, part := range [...]struct {
		kind  string
		value string
	}{
		{"source label", t.Source},
		{"relationship type", t.Relationship},
		{"target label", t.Target},
	} {
		if part.value == "" {
			return Triplet{}, fmt.Errorf("pattern %q: empty %s", pattern, part.kind)
		}

		if strings.ContainsAny(part.value, "->\n\t ") {
			return Triplet{}, fmt.Errorf(
				"pattern %q: %s %q contains forbidden characters",
				pattern, part.kind, part.value,
			)
		}
	}

	return t, nil
}
