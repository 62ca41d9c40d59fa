package catalog

import "fmt"

// ViolationPart names which part of a pattern is undeclared.
type ViolationPart string

const (
	PartSourceLabel      ViolationPart = "source label"
	PartRelationshipType ViolationPart = "relationship type"
	PartTargetLabel      ViolationPart = "target label"
)

// Violation is one referential-integrity finding: a pattern part that is
// not declared in its schema's vocabulary.
type Violation struct {
	Schema  string        `json:"schema"`
	Pattern Triplet       `json:"pattern"`
	Part    ViolationPart `json:"part"`
	Name    string        `json:"name"`
}

func (v Violation) String() string {
	return fmt.Sprintf(
		"schema %q: pattern %s: undeclared %s %q",
		v.Schema, v.Pattern, v.Part, v.Name,
	)
}

// ValidationReport lists every violation found in one pass. An empty report
// means the catalog is fully consistent.
type ValidationReport []Violation

func (r ValidationReport) OK() bool {
	return len(r) == 0
}

// Validate walks every pattern of every schema and reports each part whose
// name is not declared in that schema's vocabulary. It never mutates the
// catalog and never aborts: all findings accumulate into the report.
//
// Schemas are visited in sorted name order, patterns in source order, so the
// report is deterministic.
func Validate(c *Catalog) ValidationReport {
	var report ValidationReport

	for _, name := range c.names {
		entry := c.entries[name]

		labels := toSet(entry.Definition.Labels)
		relationshipTypes := toSet(entry.Definition.RelationshipTypes)

		for _, pattern := range entry.Triplets.Patterns {
			if _, ok := labels[pattern.Source]; !ok {
				report = append(report, Violation{
					Schema:  name,
					Pattern: pattern,
					Part:    PartSourceLabel,
					Name:    pattern.Source,
				})
			}

			if _, ok := relationshipTypes[pattern.Relationship]; !ok {
				report = append(report, Violation{
					Schema:  name,
					Pattern: pattern,
					Part:    PartRelationshipType,
					Name:    pattern.Relationship,
				})
			}

			if _, ok := labels[pattern.Target]; !ok {
				report = append(report, Violation{
					Schema:  name,
					Pattern: pattern,
					Part:    PartTargetLabel,
					Name:    pattern.Target,
				})
			}
		}
	}

	return report
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	return set
}
