package catalog

import "sort"

// SchemaDefinition is the vocabulary of one example dataset: the node
// labels and relationship types it may use. Labels and relationship types
// are kept sorted for stable output.
type SchemaDefinition struct {
	Name              string   `json:"name"`
	Labels            []string `json:"labels"`
	RelationshipTypes []string `json:"relationshipTypes"`
}

// Triplet is one permitted edge shape within a schema, already parsed out
// of its `Source-REL->Target` textual form.
type Triplet struct {
	Source       string `json:"source"`
	Relationship string `json:"relationshipType"`
	Target       string `json:"target"`
}

func (t Triplet) String() string {
	return t.Source + "-" + t.Relationship + "->" + t.Target
}

// TripletSet holds the permitted patterns of one schema. Pattern order
// follows the source records; it matters for display only.
type TripletSet struct {
	SchemaName string    `json:"schema"`
	Patterns   []Triplet `json:"patterns"`
}

// Entry pairs a schema definition with its triplet set.
type Entry struct {
	Definition SchemaDefinition `json:"definition"`
	Triplets   TripletSet       `json:"triplets"`
}

// Catalog maps schema names to their entries. It is built once by Load and
// never mutated afterwards, so it is safe for concurrent readers.
type Catalog struct {
	entries map[string]Entry
	names   []string
}

func newCatalog(entries map[string]Entry) *Catalog {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}

	sort.Strings(names)

	return &Catalog{
		entries: entries,
		names:   names,
	}
}

func (c *Catalog) Len() int {
	return len(c.names)
}

// SchemaNames returns all schema names in sorted order.
func (c *Catalog) SchemaNames() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)

	return names
}

// Lookup returns the entry for the named schema.
func (c *Catalog) Lookup(name string) (Entry, error) {
	entry, exists := c.entries[name]
	if !exists {
		return Entry{}, unknownSchema(name)
	}

	return entry, nil
}
