package catalog

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/afero"
)

// SchemaRecord is the raw shape of one entry in the schema source
// collection.
type SchemaRecord struct {
	Schema            string   `json:"schema"`
	Labels            []string `json:"labels"`
	RelationshipTypes []string `json:"relationshipTypes"`
}

// TripletRecord is the raw shape of one entry in the triplet source
// collection. Each pattern string follows the `Source-REL->Target` grammar.
type TripletRecord struct {
	Schema  string   `json:"schema"`
	Triplet []string `json:"triplet"`
}

// Load merges the two source collections into a Catalog. It is
// all-or-nothing: the first bad record aborts the load.
//
// Referential integrity of the patterns against the label and relationship
// vocabularies is NOT checked here; that is Validate's job, so a catalog
// with latent inconsistencies can still be loaded and inspected.
func Load(schemaRecords []SchemaRecord, tripletRecords []TripletRecord) (*Catalog, error) {
	entries := make(map[string]Entry, len(schemaRecords))

	for i, rec := range schemaRecords {
		def, err := schemaDefinition(i, rec)
		if err != nil {
			return nil, err
		}

		if _, exists := entries[def.Name]; exists {
			return nil, fmt.Errorf(
				"%w: schema record %d: %q",
				ErrDuplicateSchemaName, i, def.Name,
			)
		}

		entries[def.Name] = Entry{
			Definition: def,
			Triplets:   TripletSet{SchemaName: def.Name},
		}
	}

	for i, rec := range tripletRecords {
		if rec.Schema == "" {
			return nil, malformedTripletRecord(i, "missing schema name")
		}

		entry, exists := entries[rec.Schema]
		if !exists {
			return nil, fmt.Errorf(
				"%w: triplet record %d references schema %q",
				ErrOrphanTripletSet, i, rec.Schema,
			)
		}

		if entry.Triplets.Patterns != nil {
			return nil, malformedTripletRecord(
				i, "second triplet set for schema %q", rec.Schema,
			)
		}

		patterns := make([]Triplet, 0, len(rec.Triplet))

		for _, raw := range rec.Triplet {
			t, err := ParseTriplet(raw)
			if err != nil {
				return nil, malformedTripletRecord(i, "%s", err)
			}

			patterns = append(patterns, t)
		}

		entry.Triplets.Patterns = patterns
		entries[rec.Schema] = entry
	}

	return newCatalog(entries), nil
}

// LoadJSON decodes the two raw JSON array documents and loads them.
// Decoding failures, including wrong-type values, surface as
// ErrMalformedInput with the index of the offending record.
func LoadJSON(schemaJSON, tripletJSON []byte) (*Catalog, error) {
	var rawSchemas []json.RawMessage
	if err := json.Unmarshal(schemaJSON, &rawSchemas); err != nil {
		return nil, fmt.Errorf("%w: schema source: %s", ErrMalformedInput, err)
	}

	schemaRecords := make([]SchemaRecord, len(rawSchemas))
	for i, raw := range rawSchemas {
		if err := json.Unmarshal(raw, &schemaRecords[i]); err != nil {
			return nil, malformedSchemaRecord(i, "%s", err)
		}
	}

	var rawTriplets []json.RawMessage
	if err := json.Unmarshal(tripletJSON, &rawTriplets); err != nil {
		return nil, fmt.Errorf("%w: triplet source: %s", ErrMalformedInput, err)
	}

	tripletRecords := make([]TripletRecord, len(rawTriplets))
	for i, raw := range rawTriplets {
		if err := json.Unmarshal(raw, &tripletRecords[i]); err != nil {
			return nil, malformedTripletRecord(i, "%s", err)
		}
	}

	return Load(schemaRecords, tripletRecords)
}

// LoadFS reads the two source files through fs and loads them.
func LoadFS(fs afero.Fs, schemaPath, tripletPath string) (*Catalog, error) {
	schemaJSON, err := afero.ReadFile(fs, schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema source file: %w", err)
	}

	tripletJSON, err := afero.ReadFile(fs, tripletPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read triplet source file: %w", err)
	}

	return LoadJSON(schemaJSON, tripletJSON)
}

func schemaDefinition(index int, rec SchemaRecord) (SchemaDefinition, error) {
	if rec.Schema == "" {
		return SchemaDefinition{}, malformedSchemaRecord(index, "missing schema name")
	}

	labels, err := vocabulary(rec.Labels)
	if err != nil {
		return SchemaDefinition{}, malformedSchemaRecord(
			index, "schema %q labels: %s", rec.Schema, err,
		)
	}

	relationshipTypes, err := vocabulary(rec.RelationshipTypes)
	if err != nil {
		return SchemaDefinition{}, malformedSchemaRecord(
			index, "schema %q relationship types: %s", rec.Schema, err,
		)
	}

	return SchemaDefinition{
		Name:              rec.Schema,
		Labels:            labels,
		RelationshipTypes: relationshipTypes,
	}, nil
}

// vocabulary checks a label or relationship-type list for empty entries and
// duplicates and returns it sorted.
func vocabulary(values []string) ([]string, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("empty vocabulary")
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))

	for _, v := range values {
		if v == "" {
			return nil, fmt.Errorf("empty entry")
		}

		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("duplicate entry %q", v)
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	sort.Strings(out)

	return out, nil
}
