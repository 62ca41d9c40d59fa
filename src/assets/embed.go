// Package assets ships the example-schema source data embedded at compile
// time, so the CLI and library consumers work without the JSON files being
// present on disk.
package assets

import (
	_ "embed"

	"github.com/Blackdeer1524/SchemaCatalog/src/catalog"
)

// SchemasJSON is the embedded schema source collection.
//
//go:embed schemas.json
var SchemasJSON []byte

// TripletsJSON is the embedded triplet source collection.
//
//go:embed triplets.json
var TripletsJSON []byte

// DefaultCatalog loads the embedded dataset. The data is embedded at
// compile time, so a load failure means the binary is misconfigured and we
// fail fast.
func DefaultCatalog() *catalog.Catalog {
	c, err := catalog.LoadJSON(SchemasJSON, TripletsJSON)
	if err != nil {
		panic("failed to load embedded schema catalog: " + err.Error())
	}

	return c
}
