package delivery

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Blackdeer1524/SchemaCatalog/src"
	"github.com/Blackdeer1524/SchemaCatalog/src/catalog"
)

// Handler exposes a loaded catalog read-only. There is no write surface:
// the catalog is immutable reference data.
type Handler struct {
	Catalog *catalog.Catalog
	Log     src.Logger
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/schemas", h.ListSchemas).Methods("GET")
	router.HandleFunc("/schemas/{name}", h.GetSchema).Methods("GET")
	router.HandleFunc("/violations", h.GetViolations).Methods("GET")
}

type schemaSummary struct {
	Name                  string `json:"name"`
	LabelCount            int    `json:"labelCount"`
	RelationshipTypeCount int    `json:"relationshipTypeCount"`
	PatternCount          int    `json:"patternCount"`
}

func (h *Handler) ListSchemas(w http.ResponseWriter, r *http.Request) {
	names := h.Catalog.SchemaNames()

	summaries := make([]schemaSummary, 0, len(names))

	for _, name := range names {
		entry, err := h.Catalog.Lookup(name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)

			return
		}

		summaries = append(summaries, schemaSummary{
			Name:                  name,
			LabelCount:            len(entry.Definition.Labels),
			RelationshipTypeCount: len(entry.Definition.RelationshipTypes),
			PatternCount:          len(entry.Triplets.Patterns),
		})
	}

	h.writeJSON(w, map[string]any{
		"schemas": summaries,
	})
}

func (h *Handler) GetSchema(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	entry, err := h.Catalog.Lookup(name)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownSchema) {
			http.Error(w, err.Error(), http.StatusNotFound)

			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	h.writeJSON(w, entry)
}

func (h *Handler) GetViolations(w http.ResponseWriter, r *http.Request) {
	report := catalog.Validate(h.Catalog)

	// nil slice would marshal as null
	if report == nil {
		report = catalog.ValidationReport{}
	}

	h.writeJSON(w, map[string]any{
		"violations": report,
		"count":      len(report),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.Log.Errorf("failed to encode response: %v", err)
	}
}
