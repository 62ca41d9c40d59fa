package catalog

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func fixtureSchemaRecords() []SchemaRecord {
	return []SchemaRecord{
		{
			Schema: "movies",
			Labels: []string{"Movie", "Actor", "Director", "Genre", "Person", "User"},
			RelationshipTypes: []string{
				"ACTED_IN", "DIRECTED", "IN_GENRE", "RATED",
			},
		},
		{
			Schema: "flights",
			Labels: []string{"Airport", "City", "Continent", "Country", "Region"},
			RelationshipTypes: []string{
				"HAS_ROUTE", "IN_CITY", "IN_COUNTRY", "IN_REGION", "ON_CONTINENT",
			},
		},
	}
}

func fixtureTripletRecords() []TripletRecord {
	return []TripletRecord{
		{
			Schema: "movies",
			Triplet: []string{
				"Actor-ACTED_IN->\nMovie",
				"Director-DIRECTED->\nMovie",
				"Movie-IN_GENRE->\nGenre",
				"User-RATED->\nMovie",
			},
		},
		{
			Schema: "flights",
			Triplet: []string{
				"Airport-HAS_ROUTE->\nAirport",
				"Airport-IN_CITY->\nCity",
				"City-IN_COUNTRY->\nCountry",
				"Country-ON_CONTINENT->\nContinent",
			},
		},
	}
}

func TestLoad(t *testing.T) {
	c, err := Load(fixtureSchemaRecords(), fixtureTripletRecords())
	require.NoError(t, err)

	require.Equal(t, 2, c.Len())
	require.Equal(t, []string{"flights", "movies"}, c.SchemaNames())

	movies, err := c.Lookup("movies")
	require.NoError(t, err)

	// vocabularies come back sorted
	require.Equal(
		t,
		[]string{"Actor", "Director", "Genre", "Movie", "Person", "User"},
		movies.Definition.Labels,
	)

	// pattern order follows the source records
	require.Equal(t, Triplet{
		Source:       "Actor",
		Relationship: "ACTED_IN",
		Target:       "Movie",
	}, movies.Triplets.Patterns[0])
}

func TestLoad_DuplicateSchemaName(t *testing.T) {
	records := fixtureSchemaRecords()
	records = append(records, records[0])

	_, err := Load(records, nil)
	require.ErrorIs(t, err, ErrDuplicateSchemaName)
	require.ErrorContains(t, err, "movies")
}

func TestLoad_OrphanTripletSet(t *testing.T) {
	triplets := []TripletRecord{
		{Schema: "nonexistent", Triplet: []string{"A-R->B"}},
	}

	_, err := Load(fixtureSchemaRecords(), triplets)
	require.ErrorIs(t, err, ErrOrphanTripletSet)
	require.ErrorContains(t, err, "nonexistent")
}

func TestLoad_SecondTripletSetForSchema(t *testing.T) {
	triplets := fixtureTripletRecords()
	triplets = append(triplets, TripletRecord{
		Schema:  "movies",
		Triplet: []string{"Person-ACTED_IN->Movie"},
	})

	_, err := Load(fixtureSchemaRecords(), triplets)
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestLoad_MalformedRecords(t *testing.T) {
	t.Run("missing schema name", func(t *testing.T) {
		_, err := Load([]SchemaRecord{{Labels: []string{"A"}}}, nil)
		require.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("duplicate label", func(t *testing.T) {
		_, err := Load([]SchemaRecord{{
			Schema:            "dup",
			Labels:            []string{"A", "A"},
			RelationshipTypes: []string{"R"},
		}}, nil)
		require.ErrorIs(t, err, ErrMalformedInput)
		require.ErrorContains(t, err, `"A"`)
	})

	t.Run("empty relationship type", func(t *testing.T) {
		_, err := Load([]SchemaRecord{{
			Schema:            "empty",
			Labels:            []string{"A"},
			RelationshipTypes: []string{""},
		}}, nil)
		require.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("bad pattern grammar", func(t *testing.T) {
		triplets := []TripletRecord{
			{Schema: "movies", Triplet: []string{"Actor ACTED_IN Movie"}},
		}

		_, err := Load(fixtureSchemaRecords(), triplets)
		require.ErrorIs(t, err, ErrMalformedInput)
	})
}

func TestLoad_SchemaWithoutTripletSet(t *testing.T) {
	c, err := Load(fixtureSchemaRecords(), fixtureTripletRecords()[:1])
	require.NoError(t, err)

	flights, err := c.Lookup("flights")
	require.NoError(t, err)
	require.Empty(t, flights.Triplets.Patterns)
}

func TestLoad_Deterministic(t *testing.T) {
	first, err := Load(fixtureSchemaRecords(), fixtureTripletRecords())
	require.NoError(t, err)

	second, err := Load(fixtureSchemaRecords(), fixtureTripletRecords())
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestLoadJSON(t *testing.T) {
	schemaJSON := []byte(`[
		{
			"schema": "movies",
			"labels": ["Actor", "Movie"],
			"relationshipTypes": ["ACTED_IN"]
		}
	]`)
	tripletJSON := []byte(`[
		{"schema": "movies", "triplet": ["Actor-ACTED_IN->\nMovie"]}
	]`)

	c, err := LoadJSON(schemaJSON, tripletJSON)
	require.NoError(t, err)
	require.Equal(t, []string{"movies"}, c.SchemaNames())
	require.True(t, Validate(c).OK())
}

func TestLoadJSON_WrongTypes(t *testing.T) {
	t.Run("labels not an array", func(t *testing.T) {
		_, err := LoadJSON(
			[]byte(`[{"schema": "movies", "labels": "Actor", "relationshipTypes": []}]`),
			[]byte(`[]`),
		)
		require.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("schema not a string", func(t *testing.T) {
		_, err := LoadJSON(
			[]byte(`[{"schema": 42, "labels": ["A"], "relationshipTypes": ["R"]}]`),
			[]byte(`[]`),
		)
		require.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("not an array", func(t *testing.T) {
		_, err := LoadJSON([]byte(`{}`), []byte(`[]`))
		require.ErrorIs(t, err, ErrMalformedInput)
	})
}

func TestLoadFS(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, afero.WriteFile(
		fs,
		"data/schemas.json",
		[]byte(`[{"schema": "movies", "labels": ["Actor", "Movie"], "relationshipTypes": ["ACTED_IN"]}]`),
		0600,
	))
	require.NoError(t, afero.WriteFile(
		fs,
		"data/triplets.json",
		[]byte(`[{"schema": "movies", "triplet": ["Actor-ACTED_IN->\nMovie"]}]`),
		0600,
	))

	c, err := LoadFS(fs, "data/schemas.json", "data/triplets.json")
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
}

func TestLoadFS_MissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := LoadFS(fs, "data/schemas.json", "data/triplets.json")
	require.Error(t, err)
}

func TestLookup_UnknownSchema(t *testing.T) {
	c, err := Load(fixtureSchemaRecords(), fixtureTripletRecords())
	require.NoError(t, err)

	_, err = c.Lookup("nonexistent")
	require.ErrorIs(t, err, ErrUnknownSchema)
}

func TestLookup_Flights(t *testing.T) {
	c, err := Load(fixtureSchemaRecords(), fixtureTripletRecords())
	require.NoError(t, err)

	flights, err := c.Lookup("flights")
	require.NoError(t, err)

	require.Equal(
		t,
		[]string{"Airport", "City", "Continent", "Country", "Region"},
		flights.Definition.Labels,
	)
	require.Len(t, flights.Definition.RelationshipTypes, 5)
	require.Equal(t, "flights", flights.Triplets.SchemaName)
}
