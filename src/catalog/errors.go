package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedInput      = errors.New("malformed input")
	ErrDuplicateSchemaName = errors.New("duplicate schema name")
	ErrOrphanTripletSet    = errors.New("orphan triplet set")
	ErrUnknownSchema       = errors.New("unknown schema")
)

func malformedSchemaRecord(index int, format string, args ...any) error {
	return fmt.Errorf(
		"%w: schema record %d: %s",
		ErrMalformedInput, index, fmt.Sprintf(format, args...),
	)
}

func malformedTripletRecord(index int, format string, args ...any) error {
	return fmt.Errorf(
		"%w: triplet record %d: %s",
		ErrMalformedInput, index, fmt.Sprintf(format, args...),
	)
}

func unknownSchema(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownSchema, name)
}
