package entityid

import (
	"encoding"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrMalformedID reports textual input that does not parse as a UUID.
var ErrMalformedID = errors.New("malformed entity id")

// ID uniquely identifies an entity of type Kind.
//
// Kind is a compile-time marker only. It contributes no fields, so two IDs
// of the same kind compare equal exactly when their underlying UUIDs are
// bitwise equal, and an ID is usable directly as a map key.
type ID[Kind any] struct {
	value uuid.UUID
}

var (
	_ fmt.Stringer             = ID[struct{}]{}
	_ encoding.TextMarshaler   = ID[struct{}]{}
	_ encoding.TextUnmarshaler = (*ID[struct{}])(nil)
)

// New returns a fresh identifier backed by a random version 4 UUID.
func New[Kind any]() ID[Kind] {
	return ID[Kind]{value: uuid.New()}
}

// FromUUID wraps an existing UUID as an identifier of the given kind. Any
// value is accepted unchanged, including ones whose version or variant bits
// do not match a randomly generated UUID.
func FromUUID[Kind any](u uuid.UUID) ID[Kind] {
	return ID[Kind]{value: u}
}

// Parse converts UUID text into an identifier of the given kind. Malformed
// input yields an error wrapping ErrMalformedID together with the offending
// text.
func Parse[Kind any](s string) (ID[Kind], error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID[Kind]{}, fmt.Errorf("%w %q: %v", ErrMalformedID, s, err)
	}
	return ID[Kind]{value: u}, nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// literals in tests and fixtures.
func MustParse[Kind any](s string) ID[Kind] {
	id, err := Parse[Kind](s)
	if err != nil {
		panic(err)
	}
	return id
}

// UUID returns the underlying value unchanged.
func (i ID[Kind]) UUID() uuid.UUID {
	return i.value
}

// IsZero reports whether the identifier holds the nil UUID.
func (i ID[Kind]) IsZero() bool {
	return i.value == uuid.Nil
}

// String renders the identifier in the canonical lowercase hyphenated form,
// e.g. 550e8400-e29b-41d4-a716-446655440000.
func (i ID[Kind]) String() string {
	return i.value.String()
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (i ID[Kind]) MarshalText() ([]byte, error) {
	return []byte(i.value.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts what Parse
// accepts.
func (i *ID[Kind]) UnmarshalText(text []byte) error {
	id, err := Parse[Kind](string(text))
	if err != nil {
		return err
	}
	*i = id
	return nil
}
