// Package roundid generates sortable identifiers for blackjack rounds.
//
// IDs are UUIDv7 values encoded as 26-character lowercase Crockford base32,
// so they sort by creation time and are safe to use in log lines and file names.
package roundid

import (
	"encoding/base32"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Crockford's base32 alphabet (no i, l, o, u)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the encoded length of a round ID
const Length = 26

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// Generator creates round IDs from an optional entropy source
type Generator struct {
	entropy io.Reader
}

// NewGenerator creates a generator. A nil reader uses crypto/rand.
func NewGenerator(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new round ID using crypto/rand
func Generate() string {
	return NewGenerator(nil).Generate()
}

// Generate creates a new round ID using the generator's entropy source
func (g *Generator) Generate() string {
	var (
		id  uuid.UUID
		err error
	)
	if g.entropy != nil {
		id, err = uuid.NewV7FromReader(g.entropy)
	} else {
		id, err = uuid.NewV7()
	}
	if err != nil {
		panic("failed to generate round id: " + err.Error())
	}
	return encoding.EncodeToString(id[:])
}

// Parse decodes a round ID back into its UUID
func Parse(id string) (uuid.UUID, error) {
	if len(id) != Length {
		return uuid.Nil, fmt.Errorf("round ID must be exactly %d characters, got %d", Length, len(id))
	}

	raw, err := encoding.DecodeString(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid round ID %q: %w", id, err)
	}

	u, err := uuid.FromBytes(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid round ID %q: %w", id, err)
	}
	if u.Version() != 7 {
		return uuid.Nil, fmt.Errorf("invalid round ID %q: expected UUIDv7, got version %d", id, u.Version())
	}
	return u, nil
}

// Validate checks that id is a well-formed round ID
func Validate(id string) error {
	_, err := Parse(id)
	return err
}
