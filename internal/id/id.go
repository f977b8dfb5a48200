package id

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// ID identifies an entry within its collection.
type ID string

func (i ID) String() string { return string(i) }

// UnmarshalJSON accepts a JSON string or a JSON number. The earlier client
// used millisecond timestamps as identifiers.
func (i *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding id: %w", err)
		}
		*i = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decoding id %s: %w", data, err)
	}
	*i = ID(n.String())
	return nil
}

// Generator issues fresh entry identities.
type Generator interface {
	New() ID
}

// UUIDGenerator issues random (version 4) UUIDs. Identities do not depend on
// the wall clock, so entries created in the same millisecond never collide.
type UUIDGenerator struct{}

// New returns a fresh random ID.
func (UUIDGenerator) New() ID { return ID(uuid.NewString()) }

// Sequence issues "<prefix>-0001", "<prefix>-0002", ... Safe for concurrent use.
type Sequence struct {
	prefix string
	n      atomic.Int64
}

// NewSequence returns a Sequence starting at 1.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// New returns the next ID in the sequence.
func (s *Sequence) New() ID {
	return ID(fmt.Sprintf("%s-%04d", s.prefix, s.n.Add(1)))
}

// ShortLen is the number of characters shown by Short.
const ShortLen = 8

// Short returns the display prefix of an ID.
// "0c4f1e9a-6b1d-4b7e-9d7e-3f1a2b3c4d5e" -> "0c4f1e9a"
func Short(i ID) string {
	s := string(i)
	if len(s) <= ShortLen {
		return s
	}
	return s[:ShortLen]
}

// Parse validates a user-supplied ID or ID prefix.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty entry ID")
	}
	if strings.ContainsAny(s, " \t\r\n") {
		return "", fmt.Errorf("invalid entry ID %q: contains whitespace", s)
	}
	return ID(s), nil
}

// HasPrefix reports whether i starts with prefix.
func HasPrefix(i ID, prefix ID) bool {
	return strings.HasPrefix(string(i), string(prefix))
}
