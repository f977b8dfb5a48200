package model

import (
	"fmt"
	"time"

	"github.com/keihi-dev/keihi/internal/id"
)

// Kind selects one of the two entry collections.
type Kind string

const (
	KindStore    Kind = "store"
	KindPersonal Kind = "personal"
)

// ParseKind converts a user-supplied kind name.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindStore, KindPersonal:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown entry kind %q (want %q or %q)", s, KindStore, KindPersonal)
	}
}

// OtherItem is the catalog sentinel for an item described in free text.
const OtherItem = "その他"

// TimestampFormat is the creation timestamp layout used in exports
// (ISO-8601, millisecond precision). Always formatted in UTC.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Entry holds the fields shared by store and personal entries.
// Entries are never mutated after construction.
type Entry struct {
	ID          id.ID     `json:"id"`
	Item        string    `json:"item"`
	Amount      int64     `json:"amount"`
	Memo        string    `json:"memo"`
	DisplayItem string    `json:"displayItem"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Base returns the shared fields.
func (e Entry) Base() Entry { return e }

// StoreEntry is an outflow attributed to one store.
type StoreEntry struct {
	Entry
	Store     string `json:"store"`
	IsInvoice bool   `json:"isInvoice"`
}

// PersonalEntry is an expense claimed by the fixed claimant.
type PersonalEntry struct {
	Entry
}

// Record is satisfied by both entry kinds.
type Record interface {
	Base() Entry
}

// StoreItem is one store-expense catalog definition.
type StoreItem struct {
	Name      string
	IsInvoice bool
}
