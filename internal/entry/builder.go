package entry

import (
	"strings"
	"time"

	"github.com/keihi-dev/keihi/internal/id"
	"github.com/keihi-dev/keihi/internal/model"
)

// Category describes what an entry kind carries.
type Category struct {
	Kind          model.Kind
	RequiresStore bool
	// CarriesInvoice copies the catalog invoice flag onto the entry.
	CarriesInvoice bool
}

var (
	// Store is the category of store outflows.
	Store = Category{Kind: model.KindStore, RequiresStore: true, CarriesInvoice: true}
	// Personal is the category of personal expense claims.
	Personal = Category{Kind: model.KindPersonal}
)

// Input is the raw form data for one entry.
type Input struct {
	Store       string
	Item        string
	Amount      string
	Memo        string
	OtherDetail string
}

// ItemLookup resolves store-expense item definitions.
type ItemLookup interface {
	StoreItem(name string) (model.StoreItem, bool)
}

// Builder validates input and constructs entries. It has no side effects.
type Builder struct {
	items ItemLookup
	ids   id.Generator
	now   func() time.Time
}

// NewBuilder creates a Builder. A nil ids uses random UUIDs and a nil now
// uses time.Now.
func NewBuilder(items ItemLookup, ids id.Generator, now func() time.Time) *Builder {
	if ids == nil {
		ids = id.UUIDGenerator{}
	}
	if now == nil {
		now = time.Now
	}
	return &Builder{items: items, ids: ids, now: now}
}

// BuildStore validates input and returns a store entry.
func (b *Builder) BuildStore(in Input) (model.StoreEntry, error) {
	base, invoice, err := b.build(Store, in)
	if err != nil {
		return model.StoreEntry{}, err
	}
	return model.StoreEntry{Entry: base, Store: strings.TrimSpace(in.Store), IsInvoice: invoice}, nil
}

// BuildPersonal validates input and returns a personal entry. The Store
// field of in is ignored.
func (b *Builder) BuildPersonal(in Input) (model.PersonalEntry, error) {
	base, _, err := b.build(Personal, in)
	if err != nil {
		return model.PersonalEntry{}, err
	}
	return model.PersonalEntry{Entry: base}, nil
}

// Validate runs the checks of Build without constructing an entry.
func Validate(cat Category, in Input) error {
	_, _, err := validate(cat, in)
	return err
}

// build returns the shared fields and, for categories carrying one, the
// catalog invoice flag of the item (false when the item is not listed).
func (b *Builder) build(cat Category, in Input) (model.Entry, bool, error) {
	amount, detail, err := validate(cat, in)
	if err != nil {
		return model.Entry{}, false, err
	}

	item := strings.TrimSpace(in.Item)
	display := item
	if item == model.OtherItem {
		display = detail
	}
	invoice := false
	if cat.CarriesInvoice && b.items != nil {
		if def, ok := b.items.StoreItem(item); ok {
			invoice = def.IsInvoice
		}
	}
	return model.Entry{
		ID:          b.ids.New(),
		Item:        item,
		Amount:      amount,
		Memo:        in.Memo,
		DisplayItem: display,
		CreatedAt:   b.now(),
	}, invoice, nil
}

func validate(cat Category, in Input) (int64, string, error) {
	// Missing fields are reported before a malformed amount.
	if cat.RequiresStore && strings.TrimSpace(in.Store) == "" {
		return 0, "", &ValidationError{Field: "store", Err: ErrMissingRequiredField}
	}
	item := strings.TrimSpace(in.Item)
	if item == "" {
		return 0, "", &ValidationError{Field: "item", Err: ErrMissingRequiredField}
	}
	if strings.TrimSpace(in.Amount) == "" {
		return 0, "", &ValidationError{Field: "amount", Err: ErrMissingRequiredField}
	}

	detail := strings.TrimSpace(in.OtherDetail)
	if item == model.OtherItem && detail == "" {
		return 0, "", &ValidationError{Field: "other", Err: ErrMissingOtherDetail}
	}

	amount, err := ParseAmount(in.Amount)
	if err != nil {
		return 0, "", &ValidationError{Field: "amount", Err: err}
	}
	return amount, detail, nil
}
