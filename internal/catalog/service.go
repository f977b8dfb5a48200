package catalog

import (
	"slices"

	"github.com/keihi-dev/keihi/internal/model"
)

// Service provides read-only lookup over the three catalogs.
type Service struct {
	stores        []string
	storeItems    []model.StoreItem
	personalItems []string

	storeSet     map[string]bool
	storeItemMap map[string]model.StoreItem
	personalSet  map[string]bool
}

// NewService creates a Service. The slices are copied.
func NewService(stores []string, storeItems []model.StoreItem, personalItems []string) *Service {
	s := &Service{
		stores:        slices.Clone(stores),
		storeItems:    slices.Clone(storeItems),
		personalItems: slices.Clone(personalItems),
		storeSet:      make(map[string]bool, len(stores)),
		storeItemMap:  make(map[string]model.StoreItem, len(storeItems)),
		personalSet:   make(map[string]bool, len(personalItems)),
	}
	for _, name := range stores {
		s.storeSet[name] = true
	}
	for _, it := range storeItems {
		s.storeItemMap[it.Name] = it
	}
	for _, name := range personalItems {
		s.personalSet[name] = true
	}
	return s
}

// Default returns the built-in catalogs.
func Default() *Service {
	return NewService(DefaultStores(), DefaultStoreItems(), DefaultPersonalItems())
}

// Stores returns all store names in display order.
func (s *Service) Stores() []string {
	return slices.Clone(s.stores)
}

// StoreItems returns all store-expense item definitions.
func (s *Service) StoreItems() []model.StoreItem {
	return slices.Clone(s.storeItems)
}

// PersonalItems returns all personal-expense item names.
func (s *Service) PersonalItems() []string {
	return slices.Clone(s.personalItems)
}

// HasStore reports whether name is a known store.
func (s *Service) HasStore(name string) bool {
	return s.storeSet[name]
}

// StoreItem returns the definition for a store-expense item.
func (s *Service) StoreItem(name string) (model.StoreItem, bool) {
	it, ok := s.storeItemMap[name]
	return it, ok
}

// IsInvoice reports the invoice flag of a store-expense item, false if unknown.
func (s *Service) IsInvoice(item string) bool {
	return s.storeItemMap[item].IsInvoice
}

// HasPersonalItem reports whether name is a known personal-expense item.
func (s *Service) HasPersonalItem(name string) bool {
	return s.personalSet[name]
}

// Items returns the item names for a kind.
func (s *Service) Items(kind model.Kind) []string {
	if kind == model.KindPersonal {
		return s.PersonalItems()
	}
	names := make([]string, 0, len(s.storeItems))
	for _, it := range s.storeItems {
		names = append(names, it.Name)
	}
	return names
}

// HasItem reports whether name is a known item for kind.
func (s *Service) HasItem(kind model.Kind, name string) bool {
	if kind == model.KindPersonal {
		return s.HasPersonalItem(name)
	}
	_, ok := s.storeItemMap[name]
	return ok
}
