package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/keihi-dev/keihi/internal/id"
	"github.com/keihi-dev/keihi/internal/logger"
	"github.com/keihi-dev/keihi/internal/model"
)

// Keys under which the two collections are persisted.
const (
	StoreEntriesKey    = "expense_entries_v2"
	PersonalEntriesKey = "personal_entries_v2"
)

// Repository is the persistence collaborator.
type Repository interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, data []byte) error
}

// Service holds both entry collections, most recent first, and writes the
// full collection after every mutation. In-memory state only changes once
// the write has succeeded.
type Service struct {
	repo     Repository
	store    []model.StoreEntry
	personal []model.PersonalEntry
}

// Open loads previously persisted collections. Missing keys start empty.
func Open(ctx context.Context, repo Repository) (*Service, error) {
	s := &Service{repo: repo}

	store, err := load[model.StoreEntry](ctx, repo, StoreEntriesKey)
	if err != nil {
		return nil, err
	}
	personal, err := load[model.PersonalEntry](ctx, repo, PersonalEntriesKey)
	if err != nil {
		return nil, err
	}
	s.store, s.personal = store, personal
	return s, nil
}

// StoreEntries returns a copy of the store entries, most recent first.
func (s *Service) StoreEntries() []model.StoreEntry {
	return slices.Clone(s.store)
}

// PersonalEntries returns a copy of the personal entries, most recent first.
func (s *Service) PersonalEntries() []model.PersonalEntry {
	return slices.Clone(s.personal)
}

// Len returns the number of entries across both collections.
func (s *Service) Len() int {
	return len(s.store) + len(s.personal)
}

// AppendStore inserts e at the front of the store collection.
func (s *Service) AppendStore(ctx context.Context, e model.StoreEntry) error {
	next := prepend(s.store, e)
	if err := save(ctx, s.repo, StoreEntriesKey, next); err != nil {
		return err
	}
	s.store = next
	return nil
}

// AppendPersonal inserts e at the front of the personal collection.
func (s *Service) AppendPersonal(ctx context.Context, e model.PersonalEntry) error {
	next := prepend(s.personal, e)
	if err := save(ctx, s.repo, PersonalEntriesKey, next); err != nil {
		return err
	}
	s.personal = next
	return nil
}

// RemoveStore deletes the store entry with the given id. It reports false,
// without writing, when no entry matches.
func (s *Service) RemoveStore(ctx context.Context, target id.ID) (bool, error) {
	next, ok := without(s.store, target)
	if !ok {
		return false, nil
	}
	if err := save(ctx, s.repo, StoreEntriesKey, next); err != nil {
		return false, err
	}
	s.store = next
	return true, nil
}

// RemovePersonal deletes the personal entry with the given id. It reports
// false, without writing, when no entry matches.
func (s *Service) RemovePersonal(ctx context.Context, target id.ID) (bool, error) {
	next, ok := without(s.personal, target)
	if !ok {
		return false, nil
	}
	if err := save(ctx, s.repo, PersonalEntriesKey, next); err != nil {
		return false, err
	}
	s.personal = next
	return true, nil
}

// Remove deletes the entry with the given id from the collection for kind.
func (s *Service) Remove(ctx context.Context, kind model.Kind, target id.ID) (bool, error) {
	if kind == model.KindPersonal {
		return s.RemovePersonal(ctx, target)
	}
	return s.RemoveStore(ctx, target)
}

// ClearAll empties both collections. Each collection is committed after
// its own write, so a failure on the second leaves the first cleared.
func (s *Service) ClearAll(ctx context.Context) error {
	if err := save(ctx, s.repo, StoreEntriesKey, []model.StoreEntry{}); err != nil {
		return err
	}
	s.store = nil
	if err := save(ctx, s.repo, PersonalEntriesKey, []model.PersonalEntry{}); err != nil {
		return err
	}
	s.personal = nil
	return nil
}

// Ref locates one entry.
type Ref struct {
	Kind model.Kind
	ID   id.ID
}

// Find returns the entries whose id starts with prefix, store entries
// first. An empty kind searches both collections.
func (s *Service) Find(kind model.Kind, prefix id.ID) []Ref {
	var refs []Ref
	if kind == "" || kind == model.KindStore {
		for _, e := range s.store {
			if id.HasPrefix(e.ID, prefix) {
				refs = append(refs, Ref{Kind: model.KindStore, ID: e.ID})
			}
		}
	}
	if kind == "" || kind == model.KindPersonal {
		for _, e := range s.personal {
			if id.HasPrefix(e.ID, prefix) {
				refs = append(refs, Ref{Kind: model.KindPersonal, ID: e.ID})
			}
		}
	}
	return refs
}

func prepend[E any](list []E, e E) []E {
	next := make([]E, 0, len(list)+1)
	next = append(next, e)
	return append(next, list...)
}

func without[E model.Record](list []E, target id.ID) ([]E, bool) {
	next := make([]E, 0, len(list))
	for _, e := range list {
		if e.Base().ID != target {
			next = append(next, e)
		}
	}
	return next, len(next) != len(list)
}

func load[E any](ctx context.Context, repo Repository, key string) ([]E, error) {
	data, ok, err := repo.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}
	if !ok || len(data) == 0 {
		return nil, nil
	}
	var list []E
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", key, err)
	}
	return list, nil
}

func save[E any](ctx context.Context, repo Repository, key string, list []E) error {
	if list == nil {
		list = []E{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := repo.Save(ctx, key, data); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	log := logger.FromContext(ctx)
	log.Debug().Str("key", key).Int("entries", len(list)).Msg("collection saved")
	return nil
}
