// Package store implements the in-memory state cache that mirrors the
// persisted journal for the presentation layer. It is an explicit
// observable container: the application shell creates one at startup,
// consumers subscribe to snapshots, and Close tears it down at exit.
//
// All mutating actions follow the same shape: clear the previous error,
// delegate to the persistence gateway, and only on success apply a pure
// in-memory patch to the cached views. On failure the error is recorded
// and returned so the caller can react.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/Skyism/gratefulnessjar/internal/journal/datex"
	"github.com/Skyism/gratefulnessjar/internal/journal/models"
	"github.com/Skyism/gratefulnessjar/internal/journal/repositories/entries"
	"github.com/Skyism/gratefulnessjar/internal/logging"
)

// Snapshot is an immutable view of the store's state handed to observers.
type Snapshot struct {
	Entries       []models.Entry
	TodayEntry    *models.Entry
	SelectedEntry *models.Entry
	IsLoading     bool
	Err           error
}

// Store is the process-local state cache. One instance exists per running
// client; the gateway remains the sole writer of the durable store while
// Store exclusively owns the in-memory views.
type Store struct {
	repo entries.Repository
	log  logging.Logger

	mu            sync.Mutex
	entries       []models.Entry
	todayEntry    *models.Entry
	selectedEntry *models.Entry
	isLoading     bool
	err           error

	subs   map[int]func(Snapshot)
	nextID int
}

// New creates an empty store over the given gateway.
func New(repo entries.Repository, log logging.Logger) *Store {
	return &Store{
		repo: repo,
		log:  log.With("component", "store"),
		subs: map[int]func(Snapshot){},
	}
}

// Close drops all subscribers. The store must not be used afterwards.
func (s *Store) Close() {
	s.mu.Lock()
	s.subs = map[int]func(Snapshot){}
	s.mu.Unlock()
}

// Subscribe registers an observer called after every state change with a
// fresh snapshot. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Entries:       append([]models.Entry(nil), s.entries...),
		TodayEntry:    s.todayEntry,
		SelectedEntry: s.selectedEntry,
		IsLoading:     s.isLoading,
		Err:           s.err,
	}
}

// apply runs a state mutation under the lock and notifies subscribers with
// the resulting snapshot.
func (s *Store) apply(fn func()) {
	s.mu.Lock()
	fn()
	snap := s.snapshotLocked()
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snap)
	}
}

func sortDescending(es []models.Entry) {
	sort.Slice(es, func(i, j int) bool { return es[i].EntryDate > es[j].EntryDate })
}

// LoadEntries fetches and replaces the full entry list.
func (s *Store) LoadEntries(ctx context.Context) error {
	s.apply(func() {
		s.err = nil
		s.isLoading = true
	})

	all, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to load entries", "err", err)
		s.apply(func() {
			s.err = err
			s.isLoading = false
		})
		return err
	}

	s.apply(func() {
		s.entries = all
		s.isLoading = false
	})
	return nil
}

// LoadTodayEntry fetches and replaces the today view. A day with no entry
// yet yields a nil TodayEntry, not an error.
func (s *Store) LoadTodayEntry(ctx context.Context) error {
	s.apply(func() { s.err = nil })

	e, err := s.repo.GetByDate(ctx, datex.Today())
	if err != nil {
		s.log.Error(ctx, "failed to load today's entry", "err", err)
		s.apply(func() { s.err = err })
		return err
	}

	s.apply(func() { s.todayEntry = e })
	return nil
}

// CreateEntry creates an entry (any date) and folds it into the views.
func (s *Store) CreateEntry(ctx context.Context, in models.CreateEntryInput) (*models.Entry, error) {
	s.apply(func() { s.err = nil })

	created, err := s.repo.Create(ctx, in)
	if err != nil {
		s.apply(func() { s.err = err })
		return nil, err
	}

	s.apply(func() {
		s.entries = append(s.entries, *created)
		sortDescending(s.entries)
		if created.EntryDate == datex.Today() {
			s.todayEntry = created
		}
	})
	return created, nil
}

// CreateTodayEntry creates the entry for the current local day.
func (s *Store) CreateTodayEntry(ctx context.Context, in models.CreateEntryInput) (*models.Entry, error) {
	in.EntryDate = datex.Today()
	return s.CreateEntry(ctx, in)
}

// UpdateEntry updates an entry and patches every view holding that id.
func (s *Store) UpdateEntry(ctx context.Context, id string, in models.UpdateEntryInput) (*models.Entry, error) {
	s.apply(func() { s.err = nil })

	updated, err := s.repo.Update(ctx, id, in)
	if err != nil {
		s.apply(func() { s.err = err })
		return nil, err
	}

	s.apply(func() {
		for i := range s.entries {
			if s.entries[i].ID == id {
				s.entries[i] = *updated
			}
		}
		if s.todayEntry != nil && s.todayEntry.ID == id {
			s.todayEntry = updated
		}
		if s.selectedEntry != nil && s.selectedEntry.ID == id {
			s.selectedEntry = updated
		}
	})
	return updated, nil
}

// DeleteEntry deletes an entry and drops it from every view.
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	s.apply(func() { s.err = nil })

	if err := s.repo.Delete(ctx, id); err != nil {
		s.apply(func() { s.err = err })
		return err
	}

	s.apply(func() {
		kept := s.entries[:0]
		for _, e := range s.entries {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		s.entries = kept
		if s.todayEntry != nil && s.todayEntry.ID == id {
			s.todayEntry = nil
		}
		if s.selectedEntry != nil && s.selectedEntry.ID == id {
			s.selectedEntry = nil
		}
	})
	return nil
}

// SelectEntry sets (or clears, with nil) the selection. No I/O.
func (s *Store) SelectEntry(e *models.Entry) {
	s.apply(func() { s.selectedEntry = e })
}

// ClearError resets the error view. No I/O.
func (s *Store) ClearError() {
	s.apply(func() { s.err = nil })
}
