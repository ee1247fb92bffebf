// Package inmemory provides functionality for storing short links in a process-local map.
// Nothing survives a restart, so it is meant for tests and local development.
package inmemory

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/danilovkiri/dk_go_shortlinks/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_shortlinks/internal/storage/errors"
	"github.com/danilovkiri/dk_go_shortlinks/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ storage.LinkStorage = (*Storage)(nil)
)

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	mu     sync.RWMutex
	lastID int64
	DB     map[string]modelstorage.LinkEntry
}

// InitStorage initializes a Storage object and sets its attributes.
func InitStorage() *Storage {
	return &Storage{DB: make(map[string]modelstorage.LinkEntry)}
}

// Insert stores a new entry and assigns it the next ID.
func (s *Storage) Insert(ctx context.Context, code string, URL string, ownerID *string) (modelstorage.LinkEntry, error) {
	// create channels for listening to the go routine result
	insertDone := make(chan modelstorage.LinkEntry, 1)
	insertError := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.DB[code]; ok {
			insertError <- &storageErrors.AlreadyExistsError{Code: code}
			return
		}
		s.lastID++
		entry := modelstorage.LinkEntry{
			ID:        s.lastID,
			Code:      code,
			URL:       URL,
			OwnerID:   ownerID,
			CreatedAt: time.Now().UTC(),
		}
		s.DB[code] = entry
		insertDone <- entry
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		log.Println("Inserting link:", ctx.Err())
		return modelstorage.LinkEntry{}, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case err := <-insertError:
		log.Println("Inserting link:", err.Error())
		return modelstorage.LinkEntry{}, err
	case entry := <-insertDone:
		return entry, nil
	}
}

// FindByCode returns the entry stored under code.
func (s *Storage) FindByCode(ctx context.Context, code string) (modelstorage.LinkEntry, error) {
	if err := ctx.Err(); err != nil {
		return modelstorage.LinkEntry{}, &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.DB[code]
	if !ok {
		return modelstorage.LinkEntry{}, &storageErrors.NotFoundError{Code: code}
	}
	return entry, nil
}

// ListAll returns every entry, newest first.
func (s *Storage) ListAll(ctx context.Context) ([]modelstorage.LinkEntry, error) {
	return s.list(ctx, func(modelstorage.LinkEntry) bool { return true })
}

// ListByOwner returns the entries tagged with ownerID, newest first.
func (s *Storage) ListByOwner(ctx context.Context, ownerID string) ([]modelstorage.LinkEntry, error) {
	return s.list(ctx, func(entry modelstorage.LinkEntry) bool {
		return entry.OwnerID != nil && *entry.OwnerID == ownerID
	})
}

// DeleteByCode removes the entry stored under code and reports whether it existed.
func (s *Storage) DeleteByCode(ctx context.Context, code string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.DB[code]; !ok {
		return false, nil
	}
	delete(s.DB, code)
	return true, nil
}

// PingDB is a mock for a DB pinger.
func (s *Storage) PingDB(_ context.Context) error {
	return nil
}

// CloseDB is a mock for a DB closer.
func (s *Storage) CloseDB() error {
	return nil
}

func (s *Storage) list(ctx context.Context, keep func(modelstorage.LinkEntry) bool) ([]modelstorage.LinkEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	s.mu.RLock()
	entries := make([]modelstorage.LinkEntry, 0, len(s.DB))
	for _, entry := range s.DB {
		if keep(entry) {
			entries = append(entries, entry)
		}
	}
	s.mu.RUnlock()
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID > entries[j].ID })
	return entries, nil
}
