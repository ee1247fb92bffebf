// Package storage provides interfaces for types to be in compliance with.
package storage

import (
	"context"

	"github.com/danilovkiri/dk_go_shortlinks/internal/storage/modelstorage"
)

// LinkInserter defines a set of methods for types implementing LinkInserter.
type LinkInserter interface {
	Insert(ctx context.Context, code string, URL string, ownerID *string) (modelstorage.LinkEntry, error)
}

// LinkGetter defines a set of methods for types implementing LinkGetter.
type LinkGetter interface {
	FindByCode(ctx context.Context, code string) (modelstorage.LinkEntry, error)
}

// LinkLister defines a set of methods for types implementing LinkLister.
// Both methods return entries newest first.
type LinkLister interface {
	ListAll(ctx context.Context) ([]modelstorage.LinkEntry, error)
	ListByOwner(ctx context.Context, ownerID string) ([]modelstorage.LinkEntry, error)
}

// LinkDeleter defines a set of methods for types implementing LinkDeleter.
type LinkDeleter interface {
	DeleteByCode(ctx context.Context, code string) (bool, error)
}

// Pinger defines a set of methods for types implementing Pinger.
type Pinger interface {
	PingDB(ctx context.Context) error
}

// Closer defines a set of methods for types implementing Closer.
type Closer interface {
	CloseDB() error
}

// LinkStorage defines a set of embedded interfaces for types implementing LinkStorage.
type LinkStorage interface {
	LinkInserter
	LinkGetter
	LinkLister
	LinkDeleter
	Pinger
	Closer
}
