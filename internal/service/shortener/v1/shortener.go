// Package shortener provides functionality for creating, resolving and removing short links.
package shortener

import (
	"context"
	"errors"
	"log"
	"net/url"

	serviceErrors "github.com/danilovkiri/dk_go_shortlinks/internal/service/errors"
	"github.com/danilovkiri/dk_go_shortlinks/internal/service/generator"
	"github.com/danilovkiri/dk_go_shortlinks/internal/service/modellink"
	"github.com/danilovkiri/dk_go_shortlinks/internal/service/shortener"
	"github.com/danilovkiri/dk_go_shortlinks/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_shortlinks/internal/storage/errors"
	"github.com/danilovkiri/dk_go_shortlinks/internal/storage/modelstorage"
)

// Messages returned to clients for rejected requests.
const (
	MsgInvalidURL      = `Invalid or missing "url". Use full URL with http/https.`
	MsgOwnerRequired   = "owner id required for mine=true"
	MsgGlobalProtected = "deletion not allowed for global entries"
	MsgNotAllowed      = "not allowed"
)

// Check interface implementation explicitly
var (
	_ shortener.Processor = (*Shortener)(nil)
)

// Shortener struct defines data structure handling and provides support for adding new implementations.
type Shortener struct {
	LinkStorage storage.LinkStorage
	Generator   generator.Generator
}

// InitShortener initializes a Shortener object and sets its attributes.
func InitShortener(s storage.LinkStorage, g generator.Generator) (*Shortener, error) {
	if s == nil {
		return nil, &serviceErrors.FoundNilStorage{Msg: "nil storage was passed to service initializer"}
	}
	if g == nil {
		return nil, &serviceErrors.FoundNilGenerator{Msg: "nil generator was passed to service initializer"}
	}
	return &Shortener{
		LinkStorage: s,
		Generator:   g,
	}, nil
}

// Shorten validates rawURL, generates a code and stores the link. A code collision
// is returned as the storage conflict error and is not retried.
func (short *Shortener) Shorten(ctx context.Context, rawURL string, ownerID *string) (modellink.ShortLink, error) {
	if !isValidURL(rawURL) {
		return modellink.ShortLink{}, &serviceErrors.ValidationError{Msg: MsgInvalidURL}
	}
	code, err := short.Generator.Generate()
	if err != nil {
		return modellink.ShortLink{}, &serviceErrors.GenerationError{Err: err}
	}
	entry, err := short.LinkStorage.Insert(ctx, code, rawURL, ownerID)
	if err != nil {
		return modellink.ShortLink{}, err
	}
	return toShortLink(entry), nil
}

// List returns the links of ownerID when mine is set, every link otherwise.
func (short *Shortener) List(ctx context.Context, ownerID string, mine bool) ([]modellink.ShortLink, error) {
	var (
		entries []modelstorage.LinkEntry
		err     error
	)
	if mine {
		if ownerID == "" {
			return nil, &serviceErrors.ValidationError{Msg: MsgOwnerRequired}
		}
		entries, err = short.LinkStorage.ListByOwner(ctx, ownerID)
	} else {
		entries, err = short.LinkStorage.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	links := make([]modellink.ShortLink, 0, len(entries))
	for _, entry := range entries {
		links = append(links, toShortLink(entry))
	}
	return links, nil
}

// Delete removes the link under code when ownerID matches its owner. Links without
// an owner are never deleted. The lookup and the delete are not run in a transaction.
func (short *Shortener) Delete(ctx context.Context, code string, ownerID string) error {
	entry, err := short.LinkStorage.FindByCode(ctx, code)
	if err != nil {
		return notFound(code, err)
	}
	if entry.OwnerID == nil {
		return &serviceErrors.ForbiddenError{Msg: MsgGlobalProtected}
	}
	if ownerID == "" || ownerID != *entry.OwnerID {
		return &serviceErrors.ForbiddenError{Msg: MsgNotAllowed}
	}
	deleted, err := short.LinkStorage.DeleteByCode(ctx, code)
	if err != nil {
		return err
	}
	if !deleted {
		log.Println("Deleting link: removed concurrently", code)
		return &serviceErrors.NotFoundError{Code: code}
	}
	return nil
}

// Resolve returns the link behind code for redirection. Reserved codes never resolve.
func (short *Shortener) Resolve(ctx context.Context, code string) (modellink.ShortLink, error) {
	if shortener.IsReserved(code) {
		return modellink.ShortLink{}, &serviceErrors.NotFoundError{Code: code}
	}
	return short.Lookup(ctx, code)
}

// Lookup returns the link stored under code.
func (short *Shortener) Lookup(ctx context.Context, code string) (modellink.ShortLink, error) {
	entry, err := short.LinkStorage.FindByCode(ctx, code)
	if err != nil {
		return modellink.ShortLink{}, notFound(code, err)
	}
	return toShortLink(entry), nil
}

// PingDB checks the storage connection.
func (short *Shortener) PingDB(ctx context.Context) error {
	return short.LinkStorage.PingDB(ctx)
}

// isValidURL accepts absolute http and https URLs only.
func isValidURL(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// notFound converts a storage miss into a service miss and passes other errors through.
func notFound(code string, err error) error {
	var notFoundError *storageErrors.NotFoundError
	if errors.As(err, &notFoundError) {
		return &serviceErrors.NotFoundError{Code: code, Err: err}
	}
	return err
}

func toShortLink(entry modelstorage.LinkEntry) modellink.ShortLink {
	return modellink.ShortLink{
		ID:        entry.ID,
		Code:      entry.Code,
		URL:       entry.URL,
		OwnerID:   entry.OwnerID,
		CreatedAt: entry.CreatedAt,
	}
}
