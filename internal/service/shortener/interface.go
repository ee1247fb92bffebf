// Package shortener provides interfaces for types to be in compliance with.
package shortener

import (
	"context"

	"github.com/danilovkiri/dk_go_shortlinks/internal/service/modellink"
)

// reservedCodes are path segments that never resolve as short codes.
var reservedCodes = map[string]struct{}{
	"api":    {},
	"s":      {},
	"public": {},
}

// IsReserved reports whether code collides with a reserved path segment.
func IsReserved(code string) bool {
	_, ok := reservedCodes[code]
	return ok
}

// Processor defines a set of methods for types implementing Processor.
type Processor interface {
	Shorten(ctx context.Context, rawURL string, ownerID *string) (modellink.ShortLink, error)
	List(ctx context.Context, ownerID string, mine bool) ([]modellink.ShortLink, error)
	Delete(ctx context.Context, code string, ownerID string) error
	Resolve(ctx context.Context, code string) (modellink.ShortLink, error)
	Lookup(ctx context.Context, code string) (modellink.ShortLink, error)
	PingDB(ctx context.Context) error
}
