package middleware

import (
	"context"
	"net/http"
)

// OwnerHeader carries the caller-supplied owner tag.
const OwnerHeader = "X-Owner-Id"

type ownerKey struct{}

// OwnerHandle puts the owner tag from OwnerHeader into the request context. The tag
// is not verified; an empty header means the request has no owner.
func OwnerHandle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		owner := r.Header.Get(OwnerHeader)
		if owner == "" {
			next.ServeHTTP(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), ownerKey{}, owner)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OwnerFromContext returns the owner tag set by OwnerHandle.
func OwnerFromContext(ctx context.Context) (string, bool) {
	owner, ok := ctx.Value(ownerKey{}).(string)
	return owner, ok && owner != ""
}
