// Package modellink provides locally used types and their structure for link handling between modules.
package modellink

import "time"

// ShortLink maps a short code to its target URL.
type ShortLink struct {
	ID        int64
	Code      string
	URL       string
	OwnerID   *string
	CreatedAt time.Time
}
