// Package modeldto provides locally used types and their structure for data transfer objects.
package modeldto

import "time"

type (
	RequestShorten struct {
		URL string `json:"url"`
	}

	ResponseLink struct {
		ID        int64     `json:"id"`
		Code      string    `json:"code"`
		ShortURL  string    `json:"short_url"`
		URL       string    `json:"url"`
		OwnerID   *string   `json:"owner_id"`
		CreatedAt time.Time `json:"created_at"`
	}

	ResponseDeleted struct {
		Deleted bool `json:"deleted"`
	}

	ResponseError struct {
		Error string `json:"error"`
	}

	ResponseHealth struct {
		Status string `json:"status"`
	}
)
