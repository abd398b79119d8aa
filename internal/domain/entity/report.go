package entity

import "time"

// Report is a free-form report entry, not tied to a specific user. It renders
// directly in API responses, so the field names carry JSON tags.
type Report struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
