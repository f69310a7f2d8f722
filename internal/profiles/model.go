package profiles

import (
	"time"

	"discovery-backend/internal/insights"
)

// Record is a user's stored discovery profile. The profile body is persisted
// as a single JSONB document; sections arrive incrementally as the user works
// through discovery, so any subset may be present.
type Record struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Profile   insights.Profile `json:"profile"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// Snapshot is a memoized insights result keyed by the content hash of the
// profile it was computed from. The engine is deterministic, so a snapshot
// stays valid until the profile changes.
type Snapshot struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	ProfileHash string            `json:"profileHash"`
	Insights    insights.Insights `json:"insights"`
	CreatedAt   time.Time         `json:"createdAt"`
}
