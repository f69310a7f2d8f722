package profiles

import "context"

// Repo defines persistence operations for discovery profiles and their
// memoized insight snapshots.
type Repo interface {
	UpsertProfile(ctx context.Context, rec Record) (Record, error)
	GetProfile(ctx context.Context, userID string) (Record, error)
	DeleteProfile(ctx context.Context, userID string) error

	GetSnapshot(ctx context.Context, userID, profileHash string) (Snapshot, error)
	SaveSnapshot(ctx context.Context, snap Snapshot) error
	DeleteSnapshots(ctx context.Context, userID string) error
}
