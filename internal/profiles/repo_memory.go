package profiles

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo for dev mode and tests.
type MemoryRepo struct {
	mu        sync.RWMutex
	records   map[string]Record   // keyed by user ID
	snapshots map[string]Snapshot // keyed by user ID + profile hash
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		records:   make(map[string]Record),
		snapshots: make(map[string]Snapshot),
	}
}

func snapshotKey(userID, profileHash string) string {
	return userID + "/" + profileHash
}

// UpsertProfile stores or replaces the user's profile.
func (r *MemoryRepo) UpsertProfile(_ context.Context, rec Record) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.records[rec.UserID]; ok {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
	}
	r.records[rec.UserID] = rec
	return rec, nil
}

// GetProfile returns the user's profile.
func (r *MemoryRepo) GetProfile(_ context.Context, userID string) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[userID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// DeleteProfile removes the user's profile.
func (r *MemoryRepo) DeleteProfile(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, userID)
	return nil
}

// GetSnapshot returns the memoized insights for a profile hash.
func (r *MemoryRepo) GetSnapshot(_ context.Context, userID, profileHash string) (Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snap, ok := r.snapshots[snapshotKey(userID, profileHash)]
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	return snap, nil
}

// SaveSnapshot stores a memoized insights result.
func (r *MemoryRepo) SaveSnapshot(_ context.Context, snap Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[snapshotKey(snap.UserID, snap.ProfileHash)] = snap
	return nil
}

// DeleteSnapshots removes all memoized results for a user.
func (r *MemoryRepo) DeleteSnapshots(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, snap := range r.snapshots {
		if snap.UserID == userID {
			delete(r.snapshots, key)
		}
	}
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
