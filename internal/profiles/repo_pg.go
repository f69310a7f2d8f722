package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Profile bodies and insight payloads
// are stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

// UpsertProfile inserts or replaces the user's profile row.
func (r *PGRepo) UpsertProfile(ctx context.Context, rec Record) (Record, error) {
	body, err := json.Marshal(rec.Profile)
	if err != nil {
		return Record{}, fmt.Errorf("marshal profile: %w", err)
	}

	const query = `
INSERT INTO discovery_profiles (id, user_id, profile, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id) DO UPDATE
SET profile = EXCLUDED.profile, updated_at = EXCLUDED.updated_at
RETURNING id, created_at`
	err = r.DB.QueryRowContext(ctx, query, rec.ID, rec.UserID, body, rec.CreatedAt, rec.UpdatedAt).
		Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// GetProfile returns the user's profile row.
func (r *PGRepo) GetProfile(ctx context.Context, userID string) (Record, error) {
	const query = `
SELECT id, user_id, profile, created_at, updated_at
FROM discovery_profiles
WHERE user_id = $1
LIMIT 1`
	var rec Record
	var body []byte
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&rec.ID,
		&rec.UserID,
		&body,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	if err := json.Unmarshal(body, &rec.Profile); err != nil {
		return Record{}, fmt.Errorf("unmarshal profile: %w", err)
	}
	return rec, nil
}

// DeleteProfile removes the user's profile row.
func (r *PGRepo) DeleteProfile(ctx context.Context, userID string) error {
	const query = `DELETE FROM discovery_profiles WHERE user_id = $1`
	_, err := r.DB.ExecContext(ctx, query, userID)
	return err
}

// GetSnapshot returns the memoized insights row for a profile hash.
func (r *PGRepo) GetSnapshot(ctx context.Context, userID, profileHash string) (Snapshot, error) {
	const query = `
SELECT id, user_id, profile_hash, insights, created_at
FROM insight_snapshots
WHERE user_id = $1 AND profile_hash = $2
LIMIT 1`
	var snap Snapshot
	var body []byte
	err := r.DB.QueryRowContext(ctx, query, userID, profileHash).Scan(
		&snap.ID,
		&snap.UserID,
		&snap.ProfileHash,
		&body,
		&snap.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, ErrNotFound
		}
		return Snapshot{}, err
	}
	if err := json.Unmarshal(body, &snap.Insights); err != nil {
		return Snapshot{}, fmt.Errorf("unmarshal insights: %w", err)
	}
	return snap, nil
}

// SaveSnapshot stores a memoized insights row. Recomputing for the same hash
// is a no-op since the engine is deterministic.
func (r *PGRepo) SaveSnapshot(ctx context.Context, snap Snapshot) error {
	body, err := json.Marshal(snap.Insights)
	if err != nil {
		return fmt.Errorf("marshal insights: %w", err)
	}

	const query = `
INSERT INTO insight_snapshots (id, user_id, profile_hash, insights, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id, profile_hash) DO NOTHING`
	_, err = r.DB.ExecContext(ctx, query, snap.ID, snap.UserID, snap.ProfileHash, body, snap.CreatedAt)
	return err
}

// DeleteSnapshots removes all memoized rows for a user.
func (r *PGRepo) DeleteSnapshots(ctx context.Context, userID string) error {
	const query = `DELETE FROM insight_snapshots WHERE user_id = $1`
	_, err := r.DB.ExecContext(ctx, query, userID)
	return err
}

var _ Repo = (*PGRepo)(nil)
