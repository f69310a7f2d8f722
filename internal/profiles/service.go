package profiles

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"discovery-backend/internal/insights"
	"discovery-backend/internal/shared/metrics"
	"discovery-backend/internal/shared/telemetry"
	"discovery-backend/internal/shared/util"
)

// overridable for tests
var (
	newID   = uuid.NewString
	timeNow = time.Now
)

// Service owns profile persistence and insight memoization. The insights
// engine itself is stateless; the service is the only place results are
// cached, keyed by the content hash of the profile they came from.
type Service struct {
	Repo   Repo
	Engine *insights.Engine
}

// NewService constructs a Service.
func NewService(repo Repo, engine *insights.Engine) *Service {
	return &Service{Repo: repo, Engine: engine}
}

// Save validates and upserts the user's profile. A changed profile does not
// invalidate old snapshots eagerly; lookups simply miss on the new hash.
func (s *Service) Save(ctx context.Context, userID string, p *insights.Profile) (Record, error) {
	if userID == "" {
		return Record{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if p == nil {
		return Record{}, fmt.Errorf("%w: profile body is required", ErrInvalidInput)
	}
	if err := p.Validate(); err != nil {
		return Record{}, err
	}

	nowTS := timeNow().UTC()
	rec := Record{
		ID:        newID(),
		UserID:    userID,
		Profile:   *p,
		CreatedAt: nowTS,
		UpdatedAt: nowTS,
	}
	saved, err := s.Repo.UpsertProfile(ctx, rec)
	if err != nil {
		return Record{}, err
	}
	telemetry.Info("profile saved", map[string]any{"userId": userID, "profileId": saved.ID})
	return saved, nil
}

// Get returns the user's stored profile.
func (s *Service) Get(ctx context.Context, userID string) (Record, error) {
	if userID == "" {
		return Record{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.GetProfile(ctx, userID)
}

// Insights returns the insights for the user's stored profile, serving a
// snapshot when the profile is unchanged. The boolean reports a cache hit.
func (s *Service) Insights(ctx context.Context, userID string) (insights.Insights, bool, error) {
	rec, err := s.Get(ctx, userID)
	if err != nil {
		return insights.Insights{}, false, err
	}

	hash, err := profileHash(&rec.Profile)
	if err != nil {
		return insights.Insights{}, false, err
	}

	if snap, err := s.Repo.GetSnapshot(ctx, userID, hash); err == nil {
		metrics.IncInsightsCacheHit()
		return snap.Insights, true, nil
	}

	result, err := s.compute(&rec.Profile)
	if err != nil {
		return insights.Insights{}, false, err
	}

	snap := Snapshot{
		ID:          newID(),
		UserID:      userID,
		ProfileHash: hash,
		Insights:    result,
		CreatedAt:   timeNow().UTC(),
	}
	if err := s.Repo.SaveSnapshot(ctx, snap); err != nil {
		// A failed snapshot write only loses memoization, not the result.
		telemetry.Error("snapshot save failed", map[string]any{"userId": userID, "err": err.Error()})
	}
	return result, false, nil
}

// Preview computes insights for an unsaved profile. Nothing is persisted.
func (s *Service) Preview(_ context.Context, p *insights.Profile) (insights.Insights, error) {
	if p == nil {
		return insights.Insights{}, fmt.Errorf("%w: profile body is required", ErrInvalidInput)
	}
	return s.compute(p)
}

// DeleteUserData removes the user's profile and all memoized snapshots.
func (s *Service) DeleteUserData(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if err := s.Repo.DeleteSnapshots(ctx, userID); err != nil {
		return err
	}
	if err := s.Repo.DeleteProfile(ctx, userID); err != nil {
		return err
	}
	telemetry.Info("profile data deleted", map[string]any{"userId": userID})
	return nil
}

func (s *Service) compute(p *insights.Profile) (insights.Insights, error) {
	started := metrics.NowMillis()
	result, err := s.Engine.BuildInsights(p)
	if err != nil {
		metrics.IncInsightsFailed()
		return insights.Insights{}, err
	}
	metrics.IncInsightsGenerated()
	metrics.ObserveInsightsDurationMs(metrics.NowMillis() - started)
	return result, nil
}

// profileHash returns the snapshot key for a profile. Struct field order makes
// the JSON encoding canonical.
func profileHash(p *insights.Profile) (string, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("hash profile: %w", err)
	}
	return util.HashContent(body), nil
}
