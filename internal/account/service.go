package account

import (
	"context"
	"errors"
	"strings"

	"discovery-backend/internal/profiles"
)

// Service handles account-level operations that span a user's data: claiming
// guest work after login and deleting everything on request.
type Service struct {
	Profiles *profiles.Service
}

// ClaimResult reports what a guest claim moved.
type ClaimResult struct {
	MigratedProfile bool `json:"migratedProfile"`
}

// NewService constructs a Service.
func NewService(profileSvc *profiles.Service) *Service {
	return &Service{Profiles: profileSvc}
}

// ClaimGuest moves a guest's discovery profile to the authenticated user.
// If the authenticated user already has a profile it wins; the guest copy is
// discarded either way. Snapshots are not migrated since the engine
// recomputes them cheaply on the next insights request.
func (s *Service) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (ClaimResult, error) {
	if strings.TrimSpace(guestUserID) == "" || strings.TrimSpace(authedUserID) == "" {
		return ClaimResult{}, errors.New("guestUserID and authedUserID are required")
	}

	guest, err := s.Profiles.Get(ctx, guestUserID)
	if errors.Is(err, profiles.ErrNotFound) {
		return ClaimResult{}, nil
	}
	if err != nil {
		return ClaimResult{}, err
	}

	if _, err := s.Profiles.Get(ctx, authedUserID); err == nil {
		return ClaimResult{}, s.Profiles.DeleteUserData(ctx, guestUserID)
	} else if !errors.Is(err, profiles.ErrNotFound) {
		return ClaimResult{}, err
	}

	if _, err := s.Profiles.Save(ctx, authedUserID, &guest.Profile); err != nil {
		return ClaimResult{}, err
	}
	if err := s.Profiles.DeleteUserData(ctx, guestUserID); err != nil {
		return ClaimResult{}, err
	}
	return ClaimResult{MigratedProfile: true}, nil
}

// DeleteAccount removes the user's profile and all derived insight data.
func (s *Service) DeleteAccount(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errors.New("userID is required")
	}
	return s.Profiles.DeleteUserData(ctx, userID)
}
