// Package domain defines the business logic for the activity signup service.
package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrActivityNotFound is returned when a signup names an unknown activity.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered is returned when the email is already on the activity's roster.
	ErrAlreadyRegistered = errors.New("student is already signed up")
)

// RosterRepository captures roster storage operations. The signup precondition
// checks and the append must execute as a single atomic unit per activity.
type RosterRepository interface {
	List(ctx context.Context) (map[string]Activity, error)
	Signup(ctx context.Context, activityName, email string) error
}

// Service orchestrates roster workflows.
type Service struct {
	repo RosterRepository
}

// NewService constructs a Service.
func NewService(repo RosterRepository) *Service {
	return &Service{repo: repo}
}

// ListActivities returns a snapshot of every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.repo.List(ctx)
}

// Signup registers email for the named activity and returns a confirmation
// message. The email is treated as an opaque key; capacity is informational
// and never enforced.
func (s *Service) Signup(ctx context.Context, activityName, email string) (string, error) {
	if err := s.repo.Signup(ctx, activityName, email); err != nil {
		return "", err
	}
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}
