// Package roster provides the in-memory roster store backing the signup API.
package roster

import (
	"context"
	"sync"

	"example.com/activities/internal/domain"
	"example.com/activities/internal/observability"
)

// Store keeps the activity roster in process memory. State lives from seed at
// startup until process exit; a restart reverts to the seed dataset.
type Store struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewStore constructs a Store populated with the provided activities.
func NewStore(seed []domain.Activity) *Store {
	s := &Store{activities: make(map[string]domain.Activity, len(seed))}
	for _, act := range seed {
		s.activities[act.Name] = act
		observability.SetParticipantCount(act.Name, len(act.Participants))
	}
	return s
}

// List returns a snapshot of the roster. Participant slices are copied so
// callers never alias store state.
func (s *Store) List(ctx context.Context) (map[string]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.Activity, len(s.activities))
	for name, act := range s.activities {
		participants := make([]string, len(act.Participants))
		copy(participants, act.Participants)
		act.Participants = participants
		out[name] = act
	}
	return out, nil
}

// Signup appends email to the named activity's participant list. The existence
// check, duplicate check, and append run under one lock so concurrent signups
// for the same activity serialize.
func (s *Store) Signup(ctx context.Context, activityName, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for _, existing := range act.Participants {
		if existing == email {
			return domain.ErrAlreadyRegistered
		}
	}

	act.Participants = append(act.Participants, email)
	s.activities[activityName] = act
	observability.SetParticipantCount(activityName, len(act.Participants))
	return nil
}
