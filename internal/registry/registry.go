// Package registry holds the in-memory activity registry, the sole source of
// truth for this service. State lives for the process lifetime; a restart
// resets it to the seed data.
package registry

import (
	"context"
	"sync"

	"schoolactivities/internal/domain"
)

// Registry is an in-memory activity store keyed by case-sensitive activity
// name. A single mutex guards the whole check-then-append sequence so a
// concurrent pair of signups at the capacity boundary cannot both succeed.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// New returns a Registry seeded with the given activities. The seed records
// are copied; the caller's map and slices are never aliased.
func New(seed map[string]*domain.Activity) *Registry {
	activities := make(map[string]*domain.Activity, len(seed))
	for name, a := range seed {
		activities[name] = domain.NewActivity(a.Description, a.Schedule, a.MaxParticipants, a.Participants)
	}
	return &Registry{activities: activities}
}

// List returns a deep-copied snapshot of every activity keyed by name.
func (r *Registry) List(ctx context.Context) (map[string]*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*domain.Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = domain.NewActivity(a.Description, a.Schedule, a.MaxParticipants, a.Participants)
	}
	return out, nil
}

// AddParticipant appends email to the named activity's participant list after
// checking, in order, that the activity exists, the email is not already
// enrolled, and capacity is not reached.
func (r *Registry) AddParticipant(ctx context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for _, p := range activity.Participants {
		if p == email {
			return domain.ErrAlreadyEnrolled
		}
	}
	if len(activity.Participants) >= activity.MaxParticipants {
		return domain.ErrActivityFull
	}
	activity.Participants = append(activity.Participants, email)
	return nil
}
