package domain

import (
	"context"
	"errors"
)

// Sentinel errors for activity signup.
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadyEnrolled  = errors.New("student already enrolled")
	ErrActivityFull     = errors.New("activity at maximum capacity")
)

// Activity represents an extracurricular activity offered by the school.
// The activity name is the registry key and is not repeated on the record.
// swagger:model Activity
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// NewActivity returns an Activity with the given participants copied so the
// caller's slice is never aliased.
func NewActivity(description, schedule string, maxParticipants int, participants []string) *Activity {
	copied := make([]string, len(participants))
	copy(copied, participants)
	return &Activity{
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
		Participants:    copied,
	}
}

// ActivityStore defines storage operations on the activity registry.
// Names are matched case-sensitively.
type ActivityStore interface {
	// List returns a snapshot of every activity keyed by name. Mutating the
	// returned records does not affect the store.
	List(ctx context.Context) (map[string]*Activity, error)
	// AddParticipant appends email to the named activity's participant list.
	// The existence, duplicate, and capacity checks and the append happen
	// under one critical section.
	AddParticipant(ctx context.Context, activityName, email string) error
}

// ActivityService defines the operations exposed to the delivery layer.
type ActivityService interface {
	ListActivities(ctx context.Context) (map[string]*Activity, error)
	// SignUp enrolls email in the named activity. Fails with
	// ErrActivityNotFound, ErrAlreadyEnrolled, or ErrActivityFull.
	SignUp(ctx context.Context, activityName, email string) error
}
