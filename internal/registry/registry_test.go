package registry

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolactivities/internal/domain"
)

func TestRegistry_List_Seed(t *testing.T) {
	r := New(Seed())

	activities, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 9)

	for name, a := range activities {
		assert.NotEmpty(t, a.Description, "activity %q has no description", name)
		assert.NotEmpty(t, a.Schedule, "activity %q has no schedule", name)
		assert.Positive(t, a.MaxParticipants, "activity %q has non-positive capacity", name)
		assert.NotNil(t, a.Participants, "activity %q has nil participants", name)
	}

	chess := activities["Chess Club"]
	require.NotNil(t, chess)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
	assert.Equal(t, 12, chess.MaxParticipants)
}

func TestRegistry_List_Idempotent(t *testing.T) {
	r := New(Seed())

	first, err := r.List(context.Background())
	require.NoError(t, err)
	second, err := r.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRegistry_List_SnapshotIsolation(t *testing.T) {
	r := New(Seed())
	ctx := context.Background()

	snapshot, err := r.List(ctx)
	require.NoError(t, err)

	// Mutating the snapshot must not leak into the store.
	snapshot["Chess Club"].Participants = append(snapshot["Chess Club"].Participants, "intruder@mergington.edu")

	fresh, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, fresh["Chess Club"].Participants, 2)
}

func TestRegistry_AddParticipant(t *testing.T) {
	r := New(Seed())
	ctx := context.Background()

	err := r.AddParticipant(ctx, "Chess Club", "newemail@mergington.edu")
	require.NoError(t, err)

	activities, err := r.List(ctx)
	require.NoError(t, err)
	chess := activities["Chess Club"]
	assert.Len(t, chess.Participants, 3)
	assert.Equal(t, "newemail@mergington.edu", chess.Participants[2], "insertion order must be preserved")

	// No other activity changed.
	for name, a := range activities {
		if name == "Chess Club" {
			continue
		}
		assert.Equal(t, Seed()[name].Participants, a.Participants, "activity %q changed", name)
	}
}

func TestRegistry_AddParticipant_Unknown(t *testing.T) {
	r := New(Seed())

	err := r.AddParticipant(context.Background(), "Fake Activity", "test@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestRegistry_AddParticipant_CaseSensitive(t *testing.T) {
	r := New(Seed())

	err := r.AddParticipant(context.Background(), "chess club", "test@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestRegistry_AddParticipant_Duplicate(t *testing.T) {
	r := New(Seed())
	ctx := context.Background()

	err := r.AddParticipant(ctx, "Chess Club", "michael@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrAlreadyEnrolled)

	activities, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, activities["Chess Club"].Participants, 2, "failed signup must not change the list")
}

func TestRegistry_AddParticipant_Capacity(t *testing.T) {
	r := New(Seed())
	ctx := context.Background()

	// Tennis Club: max 10, seeded with 1 participant. Every slot below
	// capacity must accept a signup.
	for i := 0; i < 9; i++ {
		err := r.AddParticipant(ctx, "Tennis Club", fmt.Sprintf("player%d@mergington.edu", i))
		require.NoError(t, err, "signup %d should fit below capacity", i)
	}

	err := r.AddParticipant(ctx, "Tennis Club", "over@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrActivityFull)

	activities, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, activities["Tennis Club"].Participants, 10)
}

func TestRegistry_AddParticipant_ConcurrentAtBoundary(t *testing.T) {
	seed := map[string]*domain.Activity{
		"Chess Club": domain.NewActivity("desc", "sched", 5, nil),
	}
	r := New(seed)
	ctx := context.Background()

	const attempts = 50
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		go func(i int) {
			errs <- r.AddParticipant(ctx, "Chess Club", fmt.Sprintf("s%d@mergington.edu", i))
		}(i)
	}

	succeeded := 0
	for i := 0; i < attempts; i++ {
		if err := <-errs; err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, domain.ErrActivityFull)
		}
	}
	assert.Equal(t, 5, succeeded)

	activities, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, activities["Chess Club"].Participants, 5, "capacity must hold under concurrent signups")
}
