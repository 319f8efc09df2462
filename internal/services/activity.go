package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"schoolactivities/internal/domain"
)

type activityService struct {
	store  domain.ActivityStore
	emails domain.EmailService
	logger *slog.Logger
}

// NewActivityService creates an ActivityService backed by the given store.
// emails may be nil, in which case no confirmation email is sent.
func NewActivityService(store domain.ActivityStore, emails domain.EmailService, logger *slog.Logger) domain.ActivityService {
	return &activityService{
		store:  store,
		emails: emails,
		logger: logger,
	}
}

func (s *activityService) ListActivities(ctx context.Context) (map[string]*domain.Activity, error) {
	activities, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

func (s *activityService) SignUp(ctx context.Context, activityName, email string) error {
	if err := s.store.AddParticipant(ctx, activityName, email); err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) ||
			errors.Is(err, domain.ErrAlreadyEnrolled) ||
			errors.Is(err, domain.ErrActivityFull) {
			return err
		}
		return fmt.Errorf("add participant: %w", err)
	}

	// Confirmation email is best-effort; a delivery failure never undoes or
	// fails the signup.
	if s.emails != nil {
		schedule := ""
		if activities, err := s.store.List(ctx); err == nil {
			if a, ok := activities[activityName]; ok {
				schedule = a.Schedule
			}
		}
		data := &domain.SignupConfirmationEmailData{
			Email:        email,
			ActivityName: activityName,
			Schedule:     schedule,
		}
		if err := s.emails.SendSignupConfirmation(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "signup confirmation email failed",
				"activity", activityName, "email", email, "err", err)
		}
	}
	return nil
}
