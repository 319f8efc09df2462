package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"schoolactivities/internal/delivery/http/helpers"
	"schoolactivities/internal/domain"
)

type ActivityController struct {
	Logger  *slog.Logger
	Service domain.ActivityService
}

func NewActivityController(logger *slog.Logger, svc domain.ActivityService) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// SignupSuccessResponse is the success body for POST /activities/{activityName}/signup.
type SignupSuccessResponse struct {
	Message string `json:"message"`
}

// ListActivities godoc
// @Summary List all activities
// @Description Returns every activity keyed by name with description, schedule, capacity, and current participants.
// @Tags activities
// @Produce json
// @Success 200 {object} map[string]domain.Activity
// @Failure 500 {object} helpers.ErrorDetail
// @Router /activities [get]
func (c *ActivityController) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := c.Service.ListActivities(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, activities)
}

// SignUp godoc
// @Summary Sign a student up for an activity
// @Description Appends the student's email to the named activity's participants, enforcing duplicate and capacity rules. Activity names are case-sensitive.
// @Tags activities
// @Produce json
// @Param activityName path string true "Activity name (URL-encoded)"
// @Param email query string true "Student email address"
// @Success 200 {object} controllers.SignupSuccessResponse
// @Failure 400 {object} helpers.ErrorDetail "already signed up, or maximum capacity reached"
// @Failure 404 {object} helpers.ErrorDetail "Activity not found"
// @Failure 422 {object} helpers.ErrorDetail "email query parameter missing"
// @Failure 500 {object} helpers.ErrorDetail
// @Router /activities/{activityName}/signup [post]
func (c *ActivityController) SignUp(w http.ResponseWriter, r *http.Request) {
	activityName := r.PathValue("activityName")

	if !r.URL.Query().Has("email") {
		helpers.WriteJSONDetail(w, http.StatusUnprocessableEntity, "email query parameter is required")
		return
	}
	email := r.URL.Query().Get("email")

	err := c.Service.SignUp(r.Context(), activityName, email)
	if err != nil {
		// The detail phrases below are part of the API contract; clients
		// match on them by substring.
		if errors.Is(err, domain.ErrActivityNotFound) {
			helpers.WriteJSONDetail(w, http.StatusNotFound, "Activity not found")
			return
		}
		if errors.Is(err, domain.ErrAlreadyEnrolled) {
			helpers.WriteJSONDetail(w, http.StatusBadRequest, fmt.Sprintf("Student %s is already signed up for %s", email, activityName))
			return
		}
		if errors.Is(err, domain.ErrActivityFull) {
			helpers.WriteJSONDetail(w, http.StatusBadRequest, fmt.Sprintf("Activity %s has reached maximum capacity", activityName))
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, SignupSuccessResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activityName),
	})
}
