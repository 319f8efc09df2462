package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"schoolactivities/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(activityController *controllers.ActivityController) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("GET /activities", activityController.ListActivities)
	mux.HandleFunc("POST /activities/{activityName}/signup", activityController.SignUp)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
