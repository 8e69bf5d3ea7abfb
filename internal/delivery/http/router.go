package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"communitycalendar/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
// requireAuth wraps the mutating event handlers; reads stay public.
func NewRouter(
	eventController *controllers.EventController,
	authController *controllers.AuthController,
	metaController *controllers.MetaController,
	requireAuth func(http.HandlerFunc) http.HandlerFunc,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /api/events", eventController.List)
	mux.HandleFunc("POST /api/events", requireAuth(eventController.Create))
	mux.HandleFunc("GET /api/events/{eventID}", eventController.GetByID)
	mux.HandleFunc("PUT /api/events/{eventID}", requireAuth(eventController.Update))
	mux.HandleFunc("DELETE /api/events/{eventID}", requireAuth(eventController.Delete))

	// Auth
	mux.HandleFunc("POST /api/register", authController.Register)
	mux.HandleFunc("POST /api/auth/login", authController.Login)

	// Meta
	mux.HandleFunc("GET /api/branding", metaController.Branding)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
