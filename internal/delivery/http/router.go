package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventhub/internal/delivery/http/controllers"
	"eventhub/internal/delivery/http/helpers"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Users         *controllers.UserController
	Events        *controllers.EventController
	Registrations *controllers.RegistrationController
	Dashboard     *controllers.DashboardController
	Achievements  *controllers.AchievementController
	Reports       *controllers.ReportController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers) *http.ServeMux {
	mux := http.NewServeMux()

	// Users
	mux.HandleFunc("GET /api/users/by-username/{username}", c.Users.GetByUsername)
	mux.HandleFunc("GET /api/users/{id}", c.Users.GetByID)
	mux.HandleFunc("POST /api/users", c.Users.Create)
	mux.HandleFunc("PUT /api/users/{id}", c.Users.Update)
	// "/api/users/{userId}/certificates" would overlap "/api/users/by-username/{username}",
	// so per-user views share one pattern and dispatch on the last segment.
	mux.HandleFunc("GET /api/users/{userId}/{view}", userViews(map[string]http.HandlerFunc{
		"certificates":  c.Achievements.Certificates,
		"awards":        c.Achievements.Awards,
		"registrations": c.Registrations.ListByUser,
		"ai-report":     c.Reports.Download,
		"reports":       c.Reports.History,
	}))
	mux.HandleFunc("POST /api/users/{userId}/ai-report/email", c.Reports.Email)

	// Events
	mux.HandleFunc("GET /api/events", c.Events.List)
	mux.HandleFunc("GET /api/events/featured", c.Events.Featured)
	mux.HandleFunc("GET /api/events/{id}", c.Events.Get)
	mux.HandleFunc("POST /api/events", c.Events.Create)
	mux.HandleFunc("PUT /api/events/{id}", c.Events.Update)
	mux.HandleFunc("DELETE /api/events/{id}", c.Events.Delete)
	mux.HandleFunc("GET /api/events/{id}/registrations", c.Registrations.ListByEvent)

	// Registrations
	mux.HandleFunc("POST /api/registrations", c.Registrations.Create)
	mux.HandleFunc("PUT /api/registrations/{id}/status", c.Registrations.UpdateStatus)

	// Dashboard
	mux.HandleFunc("GET /api/dashboard/registered/{userId}", c.Dashboard.Registered)
	mux.HandleFunc("GET /api/dashboard/organized/{userId}", c.Dashboard.Organized)
	mux.HandleFunc("GET /api/dashboard/stats/{userId}", c.Dashboard.Stats)

	// Certificates and awards
	mux.HandleFunc("POST /api/certificates", c.Achievements.CreateCertificate)
	mux.HandleFunc("POST /api/awards", c.Achievements.CreateAward)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

func userViews(views map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, ok := views[r.PathValue("view")]
		if !ok {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "route not found")
			return
		}
		h(w, r)
	}
}
