package controllers

import (
	"log/slog"
	"net/http"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

// EventDetailsListSuccessResponse is the success response envelope for dashboard event lists.
type EventDetailsListSuccessResponse struct {
	Data  []*domain.EventWithDetails `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

// StatsSuccessResponse is the success response envelope for GET /api/dashboard/stats/{userId}.
type StatsSuccessResponse struct {
	Data  *domain.UserEventStats `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// DashboardController serves the per-user dashboard views.
type DashboardController struct {
	Logger    *slog.Logger
	Dashboard domain.DashboardRepository
}

// NewDashboardController creates a DashboardController with the given logger and repository.
func NewDashboardController(logger *slog.Logger, dashboard domain.DashboardRepository) *DashboardController {
	return &DashboardController{
		Logger:    logger,
		Dashboard: dashboard,
	}
}

// Registered godoc
// @Summary Events a user registered for
// @Description One entry per registration, each carrying that registration's status.
// @Tags dashboard
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} controllers.EventDetailsListSuccessResponse "data contains the events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /dashboard/registered/{userId} [get]
func (c *DashboardController) Registered(w http.ResponseWriter, r *http.Request) {
	userID, ok := helpers.PathID(w, r, "userId")
	if !ok {
		return
	}
	events, err := c.Dashboard.GetUserRegisteredEvents(r.Context(), userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// Organized godoc
// @Summary Events a user organizes
// @Tags dashboard
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} controllers.EventDetailsListSuccessResponse "data contains the events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /dashboard/organized/{userId} [get]
func (c *DashboardController) Organized(w http.ResponseWriter, r *http.Request) {
	userID, ok := helpers.PathID(w, r, "userId")
	if !ok {
		return
	}
	events, err := c.Dashboard.GetUserOrganizedEvents(r.Context(), userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// Stats godoc
// @Summary A user's participation counts
// @Tags dashboard
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} controllers.StatsSuccessResponse "data contains the stats"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /dashboard/stats/{userId} [get]
func (c *DashboardController) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := helpers.PathID(w, r, "userId")
	if !ok {
		return
	}
	stats, err := c.Dashboard.GetUserEventStats(r.Context(), userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}
