package controllers

import (
	"log/slog"
	"net/http"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

const reportFilename = "ai-event-report.txt"

// ReportHistorySuccessResponse is the success response envelope for GET /api/users/{userId}/reports.
type ReportHistorySuccessResponse struct {
	Data  []*domain.ArchivedReport `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// ReportController serves participation reports.
type ReportController struct {
	Logger  *slog.Logger
	Service domain.ReportService
}

// NewReportController creates a ReportController with the given logger and service.
func NewReportController(logger *slog.Logger, svc domain.ReportService) *ReportController {
	return &ReportController{
		Logger:  logger,
		Service: svc,
	}
}

// Download godoc
// @Summary Download a participation report
// @Description Generates the report as a plain-text attachment named ai-event-report.txt.
// @Tags reports
// @Produce plain
// @Param userId path int true "User ID"
// @Success 200 {string} string "report text"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userId}/ai-report [get]
func (c *ReportController) Download(w http.ResponseWriter, r *http.Request) {
	userID, ok := helpers.PathID(w, r, "userId")
	if !ok {
		return
	}
	report, err := c.Service.Generate(r.Context(), userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+reportFilename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(report))
}

// Email godoc
// @Summary Email a participation report
// @Description Generates the report and sends it to the user's email address.
// @Tags reports
// @Produce json
// @Param userId path int true "User ID"
// @Success 202 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userId}/ai-report/email [post]
func (c *ReportController) Email(w http.ResponseWriter, r *http.Request) {
	userID, ok := helpers.PathID(w, r, "userId")
	if !ok {
		return
	}
	if err := c.Service.Email(r.Context(), userID); err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusAccepted, nil)
}

// History godoc
// @Summary List archived reports
// @Description Newest first. Empty when no report archive is configured.
// @Tags reports
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} controllers.ReportHistorySuccessResponse "data contains the archived reports"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userId}/reports [get]
func (c *ReportController) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := helpers.PathID(w, r, "userId")
	if !ok {
		return
	}
	reports, err := c.Service.History(r.Context(), userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reports)
}
