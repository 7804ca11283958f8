package controllers

import (
	"log/slog"
	"net/http"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

// CreateRegistrationRequest is the request body for POST /api/registrations.
// Status defaults to Pending.
type CreateRegistrationRequest struct {
	UserID  int64  `json:"userId" validate:"required,gt=0"`
	EventID int64  `json:"eventId" validate:"required,gt=0"`
	Status  string `json:"status" validate:"omitempty,oneof=Pending Confirmed Cancelled"`
}

// UpdateRegistrationStatusRequest is the request body for PUT /api/registrations/{id}/status
type UpdateRegistrationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Confirmed Cancelled"`
}

// RegistrationSuccessResponse is the success response envelope for endpoints returning one registration.
type RegistrationSuccessResponse struct {
	Data  *domain.Registration `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// RegistrationListSuccessResponse is the success response envelope for registration lists.
type RegistrationListSuccessResponse struct {
	Data  []*domain.Registration `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// RegistrationController handles registration endpoints.
type RegistrationController struct {
	Logger        *slog.Logger
	Registrations domain.RegistrationRepository
}

// NewRegistrationController creates a RegistrationController with the given logger and repository.
func NewRegistrationController(logger *slog.Logger, registrations domain.RegistrationRepository) *RegistrationController {
	return &RegistrationController{
		Logger:        logger,
		Registrations: registrations,
	}
}

// Create godoc
// @Summary Register a user for an event
// @Description Creates the registration unless the user already holds one for the event.
// @Tags registrations
// @Accept json
// @Produce json
// @Param body body CreateRegistrationRequest true "Registration data"
// @Success 201 {object} controllers.RegistrationSuccessResponse "data contains the registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations [post]
func (c *RegistrationController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRegistrationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reg, err := c.Registrations.RegisterForEvent(r.Context(), domain.RegistrationInput{
		UserID:  req.UserID,
		EventID: req.EventID,
		Status:  domain.RegistrationStatus(req.Status),
	})
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// UpdateStatus godoc
// @Summary Update a registration's status
// @Description Any of Pending, Confirmed or Cancelled may replace any other.
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path int true "Registration ID"
// @Param body body UpdateRegistrationStatusRequest true "New status"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data contains the updated registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations/{id}/status [put]
func (c *RegistrationController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req UpdateRegistrationStatusRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reg, err := c.Registrations.UpdateRegistrationStatus(r.Context(), id, domain.RegistrationStatus(req.Status))
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reg)
}

// ListByEvent godoc
// @Summary List an event's registrations
// @Tags registrations
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} controllers.RegistrationListSuccessResponse "data contains the registrations"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id}/registrations [get]
func (c *RegistrationController) ListByEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	regs, err := c.Registrations.GetRegistrationsByEvent(r.Context(), id)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, regs)
}

// ListByUser godoc
// @Summary List a user's registrations
// @Tags registrations
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} controllers.RegistrationListSuccessResponse "data contains the registrations"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userId}/registrations [get]
func (c *RegistrationController) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := helpers.PathID(w, r, "userId")
	if !ok {
		return
	}
	regs, err := c.Registrations.GetRegistrationsByUser(r.Context(), userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, regs)
}
