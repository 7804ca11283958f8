package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

// CreateEventRequest is the request body for POST /api/events. Dates are RFC 3339.
type CreateEventRequest struct {
	Title            string    `json:"title" validate:"required"`
	Description      string    `json:"description" validate:"required"`
	StartDate        time.Time `json:"startDate" validate:"required"`
	EndDate          time.Time `json:"endDate" validate:"required,gtefield=StartDate"`
	Location         string    `json:"location" validate:"required"`
	Image            string    `json:"image"`
	EventType        string    `json:"eventType" validate:"required"`
	OrganizerID      int64     `json:"organizerId" validate:"required,gt=0"`
	ParticipantLimit int       `json:"participantLimit" validate:"min=0"`
	PrizePool        *string   `json:"prizePool"`
}

func (req CreateEventRequest) toInput() domain.EventInput {
	return domain.EventInput{
		Title:            req.Title,
		Description:      req.Description,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Location:         req.Location,
		Image:            req.Image,
		EventType:        req.EventType,
		OrganizerID:      req.OrganizerID,
		ParticipantLimit: req.ParticipantLimit,
		PrizePool:        req.PrizePool,
	}
}

// UpdateEventRequest is the request body for PUT /api/events/{id}. All fields are
// optional; an empty prizePool clears it.
type UpdateEventRequest struct {
	Title            *string    `json:"title" validate:"omitempty,min=1"`
	Description      *string    `json:"description"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	Location         *string    `json:"location"`
	Image            *string    `json:"image"`
	EventType        *string    `json:"eventType"`
	OrganizerID      *int64     `json:"organizerId" validate:"omitempty,gt=0"`
	ParticipantLimit *int       `json:"participantLimit" validate:"omitempty,min=0"`
	PrizePool        *string    `json:"prizePool"`
}

// Validate implements Validator.
func (req UpdateEventRequest) Validate() []string {
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return []string{"endDate must not be before startDate"}
	}
	return nil
}

func (req UpdateEventRequest) toUpdate() domain.EventUpdate {
	return domain.EventUpdate{
		Title:            req.Title,
		Description:      req.Description,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Location:         req.Location,
		Image:            req.Image,
		EventType:        req.EventType,
		OrganizerID:      req.OrganizerID,
		ParticipantLimit: req.ParticipantLimit,
		PrizePool:        req.PrizePool,
	}
}

// EventSuccessResponse is the success response envelope for endpoints returning one event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListSuccessResponse is the success response envelope for event lists.
type EventListSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventDetailsSuccessResponse is the success response envelope for GET /api/events/{id}.
type EventDetailsSuccessResponse struct {
	Data  *domain.EventWithDetails `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// EventController handles event endpoints.
type EventController struct {
	Logger *slog.Logger
	Events domain.EventRepository
}

// NewEventController creates an EventController with the given logger and repository.
func NewEventController(logger *slog.Logger, events domain.EventRepository) *EventController {
	return &EventController{
		Logger: logger,
		Events: events,
	}
}

// List godoc
// @Summary List events
// @Description Returns every event in creation order.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the events"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	events, err := c.Events.GetEvents(r.Context())
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// Featured godoc
// @Summary List featured events
// @Description Returns the events with the latest start dates. A missing or non-positive limit means 6.
// @Tags events
// @Produce json
// @Param limit query int false "Maximum number of events"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/featured [get]
func (c *EventController) Featured(w http.ResponseWriter, r *http.Request) {
	limit, ok := helpers.QueryInt(w, r, "limit", domain.DefaultFeaturedLimit)
	if !ok {
		return
	}
	events, err := c.Events.GetFeaturedEvents(r.Context(), limit)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// Get godoc
// @Summary Get an event by ID
// @Description Returns the event with its organizer and participant count.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} controllers.EventDetailsSuccessResponse "data contains the event details"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	event, err := c.Events.GetEventWithDetails(r.Context(), id)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Create godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param body body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Events.CreateEvent(r.Context(), req.toInput())
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// Update godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Events.UpdateEvent(r.Context(), id, req.toUpdate())
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Description Registrations, certificates and awards for the event are kept.
// @Tags events
// @Param id path int true "Event ID"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.Events.DeleteEvent(r.Context(), id); err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
