package controllers

import (
	"log/slog"
	"net/http"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

// CreateAchievementRequest is the request body for POST /api/certificates and POST /api/awards
type CreateAchievementRequest struct {
	UserID  int64  `json:"userId" validate:"required,gt=0"`
	EventID int64  `json:"eventId" validate:"required,gt=0"`
	Name    string `json:"name" validate:"required"`
}

// CertificateListSuccessResponse is the success response envelope for certificate lists.
type CertificateListSuccessResponse struct {
	Data  []*domain.Certificate `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// AwardListSuccessResponse is the success response envelope for award lists.
type AwardListSuccessResponse struct {
	Data  []*domain.Award   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// AchievementController handles certificate and award endpoints.
type AchievementController struct {
	Logger       *slog.Logger
	Achievements domain.AchievementRepository
}

// NewAchievementController creates an AchievementController with the given logger and repository.
func NewAchievementController(logger *slog.Logger, achievements domain.AchievementRepository) *AchievementController {
	return &AchievementController{
		Logger:       logger,
		Achievements: achievements,
	}
}

// Certificates godoc
// @Summary List a user's certificates
// @Tags achievements
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} controllers.CertificateListSuccessResponse "data contains the certificates"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userId}/certificates [get]
func (c *AchievementController) Certificates(w http.ResponseWriter, r *http.Request) {
	userID, ok := helpers.PathID(w, r, "userId")
	if !ok {
		return
	}
	certs, err := c.Achievements.GetUserCertificates(r.Context(), userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, certs)
}

// Awards godoc
// @Summary List a user's awards
// @Tags achievements
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} controllers.AwardListSuccessResponse "data contains the awards"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userId}/awards [get]
func (c *AchievementController) Awards(w http.ResponseWriter, r *http.Request) {
	userID, ok := helpers.PathID(w, r, "userId")
	if !ok {
		return
	}
	awards, err := c.Achievements.GetUserAwards(r.Context(), userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, awards)
}

// CreateCertificate godoc
// @Summary Issue a certificate
// @Tags achievements
// @Accept json
// @Produce json
// @Param body body CreateAchievementRequest true "Certificate data"
// @Success 201 {object} helpers.APIResponse "data contains the certificate"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /certificates [post]
func (c *AchievementController) CreateCertificate(w http.ResponseWriter, r *http.Request) {
	var req CreateAchievementRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	cert, err := c.Achievements.CreateCertificate(r.Context(), domain.CertificateInput{
		UserID:  req.UserID,
		EventID: req.EventID,
		Name:    req.Name,
	})
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, cert)
}

// CreateAward godoc
// @Summary Grant an award
// @Tags achievements
// @Accept json
// @Produce json
// @Param body body CreateAchievementRequest true "Award data"
// @Success 201 {object} helpers.APIResponse "data contains the award"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /awards [post]
func (c *AchievementController) CreateAward(w http.ResponseWriter, r *http.Request) {
	var req CreateAchievementRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	award, err := c.Achievements.CreateAward(r.Context(), domain.AwardInput{
		UserID:  req.UserID,
		EventID: req.EventID,
		Name:    req.Name,
	})
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, award)
}
