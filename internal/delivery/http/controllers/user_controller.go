package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

// CreateUserRequest is the request body for POST /api/users
type CreateUserRequest struct {
	Username     string `json:"username" validate:"required,max=64"`
	Password     string `json:"password" validate:"required,min=6"`
	Fullname     string `json:"fullname" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	About        string `json:"about"`
	ProfileImage string `json:"profileImage"`
}

func (req CreateUserRequest) toInput() domain.UserInput {
	return domain.UserInput{
		Username:     req.Username,
		Password:     req.Password,
		Fullname:     req.Fullname,
		Email:        req.Email,
		Phone:        req.Phone,
		Location:     req.Location,
		About:        req.About,
		ProfileImage: req.ProfileImage,
	}
}

// UpdateUserRequest is the request body for PUT /api/users/{id}. All fields are optional.
type UpdateUserRequest struct {
	Username     *string    `json:"username" validate:"omitempty,min=1,max=64"`
	Password     *string    `json:"password" validate:"omitempty,min=6"`
	Fullname     *string    `json:"fullname" validate:"omitempty,min=1"`
	Email        *string    `json:"email" validate:"omitempty,email"`
	Phone        *string    `json:"phone"`
	Location     *string    `json:"location"`
	About        *string    `json:"about"`
	ProfileImage *string    `json:"profileImage"`
	MemberSince  *time.Time `json:"memberSince"`
}

func (req UpdateUserRequest) toUpdate() domain.UserUpdate {
	return domain.UserUpdate{
		Username:     req.Username,
		Password:     req.Password,
		Fullname:     req.Fullname,
		Email:        req.Email,
		Phone:        req.Phone,
		Location:     req.Location,
		About:        req.About,
		ProfileImage: req.ProfileImage,
		MemberSince:  req.MemberSince,
	}
}

// UserSuccessResponse is the success response envelope for endpoints returning one user.
type UserSuccessResponse struct {
	Data  *domain.User      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// UserController handles user profile endpoints.
type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
	Users   domain.UserRepository
}

// NewUserController creates a UserController with the given logger, service and repository.
func NewUserController(logger *slog.Logger, svc domain.UserService, users domain.UserRepository) *UserController {
	return &UserController{
		Logger:  logger,
		Service: svc,
		Users:   users,
	}
}

// GetByUsername godoc
// @Summary Get a user by username
// @Description Usernames are case-sensitive. The password is never returned.
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} controllers.UserSuccessResponse "data contains the user"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/by-username/{username} [get]
func (c *UserController) GetByUsername(w http.ResponseWriter, r *http.Request) {
	user, err := c.Users.GetUserByUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}

// GetByID godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} controllers.UserSuccessResponse "data contains the user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{id} [get]
func (c *UserController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	user, err := c.Users.GetUser(r.Context(), id)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}

// Create godoc
// @Summary Create a user
// @Description Registers a new user. The password is stored hashed and a welcome email is sent when mail is configured.
// @Tags users
// @Accept json
// @Produce json
// @Param body body CreateUserRequest true "User data"
// @Success 201 {object} controllers.UserSuccessResponse "data contains the created user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users [post]
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.Register(r.Context(), req.toInput())
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, user)
}

// Update godoc
// @Summary Update a user
// @Description Overwrites only the fields present in the body. Renaming onto a taken username is rejected.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param body body UpdateUserRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.UserSuccessResponse "data contains the updated user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{id} [put]
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req UpdateUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.Update(r.Context(), id, req.toUpdate())
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}
