package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/talentledger/contracts/internal/config"
	"github.com/talentledger/contracts/internal/db"
)

// RegisterRequest creates a new organization with its first org_admin user.
type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1"`
	LastName  string `json:"last_name" validate:"required,min=1"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// UserResponse is the user shape returned by the auth endpoints.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse carries the user and a signed token scoped to their tenant.
type LoginResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

// AuthHandler handles registration and login.
type AuthHandler struct {
	store      Store
	passwords  *config.PasswordConfig
	jwtService *JWTService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(store Store, passwords *config.PasswordConfig, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{store: store, passwords: passwords, jwtService: jwtService}
}

// Register creates a fresh tenant and its first admin user, then returns a
// token scoped to that tenant.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, APIError{Code: "bad_request", Message: "invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, APIError{Code: "bad_request", Message: err.Error()})
		return
	}

	existing, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, apiError(err))
		return
	}
	if existing != nil {
		err := &ErrEmailAlreadyExists{Email: req.Email}
		errorResponse(w, HTTPStatus(err), apiError(err))
		return
	}

	hash, err := h.passwords.HashPassword(req.Password)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, apiError(err))
		return
	}

	user := &db.AuthUser{
		ID:           uuid.New(),
		TenantID:     uuid.New(),
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         "org_admin",
	}
	if err := h.store.CreateUser(r.Context(), user); err != nil {
		errorResponse(w, http.StatusInternalServerError, apiError(err))
		return
	}

	h.respondWithToken(w, http.StatusCreated, user)
}

// Login verifies credentials and returns a token scoped to the user's tenant.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, APIError{Code: "bad_request", Message: "invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, APIError{Code: "bad_request", Message: err.Error()})
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, apiError(err))
		return
	}
	if user == nil || !h.passwords.VerifyPassword(req.Password, user.PasswordHash) {
		badCreds := &ErrInvalidCredentials{}
		errorResponse(w, HTTPStatus(badCreds), apiError(badCreds))
		return
	}

	h.respondWithToken(w, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, status int, user *db.AuthUser) {
	token, err := h.jwtService.GenerateToken(user.ID, user.TenantID, user.Role)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, apiError(err))
		return
	}

	jsonResponse(w, status, LoginResponse{
		User: &UserResponse{
			ID:        user.ID,
			TenantID:  user.TenantID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
		Token: token,
	})
}
