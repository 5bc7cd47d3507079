package handlers

import (
	"net/http"

	"philharmonic-tickets/internal/middleware"
	"philharmonic-tickets/internal/models"
)

// UserService is the surface of the profile service used by the handler
type UserService interface {
	GetProfile(identity models.Identity) (*models.User, error)
	UpdateProfile(identity models.Identity, req *models.ProfileUpdateRequest) (*models.User, error)
}

// UsersHandler handles profile endpoints for the authenticated user
type UsersHandler struct {
	users UserService
}

// NewUsersHandler creates a new users handler
func NewUsersHandler(users UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Me handles GET /api/users/me
func (h *UsersHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, models.ErrInvalidCredentials)
		return
	}

	user, err := h.users.GetProfile(identity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateMe handles PUT /api/users/me
func (h *UsersHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, models.ErrInvalidCredentials)
		return
	}

	var req models.ProfileUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.users.UpdateProfile(identity, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
