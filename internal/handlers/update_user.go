package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/surajravi/user-todo-api/internal/logger"
	"github.com/surajravi/user-todo-api/internal/models"
	"github.com/surajravi/user-todo-api/internal/services"
)

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	Update(ctx context.Context, id uuid.UUID, input models.UserInput) (*models.UserDB, error)
}

// UpdateUserRequest represents the JSON body for a user update
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// First name
	// required: true
	// default: John
	FirstName string `json:"first_name"`

	// Last name
	// required: true
	// default: Doe
	LastName string `json:"last_name"`

	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// The id is immutable and must not appear in the payload.
	ID *string `json:"id,omitempty"`
}

// UpdateUserErrorResponse represents an error response for a user update
// swagger:model UpdateUserErrorResponse
type UpdateUserErrorResponse struct {
	// Error message
	// default: User 0fc950e1-17ac-4844-ae60-5b63b7878c37 not found
	Error string `json:"error"`
}

// NewUpdateUserHandler returns an HTTP handler for updating a user. All
// three mutable fields are replaced; the id stays fixed. Unexpected
// storage failures surface as 500 with the underlying error text.
// @Summary Update a user
// @Description Replaces the user's first_name, last_name and username.
// @Tags users
// @Accept json
// @Produce json
// @Param user_id path string true "User id (version-4 UUID)"
// @Param updateUserRequest body handlers.UpdateUserRequest true "User update request"
// @Success 200 {object} models.UserDB "Updated user"
// @Failure 404 {object} handlers.UpdateUserErrorResponse "User not found"
// @Failure 422 {object} handlers.UpdateUserErrorResponse "Malformed id or body"
// @Failure 500 {object} handlers.UpdateUserErrorResponse "Storage error"
// @Router /users/{user_id} [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		raw := chi.URLParam(r, "user_id")
		if !models.IsUUID4(raw) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(UpdateUserErrorResponse{
				Error: "user_id must be a version-4 UUID",
			})
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(UpdateUserErrorResponse{
				Error: "user_id must be a version-4 UUID",
			})
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(UpdateUserErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if req.ID != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(UpdateUserErrorResponse{
				Error: "id must not be provided",
			})
			return
		}

		input := models.UserInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Username:  req.Username,
		}

		user, err := svc.Update(r.Context(), id, input)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(UpdateUserErrorResponse{
					Error: fmt.Sprintf("User %s not found", raw),
				})
				return
			}

			var ve *models.ValidationError
			if errors.As(err, &ve) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_ = json.NewEncoder(w).Encode(UpdateUserErrorResponse{
					Error: ve.Error(),
				})
				return
			}

			logger.Log.Errorw("unexpected error during user update", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(UpdateUserErrorResponse{
				Error: fmt.Sprintf("Unexpected error: %v", err),
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(user)
	}
}
