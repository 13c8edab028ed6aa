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

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// GetUserErrorResponse represents an error response for user retrieval
// swagger:model GetUserErrorResponse
type GetUserErrorResponse struct {
	// Error message
	// default: User 0fc950e1-17ac-4844-ae60-5b63b7878c37 not found
	Error string `json:"error"`
}

// NewGetUserHandler returns an HTTP handler for fetching a single user.
// The path parameter must be a well-formed version-4 UUID; anything else
// is rejected before storage is consulted.
// @Summary Get a user by id
// @Description Retrieves a user's detailed information by the user_id path parameter.
// @Tags users
// @Produce json
// @Param user_id path string true "User id (version-4 UUID)"
// @Success 200 {object} models.UserDB "User"
// @Failure 404 {object} handlers.GetUserErrorResponse "User not found"
// @Failure 422 {object} handlers.GetUserErrorResponse "Malformed user id"
// @Router /users/{user_id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		raw := chi.URLParam(r, "user_id")
		if !models.IsUUID4(raw) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(GetUserErrorResponse{
				Error: "user_id must be a version-4 UUID",
			})
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(GetUserErrorResponse{
				Error: "user_id must be a version-4 UUID",
			})
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(GetUserErrorResponse{
					Error: fmt.Sprintf("User %s not found", raw),
				})
				return
			}

			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(GetUserErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(user)
	}
}
