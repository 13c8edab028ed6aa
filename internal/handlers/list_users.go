package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/surajravi/user-todo-api/internal/logger"
	"github.com/surajravi/user-todo-api/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// ListUsersErrorResponse represents an error response for user listing
// swagger:model ListUsersErrorResponse
type ListUsersErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListUsersHandler returns an HTTP handler that lists users. The
// response is capped at the first 1000 records and carries no pagination
// state; consumers fetch details via the single-user endpoint.
// @Summary List users
// @Description Lists up to 1000 users in store order.
// @Tags users
// @Produce json
// @Success 200 {object} models.UserCollection "Users"
// @Failure 500 {object} handlers.ListUsersErrorResponse "Internal server error"
// @Router /users/ [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(ListUsersErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if users == nil {
			users = []models.UserDB{}
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.UserCollection{Users: users})
	}
}
