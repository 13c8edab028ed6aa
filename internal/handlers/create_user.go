package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/surajravi/user-todo-api/internal/logger"
	"github.com/surajravi/user-todo-api/internal/models"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, input models.UserInput) (*models.UserDB, error)
}

// CreateUserRequest represents the JSON body for user creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
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

	// The server assigns ids; a client-supplied id is rejected.
	ID *string `json:"id,omitempty"`
}

// CreateUserErrorResponse represents an error response for user creation
// swagger:model CreateUserErrorResponse
type CreateUserErrorResponse struct {
	// Error message
	// default: invalid or missing fields: first_name
	Error string `json:"error"`
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// @Summary Create a new user
// @Description Creates a new user record. A unique id is generated server-side and returned in the response.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User creation request"
// @Success 201 {object} models.UserDB "Created user"
// @Failure 422 {object} handlers.CreateUserErrorResponse "Invalid request body"
// @Failure 500 {object} handlers.CreateUserErrorResponse "Internal server error"
// @Router /users/ [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(CreateUserErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if req.ID != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(CreateUserErrorResponse{
				Error: "id must not be provided",
			})
			return
		}

		input := models.UserInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Username:  req.Username,
		}

		user, err := svc.Create(r.Context(), input)
		if err != nil {
			var ve *models.ValidationError
			if errors.As(err, &ve) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_ = json.NewEncoder(w).Encode(CreateUserErrorResponse{
					Error: ve.Error(),
				})
				return
			}

			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(CreateUserErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(user)
	}
}
