package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/surajravi/user-todo-api/internal/logger"
	"github.com/surajravi/user-todo-api/internal/models"
)

var (
	// ErrUserNotFound is returned when a lookup or update target does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// UserReader defines read operations for users. GetByID reports absence
// as nil, nil rather than an error.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	List(ctx context.Context, limit int64) ([]models.UserDB, error)
}

// UserWriter defines write operations for users. UpdateByID replaces only
// the mutable fields and reports false when no record matched.
type UserWriter interface {
	Insert(ctx context.Context, user models.UserDB) error
	UpdateByID(ctx context.Context, id uuid.UUID, input models.UserInput) (bool, error)
}

// UserService handles the user lifecycle: creation with server-assigned
// ids, lookups, capped listing and full-field updates.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// Create assigns a fresh id to the input, inserts the record and reads it
// back from the same collection it was written to.
func (svc *UserService) Create(ctx context.Context, input models.UserInput) (*models.UserDB, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user := models.UserDB{
		UserID:    uuid.New(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Username:  input.Username,
	}

	if err := svc.writer.Insert(ctx, user); err != nil {
		logger.Log.Errorw("failed to insert user", "err", err)
		return nil, err
	}

	created, err := svc.reader.GetByID(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to read back created user", "id", user.UserID, "err", err)
		return nil, err
	}
	if created == nil {
		// The insert succeeded, so a missing read-back is a storage fault.
		return nil, fmt.Errorf("created user %s not found on read-back", user.UserID)
	}

	return created, nil
}

// Get returns the user with the given id or ErrUserNotFound.
func (svc *UserService) Get(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List returns up to MaxUsersPerList users.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx, models.MaxUsersPerList)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// Update replaces the three mutable fields of an existing user and returns
// the updated record. The id itself is never altered. The existence check
// runs before input validation so an unknown target reports not-found.
func (svc *UserService) Update(ctx context.Context, id uuid.UUID, input models.UserInput) (*models.UserDB, error) {
	existing, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to look up user for update", "id", id, "err", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := svc.writer.UpdateByID(ctx, id, input); err != nil {
		logger.Log.Errorw("failed to update user", "id", id, "err", err)
		return nil, err
	}

	updated, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to read back updated user", "id", id, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("updated user %s not found on read-back", id)
	}

	return updated, nil
}
