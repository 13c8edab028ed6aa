package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/surajravi/user-todo-api/internal/models"
	"github.com/surajravi/user-todo-api/internal/services"
)

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := models.UserInput{FirstName: "A", LastName: "B", Username: "ab1"}

	t.Run("assigns a fresh v4 id and reads the record back", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(mockReader, mockWriter)

		var insertedID uuid.UUID
		mockWriter.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user models.UserDB) error {
				insertedID = user.UserID
				assert.True(t, models.IsUUID4(user.UserID.String()))
				assert.Equal(t, input.FirstName, user.FirstName)
				assert.Equal(t, input.LastName, user.LastName)
				assert.Equal(t, input.Username, user.Username)
				return nil
			})
		mockReader.EXPECT().
			GetByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*models.UserDB, error) {
				assert.Equal(t, insertedID, id)
				return &models.UserDB{
					UserID:    id,
					FirstName: input.FirstName,
					LastName:  input.LastName,
					Username:  input.Username,
				}, nil
			})

		created, err := svc.Create(context.Background(), input)
		assert.NoError(t, err)
		assert.Equal(t, insertedID, created.UserID)
		assert.Equal(t, "A", created.FirstName)
	})

	t.Run("rejects invalid input before touching storage", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(mockReader, mockWriter)

		_, err := svc.Create(context.Background(), models.UserInput{Username: "only"})

		var ve *models.ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{"first_name", "last_name"}, ve.Fields)
	})

	t.Run("propagates insert errors", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(mockReader, mockWriter)

		mockWriter.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset"))

		_, err := svc.Create(context.Background(), input)
		assert.EqualError(t, err, "connection reset")
	})

	t.Run("missing read-back is a storage fault", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(mockReader, mockWriter)

		mockWriter.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		mockReader.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := svc.Create(context.Background(), input)
		assert.ErrorContains(t, err, "not found on read-back")
		assert.NotErrorIs(t, err, services.ErrUserNotFound)
	})
}

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	stored := &models.UserDB{UserID: id, FirstName: "A", LastName: "B", Username: "ab1"}

	tests := []struct {
		name      string
		stored    *models.UserDB
		readerErr error
		wantUser  *models.UserDB
		wantErr   error
	}{
		{
			name:     "found",
			stored:   stored,
			wantUser: stored,
		},
		{
			name:    "absent maps to ErrUserNotFound",
			stored:  nil,
			wantErr: services.ErrUserNotFound,
		},
		{
			name:      "reader error",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			svc := services.NewUserService(mockReader, mockWriter)

			mockReader.EXPECT().
				GetByID(gomock.Any(), id).
				Return(tt.stored, tt.readerErr)

			user, err := svc.Get(context.Background(), id)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantUser, user)
		})
	}
}

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	svc := services.NewUserService(mockReader, mockWriter)

	stored := []models.UserDB{
		{UserID: uuid.New(), FirstName: "A", LastName: "B", Username: "ab1"},
		{UserID: uuid.New(), FirstName: "C", LastName: "D", Username: "cd2"},
	}

	// The fixed cap is always forwarded to the store.
	mockReader.EXPECT().
		List(gomock.Any(), int64(models.MaxUsersPerList)).
		Return(stored, nil)

	users, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, stored, users)
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	input := models.UserInput{FirstName: "New", LastName: "Name", Username: "new_name"}
	existing := &models.UserDB{UserID: id, FirstName: "Old", LastName: "Name", Username: "old_name"}
	updated := &models.UserDB{UserID: id, FirstName: "New", LastName: "Name", Username: "new_name"}

	t.Run("replaces fields and keeps the id", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(mockReader, mockWriter)

		gomock.InOrder(
			mockReader.EXPECT().GetByID(gomock.Any(), id).Return(existing, nil),
			mockWriter.EXPECT().UpdateByID(gomock.Any(), id, input).Return(true, nil),
			mockReader.EXPECT().GetByID(gomock.Any(), id).Return(updated, nil),
		)

		user, err := svc.Update(context.Background(), id, input)
		assert.NoError(t, err)
		assert.Equal(t, updated, user)
		assert.Equal(t, existing.UserID, user.UserID)
	})

	t.Run("unknown id returns ErrUserNotFound without writing", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(mockReader, mockWriter)

		mockReader.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

		_, err := svc.Update(context.Background(), id, input)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("invalid input after lookup returns a validation error", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(mockReader, mockWriter)

		mockReader.EXPECT().GetByID(gomock.Any(), id).Return(existing, nil)

		_, err := svc.Update(context.Background(), id, models.UserInput{FirstName: "only"})

		var ve *models.ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{"last_name", "username"}, ve.Fields)
	})

	t.Run("storage error surfaces unchanged", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(mockReader, mockWriter)

		gomock.InOrder(
			mockReader.EXPECT().GetByID(gomock.Any(), id).Return(existing, nil),
			mockWriter.EXPECT().UpdateByID(gomock.Any(), id, input).Return(false, errors.New("write concern failure")),
		)

		_, err := svc.Update(context.Background(), id, input)
		assert.EqualError(t, err, "write concern failure")
	})
}
