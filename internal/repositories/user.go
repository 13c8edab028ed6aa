package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/surajravi/user-todo-api/internal/logger"
	"github.com/surajravi/user-todo-api/internal/models"
)

// uuidBinarySubtype is the BSON binary subtype for standard UUID encoding.
const uuidBinarySubtype byte = 0x04

// userDocument is the stored shape of a user. The domain id doubles as the
// document primary key; the store never assigns a separate ObjectID.
type userDocument struct {
	ID        primitive.Binary `bson:"_id"`
	FirstName string           `bson:"first_name"`
	LastName  string           `bson:"last_name"`
	Username  string           `bson:"username"`
}

func uuidToBinary(id uuid.UUID) primitive.Binary {
	return primitive.Binary{Subtype: uuidBinarySubtype, Data: id[:]}
}

func docFromUser(user models.UserDB) userDocument {
	return userDocument{
		ID:        uuidToBinary(user.UserID),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
	}
}

func (d userDocument) toUser() (models.UserDB, error) {
	id, err := uuid.FromBytes(d.ID.Data)
	if err != nil {
		return models.UserDB{}, fmt.Errorf("malformed document id: %w", err)
	}
	return models.UserDB{
		UserID:    id,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Username:  d.Username,
	}, nil
}

// UserReadRepository performs read operations on the user collection.
type UserReadRepository struct {
	coll *mongo.Collection
}

func NewUserReadRepository(coll *mongo.Collection) *UserReadRepository {
	return &UserReadRepository{coll: coll}
}

// GetByID looks up a user by its id. A missing document is not an error:
// the result is nil, nil.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": uuidToBinary(id)}).Decode(&doc)

	logger.Log.Infow("find user",
		"id", id,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}

	user, err := doc.toUser()
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns up to limit users in store-native order. Ordering across
// calls is not guaranteed stable.
func (r *UserReadRepository) List(ctx context.Context, limit int64) ([]models.UserDB, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	users := make([]models.UserDB, 0)
	for cur.Next(ctx) {
		var doc userDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user document: %w", err)
		}
		user, err := doc.toUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	logger.Log.Infow("list users",
		"limit", limit,
		"count", len(users),
	)

	return users, nil
}

// Count reports the possibly approximate number of user documents. It is
// only suitable for boolean emptiness checks, not for exact accounting.
func (r *UserReadRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.EstimatedDocumentCount(ctx)

	logger.Log.Infow("count users",
		"count", n,
		"error", err,
	)

	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// UserWriteRepository performs write operations on the user collection.
type UserWriteRepository struct {
	coll *mongo.Collection
}

func NewUserWriteRepository(coll *mongo.Collection) *UserWriteRepository {
	return &UserWriteRepository{coll: coll}
}

// Insert stores a new user document keyed by the user's own id.
func (r *UserWriteRepository) Insert(ctx context.Context, user models.UserDB) error {
	_, err := r.coll.InsertOne(ctx, docFromUser(user))

	logger.Log.Infow("insert user",
		"id", user.UserID,
		"username", user.Username,
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("insert user %s: %w", user.UserID, err)
	}
	return nil
}

// UpdateByID replaces the mutable fields of the matched document. The _id
// is never part of the patch. Returns false when no document matched.
func (r *UserWriteRepository) UpdateByID(ctx context.Context, id uuid.UUID, input models.UserInput) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": uuidToBinary(id)},
		bson.M{"$set": bson.M{
			"first_name": input.FirstName,
			"last_name":  input.LastName,
			"username":   input.Username,
		}},
	)

	logger.Log.Infow("update user",
		"id", id,
		"error", err,
	)

	if err != nil {
		return false, fmt.Errorf("update user %s: %w", id, err)
	}
	return res.MatchedCount > 0, nil
}
