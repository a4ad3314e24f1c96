package mongo

import (
	"context"
	"errors"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type userRepository struct {
	db               *mongo.Database
	collectionPrefix string
}

func (r *userRepository) collection() *mongo.Collection {
	return r.db.Collection(collectionName(r.collectionPrefix, "users"))
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if err := user.Validate(); err != nil {
		return goerr.Wrap(err, "invalid user")
	}

	if _, err := r.GetByUsername(ctx, user.Username); err == nil {
		return goerr.New("username already exists", goerr.V("username", user.Username))
	}

	if _, err := r.collection().InsertOne(ctx, user); err != nil {
		return goerr.Wrap(err, "failed to insert user", goerr.V("user_id", user.ID))
	}
	return nil
}

func (r *userRepository) find(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	err := r.collection().FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "user not found", goerr.V("filter", filter))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find user", goerr.V("filter", filter))
	}
	return &user, nil
}

func (r *userRepository) Get(ctx context.Context, id model.UserID) (*model.User, error) {
	return r.find(ctx, bson.M{"id": id.String()})
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.find(ctx, bson.M{"username": username})
}
