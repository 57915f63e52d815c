package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/petrosur/ordenes/internal/apperr"
	"github.com/petrosur/ordenes/internal/models"
)

// UserCollection defines the interface for user database operations
type UserCollection interface {
	Insert(ctx context.Context, user models.User) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id string, user models.User) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id string) error
}

// MongoUserCollection implements UserCollection for MongoDB
type MongoUserCollection struct {
	Collection *mongo.Collection
}

// Insert inserts a new user and returns it with its generated id.
func (c *MongoUserCollection) Insert(ctx context.Context, user models.User) (*models.User, error) {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	res, err := c.Collection.InsertOne(ctx, user)
	if err != nil {
		return nil, storeErr(err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return &user, nil
}

// FindByID finds a user by their ID
func (c *MongoUserCollection) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		return nil, storeErr(err)
	}
	return &user, nil
}

// FindByEmail finds a user by their email
func (c *MongoUserCollection) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := c.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, storeErr(err)
	}
	return &user, nil
}

// Update replaces a user document keeping its id.
func (c *MongoUserCollection) Update(ctx context.Context, id string, user models.User) (*models.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	user.ID = oid
	user.UpdatedAt = time.Now()

	res, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, user)
	if err != nil {
		return nil, storeErr(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.ErrNotFound
	}
	return &user, nil
}

// UpdateLastLogin updates the last login time for a user
func (c *MongoUserCollection) UpdateLastLogin(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	now := time.Now()
	_, err = c.Collection.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"last_login": now, "updated_at": now}},
	)
	return storeErr(err)
}
