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

// PlayeroCollection defines the interface for playero database operations.
type PlayeroCollection interface {
	Insert(ctx context.Context, playero models.Playero) (*models.Playero, error)
	FindByID(ctx context.Context, id string) (*models.Playero, error)
	FindByDocumento(ctx context.Context, documento string) (*models.Playero, error)
	Find(ctx context.Context, filter bson.M) ([]models.Playero, error)
	Update(ctx context.Context, id string, playero models.Playero) (*models.Playero, error)
	Delete(ctx context.Context, id string) error
}

// MongoPlayeroCollection implements PlayeroCollection for MongoDB.
type MongoPlayeroCollection struct {
	Collection *mongo.Collection
}

// Insert inserts a playero and returns it with its generated id. A duplicate
// documento surfaces as a conflict.
func (c *MongoPlayeroCollection) Insert(ctx context.Context, playero models.Playero) (*models.Playero, error) {
	playero.CreatedAt = time.Now()
	playero.UpdatedAt = time.Now()

	res, err := c.Collection.InsertOne(ctx, playero)
	if err != nil {
		return nil, storeErr(err)
	}
	playero.ID = res.InsertedID.(primitive.ObjectID)
	return &playero, nil
}

// FindByID finds a playero by its id.
func (c *MongoPlayeroCollection) FindByID(ctx context.Context, id string) (*models.Playero, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var playero models.Playero
	if err := c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&playero); err != nil {
		return nil, storeErr(err)
	}
	return &playero, nil
}

// FindByDocumento finds a playero by documento, the operator login credential.
func (c *MongoPlayeroCollection) FindByDocumento(ctx context.Context, documento string) (*models.Playero, error) {
	var playero models.Playero
	if err := c.Collection.FindOne(ctx, bson.M{"documento": documento}).Decode(&playero); err != nil {
		return nil, storeErr(err)
	}
	return &playero, nil
}

// Find lists playeros matching the filter in insertion order.
func (c *MongoPlayeroCollection) Find(ctx context.Context, filter bson.M) ([]models.Playero, error) {
	cursor, err := c.Collection.Find(ctx, filter, byCreation())
	if err != nil {
		return nil, storeErr(err)
	}
	playeros := []models.Playero{}
	if err := cursor.All(ctx, &playeros); err != nil {
		return nil, storeErr(err)
	}
	return playeros, nil
}

// Update replaces a playero document keeping its id.
func (c *MongoPlayeroCollection) Update(ctx context.Context, id string, playero models.Playero) (*models.Playero, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	playero.ID = oid
	playero.UpdatedAt = time.Now()

	res, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, playero)
	if err != nil {
		return nil, storeErr(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.ErrNotFound
	}
	return &playero, nil
}

// Delete removes a playero. Orders loaded by it keep the id.
func (c *MongoPlayeroCollection) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := c.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return storeErr(err)
	}
	if res.DeletedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
