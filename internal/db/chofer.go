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

// ChoferCollection defines the interface for chofer database operations.
type ChoferCollection interface {
	Insert(ctx context.Context, chofer models.Chofer) (*models.Chofer, error)
	FindByID(ctx context.Context, id string) (*models.Chofer, error)
	FindByDocumento(ctx context.Context, documento string) (*models.Chofer, error)
	Find(ctx context.Context, filter bson.M) ([]models.Chofer, error)
	Update(ctx context.Context, id string, chofer models.Chofer) (*models.Chofer, error)
	Delete(ctx context.Context, id string) error
}

// MongoChoferCollection implements ChoferCollection for MongoDB.
type MongoChoferCollection struct {
	Collection *mongo.Collection
}

// Insert inserts a chofer and returns it with its generated id. A duplicate
// documento surfaces as a conflict.
func (c *MongoChoferCollection) Insert(ctx context.Context, chofer models.Chofer) (*models.Chofer, error) {
	chofer.CreatedAt = time.Now()
	chofer.UpdatedAt = time.Now()

	res, err := c.Collection.InsertOne(ctx, chofer)
	if err != nil {
		return nil, storeErr(err)
	}
	chofer.ID = res.InsertedID.(primitive.ObjectID)
	return &chofer, nil
}

// FindByID finds a chofer by its id.
func (c *MongoChoferCollection) FindByID(ctx context.Context, id string) (*models.Chofer, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var chofer models.Chofer
	if err := c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&chofer); err != nil {
		return nil, storeErr(err)
	}
	return &chofer, nil
}

// FindByDocumento finds a chofer by documento, the driver login credential.
func (c *MongoChoferCollection) FindByDocumento(ctx context.Context, documento string) (*models.Chofer, error) {
	var chofer models.Chofer
	if err := c.Collection.FindOne(ctx, bson.M{"documento": documento}).Decode(&chofer); err != nil {
		return nil, storeErr(err)
	}
	return &chofer, nil
}

// Find lists choferes matching the filter in insertion order.
func (c *MongoChoferCollection) Find(ctx context.Context, filter bson.M) ([]models.Chofer, error) {
	cursor, err := c.Collection.Find(ctx, filter, byCreation())
	if err != nil {
		return nil, storeErr(err)
	}
	choferes := []models.Chofer{}
	if err := cursor.All(ctx, &choferes); err != nil {
		return nil, storeErr(err)
	}
	return choferes, nil
}

// Update replaces a chofer document keeping its id.
func (c *MongoChoferCollection) Update(ctx context.Context, id string, chofer models.Chofer) (*models.Chofer, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	chofer.ID = oid
	chofer.UpdatedAt = time.Now()

	res, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, chofer)
	if err != nil {
		return nil, storeErr(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.ErrNotFound
	}
	return &chofer, nil
}

// Delete removes a chofer. Unidades and ordenes referencing it keep the id.
func (c *MongoChoferCollection) Delete(ctx context.Context, id string) error {
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
