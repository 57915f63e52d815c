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

// UnidadCollection defines the interface for unidad database operations.
type UnidadCollection interface {
	Insert(ctx context.Context, unidad models.Unidad) (*models.Unidad, error)
	FindByID(ctx context.Context, id string) (*models.Unidad, error)
	Find(ctx context.Context, filter bson.M) ([]models.Unidad, error)
	Update(ctx context.Context, id string, unidad models.Unidad) (*models.Unidad, error)
	SetChofer(ctx context.Context, id string, choferID *primitive.ObjectID) (*models.Unidad, error)
	Delete(ctx context.Context, id string) error
}

// MongoUnidadCollection implements UnidadCollection for MongoDB.
type MongoUnidadCollection struct {
	Collection *mongo.Collection
}

// Insert inserts a unidad and returns it with its generated id. A duplicate
// matricula surfaces as a conflict.
func (c *MongoUnidadCollection) Insert(ctx context.Context, unidad models.Unidad) (*models.Unidad, error) {
	unidad.CreatedAt = time.Now()
	unidad.UpdatedAt = time.Now()

	res, err := c.Collection.InsertOne(ctx, unidad)
	if err != nil {
		return nil, storeErr(err)
	}
	unidad.ID = res.InsertedID.(primitive.ObjectID)
	return &unidad, nil
}

// FindByID finds a unidad by its id.
func (c *MongoUnidadCollection) FindByID(ctx context.Context, id string) (*models.Unidad, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var unidad models.Unidad
	if err := c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&unidad); err != nil {
		return nil, storeErr(err)
	}
	return &unidad, nil
}

// Find lists unidades matching the filter in insertion order.
func (c *MongoUnidadCollection) Find(ctx context.Context, filter bson.M) ([]models.Unidad, error) {
	cursor, err := c.Collection.Find(ctx, filter, byCreation())
	if err != nil {
		return nil, storeErr(err)
	}
	unidades := []models.Unidad{}
	if err := cursor.All(ctx, &unidades); err != nil {
		return nil, storeErr(err)
	}
	return unidades, nil
}

// Update replaces a unidad document keeping its id.
func (c *MongoUnidadCollection) Update(ctx context.Context, id string, unidad models.Unidad) (*models.Unidad, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	unidad.ID = oid
	unidad.UpdatedAt = time.Now()

	res, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, unidad)
	if err != nil {
		return nil, storeErr(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.ErrNotFound
	}
	return &unidad, nil
}

// SetChofer attaches a chofer to the unidad; nil detaches the current one.
func (c *MongoUnidadCollection) SetChofer(ctx context.Context, id string, choferID *primitive.ObjectID) (*models.Unidad, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var update bson.M
	if choferID == nil {
		update = bson.M{
			"$unset": bson.M{"chofer_id": ""},
			"$set":   bson.M{"updated_at": time.Now()},
		}
	} else {
		update = bson.M{
			"$set": bson.M{"chofer_id": *choferID, "updated_at": time.Now()},
		}
	}

	res, err := c.Collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, storeErr(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.ErrNotFound
	}
	return c.FindByID(ctx, id)
}

// Delete removes a unidad. Orders referencing it are left untouched.
func (c *MongoUnidadCollection) Delete(ctx context.Context, id string) error {
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
