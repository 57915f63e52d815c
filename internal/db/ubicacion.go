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

// UbicacionCollection defines the interface for ubicacion database operations.
type UbicacionCollection interface {
	Insert(ctx context.Context, ubicacion models.Ubicacion) (*models.Ubicacion, error)
	FindByID(ctx context.Context, id string) (*models.Ubicacion, error)
	Find(ctx context.Context, filter bson.M) ([]models.Ubicacion, error)
	Update(ctx context.Context, id string, ubicacion models.Ubicacion) (*models.Ubicacion, error)
	Delete(ctx context.Context, id string) error
}

// MongoUbicacionCollection implements UbicacionCollection for MongoDB.
type MongoUbicacionCollection struct {
	Collection *mongo.Collection
}

// Insert inserts a ubicacion and returns it with its generated id. A
// duplicate nombre surfaces as a conflict.
func (c *MongoUbicacionCollection) Insert(ctx context.Context, ubicacion models.Ubicacion) (*models.Ubicacion, error) {
	ubicacion.CreatedAt = time.Now()
	ubicacion.UpdatedAt = time.Now()

	res, err := c.Collection.InsertOne(ctx, ubicacion)
	if err != nil {
		return nil, storeErr(err)
	}
	ubicacion.ID = res.InsertedID.(primitive.ObjectID)
	return &ubicacion, nil
}

// FindByID finds a ubicacion by its id.
func (c *MongoUbicacionCollection) FindByID(ctx context.Context, id string) (*models.Ubicacion, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var ubicacion models.Ubicacion
	if err := c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&ubicacion); err != nil {
		return nil, storeErr(err)
	}
	return &ubicacion, nil
}

// Find lists ubicaciones matching the filter in insertion order.
func (c *MongoUbicacionCollection) Find(ctx context.Context, filter bson.M) ([]models.Ubicacion, error) {
	cursor, err := c.Collection.Find(ctx, filter, byCreation())
	if err != nil {
		return nil, storeErr(err)
	}
	ubicaciones := []models.Ubicacion{}
	if err := cursor.All(ctx, &ubicaciones); err != nil {
		return nil, storeErr(err)
	}
	return ubicaciones, nil
}

// Update replaces a ubicacion document keeping its id.
func (c *MongoUbicacionCollection) Update(ctx context.Context, id string, ubicacion models.Ubicacion) (*models.Ubicacion, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	ubicacion.ID = oid
	ubicacion.UpdatedAt = time.Now()

	res, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, ubicacion)
	if err != nil {
		return nil, storeErr(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.ErrNotFound
	}
	return &ubicacion, nil
}

// Delete removes a ubicacion. Orders and playeros referencing it keep the id.
func (c *MongoUbicacionCollection) Delete(ctx context.Context, id string) error {
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
