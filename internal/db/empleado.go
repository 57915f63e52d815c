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

// EmpleadoCollection defines the interface for empleado database operations.
type EmpleadoCollection interface {
	Insert(ctx context.Context, empleado models.Empleado) (*models.Empleado, error)
	FindByID(ctx context.Context, id string) (*models.Empleado, error)
	Find(ctx context.Context, filter bson.M) ([]models.Empleado, error)
	Update(ctx context.Context, id string, empleado models.Empleado) (*models.Empleado, error)
	Delete(ctx context.Context, id string) error
}

// MongoEmpleadoCollection implements EmpleadoCollection for MongoDB.
type MongoEmpleadoCollection struct {
	Collection *mongo.Collection
}

// Insert inserts an empleado and returns it with its generated id.
func (c *MongoEmpleadoCollection) Insert(ctx context.Context, empleado models.Empleado) (*models.Empleado, error) {
	empleado.CreatedAt = time.Now()
	empleado.UpdatedAt = time.Now()

	res, err := c.Collection.InsertOne(ctx, empleado)
	if err != nil {
		return nil, storeErr(err)
	}
	empleado.ID = res.InsertedID.(primitive.ObjectID)
	return &empleado, nil
}

// FindByID finds an empleado by its id.
func (c *MongoEmpleadoCollection) FindByID(ctx context.Context, id string) (*models.Empleado, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var empleado models.Empleado
	if err := c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&empleado); err != nil {
		return nil, storeErr(err)
	}
	return &empleado, nil
}

// Find lists empleados matching the filter in insertion order.
func (c *MongoEmpleadoCollection) Find(ctx context.Context, filter bson.M) ([]models.Empleado, error) {
	cursor, err := c.Collection.Find(ctx, filter, byCreation())
	if err != nil {
		return nil, storeErr(err)
	}
	empleados := []models.Empleado{}
	if err := cursor.All(ctx, &empleados); err != nil {
		return nil, storeErr(err)
	}
	return empleados, nil
}

// Update replaces an empleado document keeping its id.
func (c *MongoEmpleadoCollection) Update(ctx context.Context, id string, empleado models.Empleado) (*models.Empleado, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	empleado.ID = oid
	empleado.UpdatedAt = time.Now()

	res, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, empleado)
	if err != nil {
		return nil, storeErr(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.ErrNotFound
	}
	return &empleado, nil
}

// Delete removes an empleado.
func (c *MongoEmpleadoCollection) Delete(ctx context.Context, id string) error {
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
