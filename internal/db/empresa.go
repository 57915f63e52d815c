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

// EmpresaCollection defines the interface for empresa database operations.
type EmpresaCollection interface {
	Insert(ctx context.Context, empresa models.Empresa) (*models.Empresa, error)
	FindByID(ctx context.Context, id string) (*models.Empresa, error)
	Find(ctx context.Context, filter bson.M) ([]models.Empresa, error)
	Update(ctx context.Context, id string, empresa models.Empresa) (*models.Empresa, error)
	Delete(ctx context.Context, id string) error
}

// MongoEmpresaCollection implements EmpresaCollection for MongoDB.
type MongoEmpresaCollection struct {
	Collection *mongo.Collection
}

// Insert inserts an empresa and returns it with its generated id. A
// duplicate ruc_cuit surfaces as a conflict.
func (c *MongoEmpresaCollection) Insert(ctx context.Context, empresa models.Empresa) (*models.Empresa, error) {
	empresa.CreatedAt = time.Now()
	empresa.UpdatedAt = time.Now()

	res, err := c.Collection.InsertOne(ctx, empresa)
	if err != nil {
		return nil, storeErr(err)
	}
	empresa.ID = res.InsertedID.(primitive.ObjectID)
	return &empresa, nil
}

// FindByID finds an empresa by its id.
func (c *MongoEmpresaCollection) FindByID(ctx context.Context, id string) (*models.Empresa, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var empresa models.Empresa
	if err := c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&empresa); err != nil {
		return nil, storeErr(err)
	}
	return &empresa, nil
}

// Find lists empresas matching the filter in insertion order.
func (c *MongoEmpresaCollection) Find(ctx context.Context, filter bson.M) ([]models.Empresa, error) {
	cursor, err := c.Collection.Find(ctx, filter, byCreation())
	if err != nil {
		return nil, storeErr(err)
	}
	empresas := []models.Empresa{}
	if err := cursor.All(ctx, &empresas); err != nil {
		return nil, storeErr(err)
	}
	return empresas, nil
}

// Update replaces an empresa document keeping its id.
func (c *MongoEmpresaCollection) Update(ctx context.Context, id string, empresa models.Empresa) (*models.Empresa, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	empresa.ID = oid
	empresa.UpdatedAt = time.Now()

	res, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, empresa)
	if err != nil {
		return nil, storeErr(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.ErrNotFound
	}
	return &empresa, nil
}

// Delete removes an empresa. Dependent unidades/choferes/empleados are not
// touched; they keep a dangling empresa reference.
func (c *MongoEmpresaCollection) Delete(ctx context.Context, id string) error {
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
