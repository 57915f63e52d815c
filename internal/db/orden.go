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

// OrdenCollection defines the interface for orden database operations.
type OrdenCollection interface {
	Insert(ctx context.Context, orden models.Orden) (*models.Orden, error)
	FindByID(ctx context.Context, id string) (*models.Orden, error)
	Find(ctx context.Context, filter bson.M) ([]models.Orden, error)
	Update(ctx context.Context, id string, orden models.Orden) (*models.Orden, error)
	Transition(ctx context.Context, req models.TransitionRequest, playeroID *primitive.ObjectID) (*models.Orden, error)
	Delete(ctx context.Context, id string) error
}

// MongoOrdenCollection implements OrdenCollection for MongoDB.
type MongoOrdenCollection struct {
	Collection *mongo.Collection
}

// Insert inserts an orden in its initial state and returns it with its
// generated id. Estado and fecha de emision are set here, not by callers.
func (c *MongoOrdenCollection) Insert(ctx context.Context, orden models.Orden) (*models.Orden, error) {
	orden.Estado = models.EstadoPendienteAutorizacion
	orden.FechaEmision = time.Now()
	orden.FechaCarga = nil
	orden.LitrosCargados = nil
	orden.CreatedAt = time.Now()
	orden.UpdatedAt = time.Now()

	res, err := c.Collection.InsertOne(ctx, orden)
	if err != nil {
		return nil, storeErr(err)
	}
	orden.ID = res.InsertedID.(primitive.ObjectID)
	return &orden, nil
}

// FindByID finds an orden by its id.
func (c *MongoOrdenCollection) FindByID(ctx context.Context, id string) (*models.Orden, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var orden models.Orden
	if err := c.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&orden); err != nil {
		return nil, storeErr(err)
	}
	return &orden, nil
}

// Find lists ordenes matching the filter in insertion order.
func (c *MongoOrdenCollection) Find(ctx context.Context, filter bson.M) ([]models.Orden, error) {
	cursor, err := c.Collection.Find(ctx, filter, byCreation())
	if err != nil {
		return nil, storeErr(err)
	}
	ordenes := []models.Orden{}
	if err := cursor.All(ctx, &ordenes); err != nil {
		return nil, storeErr(err)
	}
	return ordenes, nil
}

// Update replaces an orden document keeping its id, estado and load fields.
// Status changes go through Transition only.
func (c *MongoOrdenCollection) Update(ctx context.Context, id string, orden models.Orden) (*models.Orden, error) {
	current, err := c.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	orden.ID = current.ID
	orden.Estado = current.Estado
	orden.FechaEmision = current.FechaEmision
	orden.FechaCarga = current.FechaCarga
	orden.LitrosCargados = current.LitrosCargados
	orden.PlayeroID = current.PlayeroID
	orden.CreatedAt = current.CreatedAt
	orden.UpdatedAt = time.Now()

	res, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": current.ID}, orden)
	if err != nil {
		return nil, storeErr(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.ErrNotFound
	}
	return &orden, nil
}

// Transition moves an orden through its lifecycle. Completing a load
// requires measured liters and a ubicacion; both are persisted on the orden
// together with the load timestamp and, when the caller is a playero, the
// playero id.
func (c *MongoOrdenCollection) Transition(ctx context.Context, req models.TransitionRequest, playeroID *primitive.ObjectID) (*models.Orden, error) {
	if !models.IsValidEstado(req.Estado) {
		return nil, apperr.Validation("estado invalido")
	}

	orden, err := c.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(orden.Estado, req.Estado) {
		return nil, models.ErrInvalidTransition(orden.Estado, req.Estado)
	}

	now := time.Now()
	set := bson.M{"estado": req.Estado, "updated_at": now}

	if req.Estado == models.EstadoCargada {
		if req.LitrosCargados <= 0 {
			return nil, apperr.Validation("faltan los litros cargados")
		}
		if req.UbicacionID == "" {
			return nil, apperr.Validation("falta la ubicacion de carga")
		}
		ubicacionID, err := objectID(req.UbicacionID)
		if err != nil {
			return nil, apperr.Validation("ubicacion invalida")
		}
		set["litros_cargados"] = req.LitrosCargados
		set["ubicacion_id"] = ubicacionID
		set["fecha_carga"] = now
		if playeroID != nil {
			set["playero_id"] = *playeroID
		}
	}

	res, err := c.Collection.UpdateOne(ctx, bson.M{"_id": orden.ID}, bson.M{"$set": set})
	if err != nil {
		return nil, storeErr(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.ErrNotFound
	}
	return c.FindByID(ctx, req.ID)
}

// Delete removes an orden.
func (c *MongoOrdenCollection) Delete(ctx context.Context, id string) error {
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
