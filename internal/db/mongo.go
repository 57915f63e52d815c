package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/petrosur/ordenes/internal/apperr"
)

// Connect connects to MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// Store bundles every entity collection of the application database.
type Store struct {
	Users       UserCollection
	Empresas    EmpresaCollection
	Unidades    UnidadCollection
	Choferes    ChoferCollection
	Empleados   EmpleadoCollection
	Playeros    PlayeroCollection
	Ubicaciones UbicacionCollection
	Ordenes     OrdenCollection
}

// NewStore builds a Store over the given database.
func NewStore(database *mongo.Database) *Store {
	return &Store{
		Users:       &MongoUserCollection{Collection: database.Collection("users")},
		Empresas:    &MongoEmpresaCollection{Collection: database.Collection("empresas")},
		Unidades:    &MongoUnidadCollection{Collection: database.Collection("unidades")},
		Choferes:    &MongoChoferCollection{Collection: database.Collection("choferes")},
		Empleados:   &MongoEmpleadoCollection{Collection: database.Collection("empleados")},
		Playeros:    &MongoPlayeroCollection{Collection: database.Collection("playeros")},
		Ubicaciones: &MongoUbicacionCollection{Collection: database.Collection("ubicaciones")},
		Ordenes:     &MongoOrdenCollection{Collection: database.Collection("ordenes")},
	}
}

// EnsureIndexes creates the unique indexes backing every uniqueness
// constraint. The index, not application pre-checks, is the arbiter of
// conflicts under concurrent writes.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	indexes := map[string]mongo.IndexModel{
		"users":       {Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		"empresas":    {Keys: bson.D{{Key: "ruc_cuit", Value: 1}}, Options: unique},
		"unidades":    {Keys: bson.D{{Key: "matricula", Value: 1}}, Options: unique},
		"choferes":    {Keys: bson.D{{Key: "documento", Value: 1}}, Options: unique},
		"playeros":    {Keys: bson.D{{Key: "documento", Value: 1}}, Options: unique},
		"ubicaciones": {Keys: bson.D{{Key: "nombre", Value: 1}}, Options: unique},
	}
	for name, model := range indexes {
		if _, err := database.Collection(name).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("creando indice unico en %s: %w", name, err)
		}
	}
	return nil
}

// objectID parses a hex id; an unparseable id behaves like an unknown one.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperr.ErrNotFound
	}
	return oid, nil
}

// storeErr maps driver errors onto the application taxonomy.
func storeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case err == mongo.ErrNoDocuments:
		return apperr.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return apperr.ErrConflict
	default:
		return err
	}
}

// byCreation sorts query results by _id, which for ObjectIDs follows
// insertion order.
func byCreation() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
}
