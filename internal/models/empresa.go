package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petrosur/ordenes/internal/apperr"
)

// Empresa is the tenant entity owning unidades, choferes and empleados.
type Empresa struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Nombre    string              `bson:"nombre" json:"nombre"`
	RucCuit   string              `bson:"ruc_cuit" json:"ruc_cuit"`
	Direccion string              `bson:"direccion" json:"direccion"`
	Telefono  string              `bson:"telefono" json:"telefono"`
	UsuarioID *primitive.ObjectID `bson:"usuario_id,omitempty" json:"usuarioId,omitempty"`
	CreatedAt time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updated_at" json:"updatedAt"`
}

// Normalize trims whitespace on every field.
func (e *Empresa) Normalize() {
	e.Nombre = strings.TrimSpace(e.Nombre)
	e.RucCuit = strings.TrimSpace(e.RucCuit)
	e.Direccion = strings.TrimSpace(e.Direccion)
	e.Telefono = strings.TrimSpace(e.Telefono)
}

// Validate checks required fields.
func (e *Empresa) Validate() error {
	if e.Nombre == "" {
		return apperr.Validation("falta el nombre de la empresa")
	}
	if e.RucCuit == "" {
		return apperr.Validation("falta el RUC/CUIT")
	}
	if e.Direccion == "" {
		return apperr.Validation("falta la direccion")
	}
	if e.Telefono == "" {
		return apperr.Validation("falta el telefono")
	}
	return nil
}
