package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petrosur/ordenes/internal/apperr"
)

// Chofer is a registered driver. Logs in with documento only.
type Chofer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmpresaID primitive.ObjectID `bson:"empresa_id" json:"empresaId"`
	Nombre    string             `bson:"nombre" json:"nombre"`
	Documento string             `bson:"documento" json:"documento"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Normalize uppercases the name, the rule applied across all person entities.
func (c *Chofer) Normalize() {
	c.Nombre = strings.ToUpper(strings.TrimSpace(c.Nombre))
	c.Documento = strings.TrimSpace(c.Documento)
}

// Validate checks required fields.
func (c *Chofer) Validate() error {
	if c.EmpresaID.IsZero() {
		return apperr.Validation("falta la empresa del chofer")
	}
	if c.Nombre == "" {
		return apperr.Validation("falta el nombre del chofer")
	}
	if c.Documento == "" {
		return apperr.Validation("falta el documento del chofer")
	}
	return nil
}
