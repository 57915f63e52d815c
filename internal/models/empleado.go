package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petrosur/ordenes/internal/apperr"
)

// Empleado is a company employee (administrative staff, not a driver).
type Empleado struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmpresaID primitive.ObjectID `bson:"empresa_id" json:"empresaId"`
	Nombre    string             `bson:"nombre" json:"nombre"`
	Documento string             `bson:"documento" json:"documento"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (e *Empleado) Normalize() {
	e.Nombre = strings.ToUpper(strings.TrimSpace(e.Nombre))
	e.Documento = strings.TrimSpace(e.Documento)
}

func (e *Empleado) Validate() error {
	if e.EmpresaID.IsZero() {
		return apperr.Validation("falta la empresa del empleado")
	}
	if e.Nombre == "" {
		return apperr.Validation("falta el nombre del empleado")
	}
	if e.Documento == "" {
		return apperr.Validation("falta el documento del empleado")
	}
	return nil
}
