package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petrosur/ordenes/internal/apperr"
)

// TipoUnidad enumerates vehicle types.
type TipoUnidad string

const (
	TipoCamion     TipoUnidad = "CAMION"
	TipoUtilitario TipoUnidad = "UTILITARIO"
	TipoAuto       TipoUnidad = "AUTO"
	TipoMaquinaria TipoUnidad = "MAQUINARIA"
)

// Unidad represents a company vehicle.
type Unidad struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	EmpresaID primitive.ObjectID  `bson:"empresa_id" json:"empresaId"`
	Matricula string              `bson:"matricula" json:"matricula"`
	Tipo      TipoUnidad          `bson:"tipo" json:"tipo"`
	ChoferID  *primitive.ObjectID `bson:"chofer_id,omitempty" json:"choferId,omitempty"`
	CreatedAt time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updated_at" json:"updatedAt"`
}

// IsValidTipoUnidad checks if a vehicle type is valid.
func IsValidTipoUnidad(t TipoUnidad) bool {
	switch t {
	case TipoCamion, TipoUtilitario, TipoAuto, TipoMaquinaria:
		return true
	default:
		return false
	}
}

// Normalize uppercases matricula and tipo before any write.
func (u *Unidad) Normalize() {
	u.Matricula = strings.ToUpper(strings.TrimSpace(u.Matricula))
	u.Tipo = TipoUnidad(strings.ToUpper(strings.TrimSpace(string(u.Tipo))))
}

// Validate checks required fields.
func (u *Unidad) Validate() error {
	if u.EmpresaID.IsZero() {
		return apperr.Validation("falta la empresa de la unidad")
	}
	if u.Matricula == "" {
		return apperr.Validation("falta la matricula")
	}
	if !IsValidTipoUnidad(u.Tipo) {
		return apperr.Validation("tipo de unidad invalido")
	}
	return nil
}
