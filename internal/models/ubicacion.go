package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petrosur/ordenes/internal/apperr"
)

// Ubicacion is a named physical loading location.
type Ubicacion struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nombre    string             `bson:"nombre" json:"nombre"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (u *Ubicacion) Normalize() {
	u.Nombre = strings.ToUpper(strings.TrimSpace(u.Nombre))
}

func (u *Ubicacion) Validate() error {
	if u.Nombre == "" {
		return apperr.Validation("falta el nombre de la ubicacion")
	}
	return nil
}
