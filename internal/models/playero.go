package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petrosur/ordenes/internal/apperr"
)

// Playero is a yard operator who finalizes fuel loads. Logs in with
// documento only. Not owned by any empresa.
type Playero struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Nombre      string              `bson:"nombre" json:"nombre"`
	Documento   string              `bson:"documento" json:"documento"`
	UbicacionID *primitive.ObjectID `bson:"ubicacion_id,omitempty" json:"ubicacionId,omitempty"`
	CreatedAt   time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updatedAt"`
}

func (p *Playero) Normalize() {
	p.Nombre = strings.ToUpper(strings.TrimSpace(p.Nombre))
	p.Documento = strings.TrimSpace(p.Documento)
}

func (p *Playero) Validate() error {
	if p.Nombre == "" {
		return apperr.Validation("falta el nombre del playero")
	}
	if p.Documento == "" {
		return apperr.Validation("falta el documento del playero")
	}
	return nil
}
