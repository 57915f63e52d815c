// Package scope restricts company-owned queries to the caller's empresa.
// Admin callers bypass scoping; empresa callers are always pinned to their
// own empresa id, so a cross-company query matches nothing rather than
// leaking another company's records.
package scope

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petrosur/ordenes/internal/apperr"
	"github.com/petrosur/ordenes/internal/models"
)

// matchNothing is a filter no document satisfies.
func matchNothing() bson.M {
	return bson.M{"_id": bson.M{"$exists": false}}
}

// EmpresaFilter builds the list filter for a company-scoped collection.
// requested is the optional empresaId query parameter.
func EmpresaFilter(p models.Principal, requested string) (bson.M, error) {
	switch p.Rol {
	case models.RoleAdmin:
		if requested == "" {
			return bson.M{}, nil
		}
		oid, err := primitive.ObjectIDFromHex(requested)
		if err != nil {
			return nil, apperr.Validation("empresaId invalido")
		}
		return bson.M{"empresa_id": oid}, nil

	case models.RoleEmpresa:
		if p.EmpresaID == "" {
			// User has not registered a company yet.
			return matchNothing(), nil
		}
		if requested != "" && requested != p.EmpresaID {
			return matchNothing(), nil
		}
		oid, err := primitive.ObjectIDFromHex(p.EmpresaID)
		if err != nil {
			return nil, apperr.ErrForbidden
		}
		return bson.M{"empresa_id": oid}, nil

	default:
		return nil, apperr.ErrForbidden
	}
}

// CanAccessEmpresa reports whether the caller may touch a record owned by
// the given empresa.
func CanAccessEmpresa(p models.Principal, empresaID primitive.ObjectID) bool {
	switch p.Rol {
	case models.RoleAdmin:
		return true
	case models.RoleEmpresa:
		return p.EmpresaID == empresaID.Hex()
	default:
		return false
	}
}

// OwnEmpresaID parses the caller's empresa id. Empresa callers must have
// one; admin callers may act on behalf of any empresa, so the requested id
// wins for them.
func OwnEmpresaID(p models.Principal, requested string) (primitive.ObjectID, error) {
	id := p.EmpresaID
	if p.Rol == models.RoleAdmin && requested != "" {
		id = requested
	}
	if id == "" {
		return primitive.NilObjectID, apperr.Validation("falta la empresa")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperr.Validation("empresaId invalido")
	}
	return oid, nil
}
