package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petrosur/ordenes/internal/models"
)

// OrdenResolver turns stored ordenes, which carry ids only, into views with
// the referenced display fields filled in. References are weak: a deleted
// unidad or chofer simply leaves its display fields empty.
type OrdenResolver struct {
	Empresas    EmpresaCollection
	Unidades    UnidadCollection
	Choferes    ChoferCollection
	Playeros    PlayeroCollection
	Ubicaciones UbicacionCollection
}

// NewOrdenResolver builds a resolver over the store's collections.
func NewOrdenResolver(store *Store) *OrdenResolver {
	return &OrdenResolver{
		Empresas:    store.Empresas,
		Unidades:    store.Unidades,
		Choferes:    store.Choferes,
		Playeros:    store.Playeros,
		Ubicaciones: store.Ubicaciones,
	}
}

// Resolve builds views for a batch of ordenes, looking each referenced
// entity up at most once.
func (r *OrdenResolver) Resolve(ctx context.Context, ordenes []models.Orden) []models.OrdenView {
	empresas := map[primitive.ObjectID]string{}
	unidades := map[primitive.ObjectID]string{}
	choferes := map[primitive.ObjectID]*models.Chofer{}
	playeros := map[primitive.ObjectID]string{}
	ubicaciones := map[primitive.ObjectID]string{}

	views := make([]models.OrdenView, 0, len(ordenes))
	for _, orden := range ordenes {
		view := models.OrdenView{Orden: orden}

		if nombre, ok := empresas[orden.EmpresaID]; ok {
			view.EmpresaNombre = nombre
		} else if empresa, err := r.Empresas.FindByID(ctx, orden.EmpresaID.Hex()); err == nil {
			empresas[orden.EmpresaID] = empresa.Nombre
			view.EmpresaNombre = empresa.Nombre
		}

		if matricula, ok := unidades[orden.UnidadID]; ok {
			view.UnidadMatricula = matricula
		} else if unidad, err := r.Unidades.FindByID(ctx, orden.UnidadID.Hex()); err == nil {
			unidades[orden.UnidadID] = unidad.Matricula
			view.UnidadMatricula = unidad.Matricula
		}

		if chofer, ok := choferes[orden.ChoferID]; ok {
			view.ChoferNombre = chofer.Nombre
			view.ChoferDocumento = chofer.Documento
		} else if chofer, err := r.Choferes.FindByID(ctx, orden.ChoferID.Hex()); err == nil {
			choferes[orden.ChoferID] = chofer
			view.ChoferNombre = chofer.Nombre
			view.ChoferDocumento = chofer.Documento
		}

		if orden.PlayeroID != nil {
			if nombre, ok := playeros[*orden.PlayeroID]; ok {
				view.PlayeroNombre = nombre
			} else if playero, err := r.Playeros.FindByID(ctx, orden.PlayeroID.Hex()); err == nil {
				playeros[*orden.PlayeroID] = playero.Nombre
				view.PlayeroNombre = playero.Nombre
			}
		}

		if orden.UbicacionID != nil {
			if nombre, ok := ubicaciones[*orden.UbicacionID]; ok {
				view.UbicacionNombre = nombre
			} else if ubicacion, err := r.Ubicaciones.FindByID(ctx, orden.UbicacionID.Hex()); err == nil {
				ubicaciones[*orden.UbicacionID] = ubicacion.Nombre
				view.UbicacionNombre = ubicacion.Nombre
			}
		}

		views = append(views, view)
	}
	return views
}
