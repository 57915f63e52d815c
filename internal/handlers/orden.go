package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petrosur/ordenes/internal/apperr"
	"github.com/petrosur/ordenes/internal/db"
	"github.com/petrosur/ordenes/internal/models"
	"github.com/petrosur/ordenes/internal/scope"
)

// OrdenHandler handles fuel-order CRUD and lifecycle transitions.
type OrdenHandler struct {
	store    *db.Store
	resolver *db.OrdenResolver
}

// NewOrdenHandler creates a new order handler.
func NewOrdenHandler(store *db.Store) *OrdenHandler {
	return &OrdenHandler{store: store, resolver: db.NewOrdenResolver(store)}
}

// List returns the orders visible to the caller, enriched with the
// referenced display names. Admins see everything, empresas their own
// orders, choferes the orders assigned to them, and playeros the orders
// waiting to be loaded.
func (h *OrdenHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var filter bson.M
	switch p.Rol {
	case models.RoleAdmin, models.RoleEmpresa:
		var err error
		filter, err = scope.EmpresaFilter(p, c.Query("empresaId"))
		if err != nil {
			respondErr(c, err)
			return
		}
	case models.RoleChofer:
		oid, err := primitive.ObjectIDFromHex(p.UserID)
		if err != nil {
			respondErr(c, apperr.ErrForbidden)
			return
		}
		filter = bson.M{"chofer_id": oid}
	case models.RolePlayero:
		filter = bson.M{"estado": models.EstadoAutorizada}
	default:
		respondErr(c, apperr.ErrForbidden)
		return
	}

	ordenes, err := h.store.Ordenes.Find(c.Request.Context(), filter)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, h.resolver.Resolve(c.Request.Context(), ordenes))
}

// Create registers a new fuel order in PENDIENTE_AUTORIZACION. The unidad
// and chofer must belong to the order's empresa.
func (h *OrdenHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if p.Rol != models.RoleAdmin && p.Rol != models.RoleEmpresa {
		respondErr(c, apperr.ErrForbidden)
		return
	}

	var orden models.Orden
	if err := c.ShouldBindJSON(&orden); err != nil {
		respondErr(c, apperr.Validation("JSON invalido"))
		return
	}

	requested := ""
	if !orden.EmpresaID.IsZero() {
		requested = orden.EmpresaID.Hex()
	}
	empresaID, err := scope.OwnEmpresaID(p, requested)
	if err != nil {
		respondErr(c, err)
		return
	}
	orden.EmpresaID = empresaID
	orden.Normalize()
	if err := orden.Validate(); err != nil {
		respondErr(c, err)
		return
	}

	unidad, err := h.store.Unidades.FindByID(c.Request.Context(), orden.UnidadID.Hex())
	if err != nil {
		respondErr(c, err)
		return
	}
	if unidad.EmpresaID != orden.EmpresaID {
		respondErr(c, apperr.Validation("la unidad pertenece a otra empresa"))
		return
	}
	chofer, err := h.store.Choferes.FindByID(c.Request.Context(), orden.ChoferID.Hex())
	if err != nil {
		respondErr(c, err)
		return
	}
	if chofer.EmpresaID != orden.EmpresaID {
		respondErr(c, apperr.Validation("el chofer pertenece a otra empresa"))
		return
	}

	created, err := h.store.Ordenes.Insert(c.Request.Context(), orden)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update merges the supplied fields into the order. Estado and load fields
// never change here; that is Transition's job.
func (h *OrdenHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	orden, err := h.store.Ordenes.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if !scope.CanAccessEmpresa(p, orden.EmpresaID) {
		respondErr(c, apperr.ErrNotFound)
		return
	}

	empresaID := orden.EmpresaID
	if err := c.ShouldBindJSON(orden); err != nil {
		respondErr(c, apperr.Validation("JSON invalido"))
		return
	}
	orden.EmpresaID = empresaID
	orden.Normalize()
	if err := orden.Validate(); err != nil {
		respondErr(c, err)
		return
	}

	updated, err := h.store.Ordenes.Update(c.Request.Context(), c.Param("id"), *orden)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Transition advances an order through its lifecycle. Authorization is an
// admin action; completing the load is a playero action.
func (h *OrdenHandler) Transition(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req models.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, apperr.Validation("JSON invalido"))
		return
	}
	if req.ID == "" {
		respondErr(c, apperr.Validation("falta el id de la orden"))
		return
	}

	var playeroID *primitive.ObjectID
	switch req.Estado {
	case models.EstadoAutorizada:
		if p.Rol != models.RoleAdmin {
			respondErr(c, apperr.ErrForbidden)
			return
		}
	case models.EstadoCargada:
		switch p.Rol {
		case models.RolePlayero:
			oid, err := primitive.ObjectIDFromHex(p.UserID)
			if err != nil {
				respondErr(c, apperr.ErrForbidden)
				return
			}
			playeroID = &oid
		case models.RoleAdmin:
			// Admin may close a load without stamping a playero.
		default:
			respondErr(c, apperr.ErrForbidden)
			return
		}
	default:
		respondErr(c, apperr.Validation("estado invalido"))
		return
	}

	orden, err := h.store.Ordenes.Transition(c.Request.Context(), req, playeroID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, orden)
}

// Delete removes the order.
func (h *OrdenHandler) Delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	orden, err := h.store.Ordenes.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if !scope.CanAccessEmpresa(p, orden.EmpresaID) {
		respondErr(c, apperr.ErrNotFound)
		return
	}

	if err := h.store.Ordenes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "orden eliminada"})
}
