package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petrosur/ordenes/internal/apperr"
	"github.com/petrosur/ordenes/internal/db"
	"github.com/petrosur/ordenes/internal/models"
	"github.com/petrosur/ordenes/internal/scope"
)

// UnidadHandler handles vehicle CRUD, scoped by empresa.
type UnidadHandler struct {
	store *db.Store
}

// NewUnidadHandler creates a new vehicle handler.
func NewUnidadHandler(store *db.Store) *UnidadHandler {
	return &UnidadHandler{store: store}
}

// List returns the unidades of the caller's empresa; admins may list all or
// filter with the empresaId query parameter.
func (h *UnidadHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	filter, err := scope.EmpresaFilter(p, c.Query("empresaId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	unidades, err := h.store.Unidades.Find(c.Request.Context(), filter)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, unidades)
}

// Create registers a new unidad under the caller's empresa.
func (h *UnidadHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var unidad models.Unidad
	if err := c.ShouldBindJSON(&unidad); err != nil {
		respondErr(c, apperr.Validation("JSON invalido"))
		return
	}

	requested := ""
	if !unidad.EmpresaID.IsZero() {
		requested = unidad.EmpresaID.Hex()
	}
	empresaID, err := scope.OwnEmpresaID(p, requested)
	if err != nil {
		respondErr(c, err)
		return
	}
	unidad.EmpresaID = empresaID
	unidad.Normalize()
	if err := unidad.Validate(); err != nil {
		respondErr(c, err)
		return
	}

	created, err := h.store.Unidades.Insert(c.Request.Context(), unidad)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update merges the supplied fields into the unidad.
func (h *UnidadHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	unidad, err := h.store.Unidades.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if !scope.CanAccessEmpresa(p, unidad.EmpresaID) {
		respondErr(c, apperr.ErrNotFound)
		return
	}

	empresaID := unidad.EmpresaID
	if err := c.ShouldBindJSON(unidad); err != nil {
		respondErr(c, apperr.Validation("JSON invalido"))
		return
	}
	// Ownership does not move on update.
	unidad.EmpresaID = empresaID
	unidad.Normalize()
	if err := unidad.Validate(); err != nil {
		respondErr(c, err)
		return
	}

	updated, err := h.store.Unidades.Update(c.Request.Context(), c.Param("id"), *unidad)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetChofer attaches or detaches the unidad's chofer. An empty choferId in
// the body detaches.
func (h *UnidadHandler) SetChofer(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	unidad, err := h.store.Unidades.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if !scope.CanAccessEmpresa(p, unidad.EmpresaID) {
		respondErr(c, apperr.ErrNotFound)
		return
	}

	var req struct {
		ChoferID string `json:"choferId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, apperr.Validation("JSON invalido"))
		return
	}

	var choferID *primitive.ObjectID
	if req.ChoferID != "" {
		chofer, err := h.store.Choferes.FindByID(c.Request.Context(), req.ChoferID)
		if err != nil {
			respondErr(c, err)
			return
		}
		if chofer.EmpresaID != unidad.EmpresaID {
			respondErr(c, apperr.Validation("el chofer pertenece a otra empresa"))
			return
		}
		choferID = &chofer.ID
	}

	updated, err := h.store.Unidades.SetChofer(c.Request.Context(), c.Param("id"), choferID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the unidad. Orders referencing it are left untouched.
func (h *UnidadHandler) Delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	unidad, err := h.store.Unidades.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if !scope.CanAccessEmpresa(p, unidad.EmpresaID) {
		respondErr(c, apperr.ErrNotFound)
		return
	}

	if err := h.store.Unidades.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "unidad eliminada"})
}
