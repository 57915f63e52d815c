package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petrosur/ordenes/internal/apperr"
	"github.com/petrosur/ordenes/internal/db"
	"github.com/petrosur/ordenes/internal/models"
	"github.com/petrosur/ordenes/internal/scope"
)

// ChoferHandler handles driver CRUD, scoped by empresa.
type ChoferHandler struct {
	store *db.Store
}

// NewChoferHandler creates a new driver handler.
func NewChoferHandler(store *db.Store) *ChoferHandler {
	return &ChoferHandler{store: store}
}

// List returns the choferes of the caller's empresa.
func (h *ChoferHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	filter, err := scope.EmpresaFilter(p, c.Query("empresaId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	choferes, err := h.store.Choferes.Find(c.Request.Context(), filter)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, choferes)
}

// Create registers a new chofer under the caller's empresa.
func (h *ChoferHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var chofer models.Chofer
	if err := c.ShouldBindJSON(&chofer); err != nil {
		respondErr(c, apperr.Validation("JSON invalido"))
		return
	}

	requested := ""
	if !chofer.EmpresaID.IsZero() {
		requested = chofer.EmpresaID.Hex()
	}
	empresaID, err := scope.OwnEmpresaID(p, requested)
	if err != nil {
		respondErr(c, err)
		return
	}
	chofer.EmpresaID = empresaID
	chofer.Normalize()
	if err := chofer.Validate(); err != nil {
		respondErr(c, err)
		return
	}

	created, err := h.store.Choferes.Insert(c.Request.Context(), chofer)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update merges the supplied fields into the chofer.
func (h *ChoferHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	chofer, err := h.store.Choferes.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if !scope.CanAccessEmpresa(p, chofer.EmpresaID) {
		respondErr(c, apperr.ErrNotFound)
		return
	}

	empresaID := chofer.EmpresaID
	if err := c.ShouldBindJSON(chofer); err != nil {
		respondErr(c, apperr.Validation("JSON invalido"))
		return
	}
	chofer.EmpresaID = empresaID
	chofer.Normalize()
	if err := chofer.Validate(); err != nil {
		respondErr(c, err)
		return
	}

	updated, err := h.store.Choferes.Update(c.Request.Context(), c.Param("id"), *chofer)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the chofer. Unidades and ordenes keep the dangling id.
func (h *ChoferHandler) Delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	chofer, err := h.store.Choferes.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if !scope.CanAccessEmpresa(p, chofer.EmpresaID) {
		respondErr(c, apperr.ErrNotFound)
		return
	}

	if err := h.store.Choferes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "chofer eliminado"})
}
