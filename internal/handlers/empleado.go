package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petrosur/ordenes/internal/apperr"
	"github.com/petrosur/ordenes/internal/db"
	"github.com/petrosur/ordenes/internal/models"
	"github.com/petrosur/ordenes/internal/scope"
)

// EmpleadoHandler handles employee CRUD, scoped by empresa.
type EmpleadoHandler struct {
	store *db.Store
}

// NewEmpleadoHandler creates a new employee handler.
func NewEmpleadoHandler(store *db.Store) *EmpleadoHandler {
	return &EmpleadoHandler{store: store}
}

// List returns the empleados of the caller's empresa.
func (h *EmpleadoHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	filter, err := scope.EmpresaFilter(p, c.Query("empresaId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	empleados, err := h.store.Empleados.Find(c.Request.Context(), filter)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, empleados)
}

// Create registers a new empleado under the caller's empresa.
func (h *EmpleadoHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var empleado models.Empleado
	if err := c.ShouldBindJSON(&empleado); err != nil {
		respondErr(c, apperr.Validation("JSON invalido"))
		return
	}

	requested := ""
	if !empleado.EmpresaID.IsZero() {
		requested = empleado.EmpresaID.Hex()
	}
	empresaID, err := scope.OwnEmpresaID(p, requested)
	if err != nil {
		respondErr(c, err)
		return
	}
	empleado.EmpresaID = empresaID
	empleado.Normalize()
	if err := empleado.Validate(); err != nil {
		respondErr(c, err)
		return
	}

	created, err := h.store.Empleados.Insert(c.Request.Context(), empleado)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update merges the supplied fields into the empleado.
func (h *EmpleadoHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	empleado, err := h.store.Empleados.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if !scope.CanAccessEmpresa(p, empleado.EmpresaID) {
		respondErr(c, apperr.ErrNotFound)
		return
	}

	empresaID := empleado.EmpresaID
	if err := c.ShouldBindJSON(empleado); err != nil {
		respondErr(c, apperr.Validation("JSON invalido"))
		return
	}
	empleado.EmpresaID = empresaID
	empleado.Normalize()
	if err := empleado.Validate(); err != nil {
		respondErr(c, err)
		return
	}

	updated, err := h.store.Empleados.Update(c.Request.Context(), c.Param("id"), *empleado)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the empleado.
func (h *EmpleadoHandler) Delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	empleado, err := h.store.Empleados.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if !scope.CanAccessEmpresa(p, empleado.EmpresaID) {
		respondErr(c, apperr.ErrNotFound)
		return
	}

	if err := h.store.Empleados.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "empleado eliminado"})
}
