package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/petrosur/ordenes/internal/apperr"
	"github.com/petrosur/ordenes/internal/db"
	"github.com/petrosur/ordenes/internal/models"
)

// UbicacionHandler handles loading-location CRUD. Any authenticated caller
// may list; mutations are admin-gated at the router.
type UbicacionHandler struct {
	store *db.Store
}

// NewUbicacionHandler creates a new location handler.
func NewUbicacionHandler(store *db.Store) *UbicacionHandler {
	return &UbicacionHandler{store: store}
}

// List returns all ubicaciones.
func (h *UbicacionHandler) List(c *gin.Context) {
	ubicaciones, err := h.store.Ubicaciones.Find(c.Request.Context(), bson.M{})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ubicaciones)
}

// Create registers a new ubicacion. A duplicate nombre is a conflict.
func (h *UbicacionHandler) Create(c *gin.Context) {
	var ubicacion models.Ubicacion
	if err := c.ShouldBindJSON(&ubicacion); err != nil {
		respondErr(c, apperr.Validation("JSON invalido"))
		return
	}
	ubicacion.Normalize()
	if err := ubicacion.Validate(); err != nil {
		respondErr(c, err)
		return
	}

	created, err := h.store.Ubicaciones.Insert(c.Request.Context(), ubicacion)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update merges the supplied fields into the ubicacion.
func (h *UbicacionHandler) Update(c *gin.Context) {
	ubicacion, err := h.store.Ubicaciones.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}

	if err := c.ShouldBindJSON(ubicacion); err != nil {
		respondErr(c, apperr.Validation("JSON invalido"))
		return
	}
	ubicacion.Normalize()
	if err := ubicacion.Validate(); err != nil {
		respondErr(c, err)
		return
	}

	updated, err := h.store.Ubicaciones.Update(c.Request.Context(), c.Param("id"), *ubicacion)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the ubicacion. Ordenes and playeros keep the dangling id.
func (h *UbicacionHandler) Delete(c *gin.Context) {
	if err := h.store.Ubicaciones.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ubicacion eliminada"})
}
