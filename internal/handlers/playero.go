package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/petrosur/ordenes/internal/apperr"
	"github.com/petrosur/ordenes/internal/db"
	"github.com/petrosur/ordenes/internal/models"
)

// PlayeroHandler handles yard-operator CRUD. Playeros are global records,
// not owned by any empresa; the routes are admin-gated.
type PlayeroHandler struct {
	store *db.Store
}

// NewPlayeroHandler creates a new operator handler.
func NewPlayeroHandler(store *db.Store) *PlayeroHandler {
	return &PlayeroHandler{store: store}
}

// List returns all playeros.
func (h *PlayeroHandler) List(c *gin.Context) {
	playeros, err := h.store.Playeros.Find(c.Request.Context(), bson.M{})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, playeros)
}

// Create registers a new playero.
func (h *PlayeroHandler) Create(c *gin.Context) {
	var playero models.Playero
	if err := c.ShouldBindJSON(&playero); err != nil {
		respondErr(c, apperr.Validation("JSON invalido"))
		return
	}
	playero.Normalize()
	if err := playero.Validate(); err != nil {
		respondErr(c, err)
		return
	}

	created, err := h.store.Playeros.Insert(c.Request.Context(), playero)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update merges the supplied fields into the playero.
func (h *PlayeroHandler) Update(c *gin.Context) {
	playero, err := h.store.Playeros.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}

	if err := c.ShouldBindJSON(playero); err != nil {
		respondErr(c, apperr.Validation("JSON invalido"))
		return
	}
	playero.Normalize()
	if err := playero.Validate(); err != nil {
		respondErr(c, err)
		return
	}

	updated, err := h.store.Playeros.Update(c.Request.Context(), c.Param("id"), *playero)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the playero. Ordenes it loaded keep the dangling id.
func (h *PlayeroHandler) Delete(c *gin.Context) {
	if err := h.store.Playeros.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "playero eliminado"})
}
