package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/petrosur/ordenes/internal/apperr"
	"github.com/petrosur/ordenes/internal/auth"
	"github.com/petrosur/ordenes/internal/db"
	"github.com/petrosur/ordenes/internal/models"
	"github.com/petrosur/ordenes/internal/scope"
)

// EmpresaHandler handles company CRUD. Empresas are scoped by ownership:
// an empresa-role user only ever sees their own company.
type EmpresaHandler struct {
	store    *db.Store
	sessions *auth.SessionStore
}

// NewEmpresaHandler creates a new company handler.
func NewEmpresaHandler(store *db.Store, sessions *auth.SessionStore) *EmpresaHandler {
	return &EmpresaHandler{store: store, sessions: sessions}
}

// List returns all empresas for admins, or the caller's own one.
func (h *EmpresaHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	switch p.Rol {
	case models.RoleAdmin:
		empresas, err := h.store.Empresas.Find(c.Request.Context(), bson.M{})
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, empresas)
	case models.RoleEmpresa:
		if p.EmpresaID == "" {
			c.JSON(http.StatusOK, []models.Empresa{})
			return
		}
		empresa, err := h.store.Empresas.FindByID(c.Request.Context(), p.EmpresaID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, []models.Empresa{*empresa})
	default:
		respondErr(c, apperr.ErrForbidden)
	}
}

// Create registers a new empresa owned by the calling user. The user record
// and the live session are updated to point at it.
func (h *EmpresaHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if p.Rol != models.RoleAdmin && p.Rol != models.RoleEmpresa {
		respondErr(c, apperr.ErrForbidden)
		return
	}
	if p.Rol == models.RoleEmpresa && p.EmpresaID != "" {
		respondErr(c, apperr.Validation("el usuario ya tiene una empresa"))
		return
	}

	var empresa models.Empresa
	if err := c.ShouldBindJSON(&empresa); err != nil {
		respondErr(c, apperr.Validation("JSON invalido"))
		return
	}
	empresa.Normalize()
	if err := empresa.Validate(); err != nil {
		respondErr(c, err)
		return
	}

	if p.Rol == models.RoleEmpresa {
		user, err := h.store.Users.FindByID(c.Request.Context(), p.UserID)
		if err != nil {
			respondErr(c, err)
			return
		}
		empresa.UsuarioID = &user.ID
	}

	created, err := h.store.Empresas.Insert(c.Request.Context(), empresa)
	if err != nil {
		respondErr(c, err)
		return
	}

	if p.Rol == models.RoleEmpresa {
		user, err := h.store.Users.FindByID(c.Request.Context(), p.UserID)
		if err == nil {
			user.EmpresaID = &created.ID
			if _, err := h.store.Users.Update(c.Request.Context(), p.UserID, *user); err != nil {
				log.WithError(err).Warn("failed to bind empresa to user")
			}
		}
		p.EmpresaID = created.ID.Hex()
		if err := h.sessions.Save(c.Request, c.Writer, p); err != nil {
			log.WithError(err).Warn("failed to refresh session")
		}
	}

	c.JSON(http.StatusCreated, created)
}

// Get returns one empresa, admin or owner only.
func (h *EmpresaHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	empresa, err := h.store.Empresas.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if !scope.CanAccessEmpresa(p, empresa.ID) {
		// Scoped callers get an empty result, not someone else's record.
		respondErr(c, apperr.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, empresa)
}

// Update merges the supplied fields into the empresa.
func (h *EmpresaHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	empresa, err := h.store.Empresas.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if !scope.CanAccessEmpresa(p, empresa.ID) {
		respondErr(c, apperr.ErrNotFound)
		return
	}

	if err := c.ShouldBindJSON(empresa); err != nil {
		respondErr(c, apperr.Validation("JSON invalido"))
		return
	}
	empresa.Normalize()
	if err := empresa.Validate(); err != nil {
		respondErr(c, err)
		return
	}

	updated, err := h.store.Empresas.Update(c.Request.Context(), c.Param("id"), *empresa)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the empresa. Dependent records are not cascaded.
func (h *EmpresaHandler) Delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	empresa, err := h.store.Empresas.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if !scope.CanAccessEmpresa(p, empresa.ID) {
		respondErr(c, apperr.ErrNotFound)
		return
	}

	if err := h.store.Empresas.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "empresa eliminada"})
}
