package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/petrosur/ordenes/internal/apperr"
	"github.com/petrosur/ordenes/internal/auth"
	"github.com/petrosur/ordenes/internal/db"
	"github.com/petrosur/ordenes/internal/models"
)

// AuthHandler handles login, logout and account management.
type AuthHandler struct {
	tokens   *auth.Service
	sessions *auth.SessionStore
	store    *db.Store
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(tokens *auth.Service, sessions *auth.SessionStore, store *db.Store) *AuthHandler {
	return &AuthHandler{
		tokens:   tokens,
		sessions: sessions,
		store:    store,
	}
}

// Login authenticates by email+password (admin|empresa) or by documento
// (chofer|playero), starts a session and returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, apperr.Validation("JSON invalido"))
		return
	}

	var p *models.Principal
	var err error
	switch {
	case req.Documento != "":
		p, err = h.loginByDocumento(c, req.Documento)
	case req.Email != "" && req.Password != "":
		p, err = h.loginByEmail(c, req.Email, req.Password)
	default:
		err = apperr.Validation("faltan las credenciales")
	}
	if err != nil {
		respondErr(c, err)
		return
	}

	token, err := h.tokens.GenerateToken(*p)
	if err != nil {
		respondErr(c, err)
		return
	}
	if err := h.sessions.Save(c.Request, c.Writer, *p); err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token, User: *p})
}

func (h *AuthHandler) loginByEmail(c *gin.Context, email, password string) (*models.Principal, error) {
	user, err := h.store.Users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		// Do not reveal whether the email exists.
		return nil, apperr.ErrUnauthorized
	}
	if !h.tokens.CheckPassword(password, user.PasswordHash) {
		return nil, apperr.ErrUnauthorized
	}

	if err := h.store.Users.UpdateLastLogin(c.Request.Context(), user.ID.Hex()); err != nil {
		log.WithError(err).Warn("failed to update last login")
	}

	p := models.Principal{
		UserID: user.ID.Hex(),
		Nombre: user.Nombre,
		Rol:    user.Rol,
	}
	if user.EmpresaID != nil {
		p.EmpresaID = user.EmpresaID.Hex()
	}
	return &p, nil
}

func (h *AuthHandler) loginByDocumento(c *gin.Context, documento string) (*models.Principal, error) {
	if chofer, err := h.store.Choferes.FindByDocumento(c.Request.Context(), documento); err == nil {
		return &models.Principal{
			UserID:    chofer.ID.Hex(),
			Nombre:    chofer.Nombre,
			Rol:       models.RoleChofer,
			EmpresaID: chofer.EmpresaID.Hex(),
		}, nil
	}
	if playero, err := h.store.Playeros.FindByDocumento(c.Request.Context(), documento); err == nil {
		return &models.Principal{
			UserID: playero.ID.Hex(),
			Nombre: playero.Nombre,
			Rol:    models.RolePlayero,
		}, nil
	}
	return nil, apperr.ErrUnauthorized
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Clear(c.Request, c.Writer); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "sesion cerrada"})
}

// Me returns the current principal.
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, p)
}

// Register creates an empresa-role user account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, apperr.Validation("JSON invalido"))
		return
	}

	user := models.User{
		Nombre: req.Nombre,
		Email:  req.Email,
		Rol:    models.RoleEmpresa,
	}
	user.Normalize()
	if err := user.Validate(); err != nil {
		respondErr(c, err)
		return
	}
	if err := h.tokens.ValidatePassword(req.Password); err != nil {
		respondErr(c, apperr.Validation(err.Error()))
		return
	}

	hash, err := h.tokens.HashPassword(req.Password)
	if err != nil {
		respondErr(c, err)
		return
	}
	user.PasswordHash = hash

	created, err := h.store.Users.Insert(c.Request.Context(), user)
	if err != nil {
		respondErr(c, err)
		return
	}

	p := models.Principal{UserID: created.ID.Hex(), Nombre: created.Nombre, Rol: created.Rol}
	token, err := h.tokens.GenerateToken(p)
	if err != nil {
		respondErr(c, err)
		return
	}
	if err := h.sessions.Save(c.Request, c.Writer, p); err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.LoginResponse{Token: token, User: p})
}

// ChangePassword changes the current user's password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if p.Rol != models.RoleAdmin && p.Rol != models.RoleEmpresa {
		respondErr(c, apperr.ErrForbidden)
		return
	}

	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, apperr.Validation("JSON invalido"))
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		respondErr(c, apperr.Validation("faltan las contrasenas"))
		return
	}
	if err := h.tokens.ValidatePassword(req.NewPassword); err != nil {
		respondErr(c, apperr.Validation(err.Error()))
		return
	}

	user, err := h.store.Users.FindByID(c.Request.Context(), p.UserID)
	if err != nil {
		respondErr(c, err)
		return
	}
	if !h.tokens.CheckPassword(req.CurrentPassword, user.PasswordHash) {
		respondErr(c, apperr.ErrUnauthorized)
		return
	}

	hash, err := h.tokens.HashPassword(req.NewPassword)
	if err != nil {
		respondErr(c, err)
		return
	}
	user.PasswordHash = hash
	if _, err := h.store.Users.Update(c.Request.Context(), p.UserID, *user); err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "contrasena actualizada"})
}
