package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petrosur/ordenes/internal/apperr"
)

// Role represents user roles in the system
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleEmpresa Role = "empresa"
	RoleChofer  Role = "chofer"
	RolePlayero Role = "playero"
)

// User represents an account that logs in with email and password.
// Choferes and playeros authenticate by documento and have no User record.
type User struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Nombre       string              `bson:"nombre" json:"nombre"`
	Email        string              `bson:"email" json:"email"`
	PasswordHash string              `bson:"password_hash" json:"-"`
	Rol          Role                `bson:"rol" json:"rol"`
	EmpresaID    *primitive.ObjectID `bson:"empresa_id,omitempty" json:"empresaId,omitempty"`
	LastLogin    *time.Time          `bson:"last_login,omitempty" json:"lastLogin,omitempty"`
	CreatedAt    time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updatedAt"`
}

// LoginRequest carries either email+password (admin|empresa) or a bare
// documento (chofer|playero).
type LoginRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Documento string `json:"documento"`
}

// RegisterRequest creates an empresa-role user.
type RegisterRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login. Token is a bearer
// alternative to the session cookie for non-browser clients.
type LoginResponse struct {
	Token string    `json:"token"`
	User  Principal `json:"user"`
}

// Principal is the authenticated identity attached to every request.
type Principal struct {
	UserID    string `json:"userId"`
	Nombre    string `json:"nombre"`
	Rol       Role   `json:"rol"`
	EmpresaID string `json:"empresaId,omitempty"`
}

// IsValidRole checks if a role is valid
func IsValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleEmpresa, RoleChofer, RolePlayero:
		return true
	default:
		return false
	}
}

// Normalize trims whitespace and lowercases the email.
func (u *User) Normalize() {
	u.Nombre = strings.TrimSpace(u.Nombre)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
}

// Validate checks required fields.
func (u *User) Validate() error {
	if u.Nombre == "" {
		return apperr.Validation("falta el nombre del usuario")
	}
	if u.Email == "" {
		return apperr.Validation("falta el email")
	}
	if !strings.Contains(u.Email, "@") || !strings.Contains(u.Email, ".") {
		return apperr.Validation("email invalido")
	}
	if u.Rol != RoleAdmin && u.Rol != RoleEmpresa {
		return apperr.Validation("rol invalido")
	}
	return nil
}
