package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/petrosur/ordenes/internal/models"
)

var (
	ErrInvalidToken       = errors.New("token invalido")
	ErrExpiredToken       = errors.New("token expirado")
	ErrInvalidCredentials = errors.New("credenciales invalidas")
)

// Service handles password hashing and bearer tokens.
type Service struct {
	jwtSecret []byte
	tokenExp  time.Duration
}

// NewService creates a new authentication service.
func NewService(secret string, tokenExp time.Duration) *Service {
	return &Service{
		jwtSecret: []byte(secret),
		tokenExp:  tokenExp,
	}
}

// HashPassword hashes a password using bcrypt
func (s *Service) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword checks if a password matches a hash
func (s *Service) CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken generates a bearer token for a principal.
func (s *Service) GenerateToken(p models.Principal) (string, error) {
	claims := jwt.MapClaims{
		"user_id": p.UserID,
		"nombre":  p.Nombre,
		"rol":     string(p.Rol),
		"exp":     time.Now().Add(s.tokenExp).Unix(),
		"iat":     time.Now().Unix(),
	}
	if p.EmpresaID != "" {
		claims["empresa_id"] = p.EmpresaID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken validates a bearer token and rebuilds the principal.
func (s *Service) ValidateToken(tokenString string) (*models.Principal, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	nombre, ok := claims["nombre"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	rolStr, ok := claims["rol"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	rol := models.Role(rolStr)
	if !models.IsValidRole(rol) {
		return nil, ErrInvalidToken
	}

	p := &models.Principal{
		UserID: userID,
		Nombre: nombre,
		Rol:    rol,
	}
	if empresaID, ok := claims["empresa_id"].(string); ok {
		p.EmpresaID = empresaID
	}
	return p, nil
}

// ExtractTokenFromHeader extracts token from Authorization header
func (s *Service) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidToken
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrInvalidToken
	}
	return parts[1], nil
}

// ValidatePassword validates password strength
func (s *Service) ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("la contrasena debe tener al menos 8 caracteres")
	}
	return nil
}
