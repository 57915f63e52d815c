package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petrosur/ordenes/internal/apperr"
	"github.com/petrosur/ordenes/internal/auth"
	"github.com/petrosur/ordenes/internal/config"
	"github.com/petrosur/ordenes/internal/db"
	"github.com/petrosur/ordenes/internal/models"
)

// stubUserCollection is a minimal in-memory UserCollection for seeding tests.
type stubUserCollection struct {
	byEmail  map[string]*models.User
	inserted []models.User
}

func (s *stubUserCollection) Insert(ctx context.Context, user models.User) (*models.User, error) {
	user.ID = primitive.NewObjectID()
	s.inserted = append(s.inserted, user)
	return &user, nil
}

func (s *stubUserCollection) FindByID(ctx context.Context, id string) (*models.User, error) {
	return nil, apperr.ErrNotFound
}

func (s *stubUserCollection) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := s.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperr.ErrNotFound
}

func (s *stubUserCollection) Update(ctx context.Context, id string, user models.User) (*models.User, error) {
	return &user, nil
}

func (s *stubUserCollection) UpdateLastLogin(ctx context.Context, id string) error {
	return nil
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewService("test-secret", time.Hour)
	sessions := auth.NewSessionStore("")
	return newRouter(&db.Store{Users: &stubUserCollection{}}, tokens, sessions)
}

func TestRouterRejectsAnonymous(t *testing.T) {
	router := testRouter()
	for _, path := range []string{"/api/orders", "/api/companies", "/api/vehicles", "/api/locations"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", path, w.Code)
		}
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router := testRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/nada", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestRouterLoginBadJSON(t *testing.T) {
	router := testRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{bad json"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSeedAdmin(t *testing.T) {
	users := &stubUserCollection{byEmail: map[string]*models.User{}}
	store := &db.Store{Users: users}
	tokens := auth.NewService("test-secret", time.Hour)
	cfg := &config.Config{AdminEmail: "admin@petrosur.com", AdminPassword: "secreto123"}

	if err := seedAdmin(context.Background(), cfg, store, tokens); err != nil {
		t.Fatalf("seedAdmin: %v", err)
	}
	if len(users.inserted) != 1 {
		t.Fatalf("expected 1 inserted user, got %d", len(users.inserted))
	}
	admin := users.inserted[0]
	if admin.Rol != models.RoleAdmin {
		t.Errorf("expected admin role, got %s", admin.Rol)
	}
	if admin.PasswordHash == "secreto123" || admin.PasswordHash == "" {
		t.Errorf("password was not hashed")
	}
}

func TestSeedAdminExisting(t *testing.T) {
	users := &stubUserCollection{byEmail: map[string]*models.User{
		"admin@petrosur.com": {ID: primitive.NewObjectID(), Email: "admin@petrosur.com", Rol: models.RoleAdmin},
	}}
	store := &db.Store{Users: users}
	tokens := auth.NewService("test-secret", time.Hour)
	cfg := &config.Config{AdminEmail: "admin@petrosur.com", AdminPassword: "secreto123"}

	if err := seedAdmin(context.Background(), cfg, store, tokens); err != nil {
		t.Fatalf("seedAdmin: %v", err)
	}
	if len(users.inserted) != 0 {
		t.Errorf("expected no insert for existing admin, got %d", len(users.inserted))
	}
}

func TestSeedAdminUnconfigured(t *testing.T) {
	users := &stubUserCollection{}
	store := &db.Store{Users: users}
	tokens := auth.NewService("test-secret", time.Hour)

	if err := seedAdmin(context.Background(), &config.Config{}, store, tokens); err != nil {
		t.Fatalf("seedAdmin: %v", err)
	}
	if len(users.inserted) != 0 {
		t.Errorf("expected no insert when unconfigured, got %d", len(users.inserted))
	}
}
