package main

import (
	"context"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/petrosur/ordenes/internal/apperr"
	"github.com/petrosur/ordenes/internal/auth"
	"github.com/petrosur/ordenes/internal/config"
	"github.com/petrosur/ordenes/internal/db"
	"github.com/petrosur/ordenes/internal/handlers"
	"github.com/petrosur/ordenes/internal/middleware"
	"github.com/petrosur/ordenes/internal/models"
)

func main() {
	cfg := config.Load()

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)
	log.Info("connected to MongoDB")

	database := client.Database(cfg.MongoDB)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("failed to create indexes: %v", err)
	}
	store := db.NewStore(database)

	tokens := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	sessions := auth.NewSessionStore(cfg.SessionKey)

	if err := seedAdmin(ctx, cfg, store, tokens); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	router := newRouter(store, tokens, sessions)
	log.Infof("HTTP server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// newRouter builds the gin engine with every route mounted.
func newRouter(store *db.Store, tokens *auth.Service, sessions *auth.SessionStore) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	authMw := middleware.NewAuthMiddleware(sessions, tokens)
	limiter := middleware.NewRateLimitMiddleware()

	authHandler := handlers.NewAuthHandler(tokens, sessions, store)
	empresaHandler := handlers.NewEmpresaHandler(store, sessions)
	unidadHandler := handlers.NewUnidadHandler(store)
	choferHandler := handlers.NewChoferHandler(store)
	empleadoHandler := handlers.NewEmpleadoHandler(store)
	playeroHandler := handlers.NewPlayeroHandler(store)
	ubicacionHandler := handlers.NewUbicacionHandler(store)
	ordenHandler := handlers.NewOrdenHandler(store)

	api := router.Group("/api")

	api.POST("/auth/login", limiter.RateLimit(10, 60), authHandler.Login)
	api.POST("/auth/register", limiter.RateLimit(10, 60), authHandler.Register)

	authed := api.Group("", authMw.Authenticate())
	authed.POST("/auth/logout", authHandler.Logout)
	authed.GET("/auth/me", authHandler.Me)
	authed.PUT("/auth/password", authHandler.ChangePassword)

	authed.GET("/companies", empresaHandler.List)
	authed.POST("/companies", empresaHandler.Create)
	authed.GET("/companies/:id", empresaHandler.Get)
	authed.PUT("/companies/:id", empresaHandler.Update)
	authed.DELETE("/companies/:id", empresaHandler.Delete)

	authed.GET("/vehicles", unidadHandler.List)
	authed.POST("/vehicles", unidadHandler.Create)
	authed.PUT("/vehicles/:id", unidadHandler.Update)
	authed.PATCH("/vehicles/:id", unidadHandler.SetChofer)
	authed.DELETE("/vehicles/:id", unidadHandler.Delete)

	authed.GET("/drivers", choferHandler.List)
	authed.POST("/drivers", choferHandler.Create)
	authed.PUT("/drivers/:id", choferHandler.Update)
	authed.DELETE("/drivers/:id", choferHandler.Delete)

	authed.GET("/employees", empleadoHandler.List)
	authed.POST("/employees", empleadoHandler.Create)
	authed.PUT("/employees/:id", empleadoHandler.Update)
	authed.DELETE("/employees/:id", empleadoHandler.Delete)

	adminOnly := middleware.RequireRole(models.RoleAdmin)
	authed.GET("/operators", adminOnly, playeroHandler.List)
	authed.POST("/operators", adminOnly, playeroHandler.Create)
	authed.PUT("/operators/:id", adminOnly, playeroHandler.Update)
	authed.DELETE("/operators/:id", adminOnly, playeroHandler.Delete)

	authed.GET("/locations", ubicacionHandler.List)
	authed.POST("/locations", adminOnly, ubicacionHandler.Create)
	authed.PUT("/locations/:id", adminOnly, ubicacionHandler.Update)
	authed.DELETE("/locations/:id", adminOnly, ubicacionHandler.Delete)

	authed.GET("/orders", ordenHandler.List)
	authed.POST("/orders", ordenHandler.Create)
	authed.PATCH("/orders", ordenHandler.Transition)
	authed.PUT("/orders/:id", ordenHandler.Update)
	authed.DELETE("/orders/:id", ordenHandler.Delete)

	return router
}

// seedAdmin creates the initial admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are configured and no such user exists yet.
func seedAdmin(ctx context.Context, cfg *config.Config, store *db.Store, tokens *auth.Service) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}
	if _, err := store.Users.FindByEmail(ctx, cfg.AdminEmail); err == nil {
		return nil
	} else if err != apperr.ErrNotFound {
		return err
	}

	hash, err := tokens.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin := models.User{
		Nombre:       "Administrador",
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		Rol:          models.RoleAdmin,
	}
	admin.Normalize()
	if _, err := store.Users.Insert(ctx, admin); err != nil {
		return err
	}
	log.WithField("email", cfg.AdminEmail).Info("seeded admin user")
	return nil
}
