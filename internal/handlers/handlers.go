// Package handlers contains the HTTP handlers for every entity and for
// authentication. Handlers bind JSON, normalize and validate through the
// model contracts, apply company scoping, and map store errors onto HTTP
// statuses.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/petrosur/ordenes/internal/apperr"
	"github.com/petrosur/ordenes/internal/middleware"
	"github.com/petrosur/ordenes/internal/models"
)

// respondErr writes the error as {"error": msg} with its mapped status.
// Internal failures are logged and masked.
func respondErr(c *gin.Context, err error) {
	status := apperr.Status(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("store failure")
		msg = "error interno"
	}
	c.JSON(status, gin.H{"error": msg})
}

// principal fetches the authenticated principal or aborts with 401.
func principal(c *gin.Context) (models.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no autenticado"})
	}
	return p, ok
}
