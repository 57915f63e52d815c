package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petrosur/ordenes/internal/middleware"
	"github.com/petrosur/ordenes/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// perform runs a single handler against a synthetic request. A non-nil
// principal is injected the way the auth middleware would.
func perform(t *testing.T, handler gin.HandlerFunc, p *models.Principal, method, target string, body interface{}, params ...gin.Param) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, rd)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	if p != nil {
		middleware.SetPrincipal(c, *p)
	}
	handler(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func adminPrincipal() *models.Principal {
	return &models.Principal{
		UserID: primitive.NewObjectID().Hex(),
		Nombre: "ADMIN",
		Rol:    models.RoleAdmin,
	}
}

func empresaPrincipal(empresaID primitive.ObjectID) *models.Principal {
	return &models.Principal{
		UserID:    primitive.NewObjectID().Hex(),
		Nombre:    "TRANSPORTES DEL SUR",
		Rol:       models.RoleEmpresa,
		EmpresaID: empresaID.Hex(),
	}
}

func playeroPrincipal() *models.Principal {
	return &models.Principal{
		UserID: primitive.NewObjectID().Hex(),
		Nombre: "PLAYERO TURNO NOCHE",
		Rol:    models.RolePlayero,
	}
}

func choferPrincipal(empresaID primitive.ObjectID) *models.Principal {
	return &models.Principal{
		UserID:    primitive.NewObjectID().Hex(),
		Nombre:    "CHOFER",
		Rol:       models.RoleChofer,
		EmpresaID: empresaID.Hex(),
	}
}
