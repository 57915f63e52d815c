package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petrosur/ordenes/internal/apperr"
	"github.com/petrosur/ordenes/internal/auth"
	"github.com/petrosur/ordenes/internal/models"
)

func newEmpresaHandler() (*EmpresaHandler, *mockStore) {
	mocks, store := newMockStore()
	return NewEmpresaHandler(store, auth.NewSessionStore("")), mocks
}

func TestEmpresaListAdmin(t *testing.T) {
	h, mocks := newEmpresaHandler()

	empresas := []models.Empresa{
		{ID: primitive.NewObjectID(), Nombre: "TRANSPORTES DEL SUR"},
		{ID: primitive.NewObjectID(), Nombre: "FLETES NORTE"},
	}
	mocks.empresas.On("Find", mock.Anything, bson.M{}).Return(empresas, nil)

	w := perform(t, h.List, adminPrincipal(), http.MethodGet, "/api/companies", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []models.Empresa
	decode(t, w, &got)
	assert.Len(t, got, 2)
}

func TestEmpresaListOwnOnly(t *testing.T) {
	h, mocks := newEmpresaHandler()

	empresa := models.Empresa{ID: primitive.NewObjectID(), Nombre: "TRANSPORTES DEL SUR"}
	mocks.empresas.On("FindByID", mock.Anything, empresa.ID.Hex()).Return(&empresa, nil)

	w := perform(t, h.List, empresaPrincipal(empresa.ID), http.MethodGet, "/api/companies", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []models.Empresa
	decode(t, w, &got)
	assert.Len(t, got, 1)
	assert.Equal(t, empresa.ID, got[0].ID)
}

func TestEmpresaListWithoutEmpresa(t *testing.T) {
	h, _ := newEmpresaHandler()

	p := &models.Principal{UserID: primitive.NewObjectID().Hex(), Rol: models.RoleEmpresa}
	w := perform(t, h.List, p, http.MethodGet, "/api/companies", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []models.Empresa
	decode(t, w, &got)
	assert.Empty(t, got)
}

func TestEmpresaCreate(t *testing.T) {
	h, mocks := newEmpresaHandler()

	created := &models.Empresa{ID: primitive.NewObjectID(), Nombre: "TRANSPORTES DEL SUR", RucCuit: "20-12345678-9"}
	mocks.empresas.On("Insert", mock.Anything, mock.AnythingOfType("models.Empresa")).Return(created, nil)

	body := models.Empresa{Nombre: "Transportes del Sur", RucCuit: "20-12345678-9", Direccion: "Ruta 3 km 45", Telefono: "011-4555-0000"}
	w := perform(t, h.Create, adminPrincipal(), http.MethodPost, "/api/companies", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	mocks.empresas.AssertExpectations(t)
}

func TestEmpresaCreateMissingFields(t *testing.T) {
	h, _ := newEmpresaHandler()

	body := models.Empresa{Nombre: "Transportes del Sur"}
	w := perform(t, h.Create, adminPrincipal(), http.MethodPost, "/api/companies", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmpresaCreateDuplicateRucCuit(t *testing.T) {
	h, mocks := newEmpresaHandler()

	mocks.empresas.On("Insert", mock.Anything, mock.AnythingOfType("models.Empresa")).Return(nil, apperr.ErrConflict)

	body := models.Empresa{Nombre: "Transportes del Sur", RucCuit: "20-12345678-9", Direccion: "Ruta 3 km 45", Telefono: "011-4555-0000"}
	w := perform(t, h.Create, adminPrincipal(), http.MethodPost, "/api/companies", body)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestEmpresaCreateBindsOwner(t *testing.T) {
	h, mocks := newEmpresaHandler()

	userID := primitive.NewObjectID()
	user := &models.User{ID: userID, Rol: models.RoleEmpresa}
	created := &models.Empresa{ID: primitive.NewObjectID(), Nombre: "FLETES NORTE", UsuarioID: &userID}
	mocks.users.On("FindByID", mock.Anything, userID.Hex()).Return(user, nil)
	mocks.users.On("Update", mock.Anything, userID.Hex(), mock.AnythingOfType("models.User")).Return(user, nil)
	mocks.empresas.On("Insert", mock.Anything, mock.AnythingOfType("models.Empresa")).Return(created, nil)

	p := &models.Principal{UserID: userID.Hex(), Rol: models.RoleEmpresa}
	body := models.Empresa{Nombre: "Fletes Norte", RucCuit: "30-55555555-1", Direccion: "Av. Mitre 100", Telefono: "011-4555-1111"}
	w := perform(t, h.Create, p, http.MethodPost, "/api/companies", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	bound := mocks.users.Calls[len(mocks.users.Calls)-1].Arguments.Get(2).(models.User)
	assert.NotNil(t, bound.EmpresaID)
	assert.Equal(t, created.ID, *bound.EmpresaID)
}

func TestEmpresaCreateAlreadyOwned(t *testing.T) {
	h, _ := newEmpresaHandler()

	p := empresaPrincipal(primitive.NewObjectID())
	body := models.Empresa{Nombre: "Otra", RucCuit: "30-1", Direccion: "x", Telefono: "y"}
	w := perform(t, h.Create, p, http.MethodPost, "/api/companies", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmpresaGetForeign(t *testing.T) {
	h, mocks := newEmpresaHandler()

	foreign := models.Empresa{ID: primitive.NewObjectID(), Nombre: "AJENA"}
	mocks.empresas.On("FindByID", mock.Anything, foreign.ID.Hex()).Return(&foreign, nil)

	p := empresaPrincipal(primitive.NewObjectID())
	w := perform(t, h.Get, p, http.MethodGet, "/api/companies/"+foreign.ID.Hex(), nil,
		gin.Param{Key: "id", Value: foreign.ID.Hex()})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmpresaDelete(t *testing.T) {
	h, mocks := newEmpresaHandler()

	empresa := models.Empresa{ID: primitive.NewObjectID(), Nombre: "TRANSPORTES DEL SUR"}
	mocks.empresas.On("FindByID", mock.Anything, empresa.ID.Hex()).Return(&empresa, nil)
	mocks.empresas.On("Delete", mock.Anything, empresa.ID.Hex()).Return(nil)

	w := perform(t, h.Delete, adminPrincipal(), http.MethodDelete, "/api/companies/"+empresa.ID.Hex(), nil,
		gin.Param{Key: "id", Value: empresa.ID.Hex()})

	assert.Equal(t, http.StatusOK, w.Code)
	mocks.empresas.AssertExpectations(t)
}
