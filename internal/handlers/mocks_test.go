package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petrosur/ordenes/internal/db"
	"github.com/petrosur/ordenes/internal/models"
)

// MockUserCollection is a mock implementation of db.UserCollection.
type MockUserCollection struct {
	mock.Mock
}

func (m *MockUserCollection) Insert(ctx context.Context, user models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) Update(ctx context.Context, id string, user models.User) (*models.User, error) {
	args := m.Called(ctx, id, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) UpdateLastLogin(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEmpresaCollection is a mock implementation of db.EmpresaCollection.
type MockEmpresaCollection struct {
	mock.Mock
}

func (m *MockEmpresaCollection) Insert(ctx context.Context, empresa models.Empresa) (*models.Empresa, error) {
	args := m.Called(ctx, empresa)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Empresa), args.Error(1)
}

func (m *MockEmpresaCollection) FindByID(ctx context.Context, id string) (*models.Empresa, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Empresa), args.Error(1)
}

func (m *MockEmpresaCollection) Find(ctx context.Context, filter bson.M) ([]models.Empresa, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Empresa), args.Error(1)
}

func (m *MockEmpresaCollection) Update(ctx context.Context, id string, empresa models.Empresa) (*models.Empresa, error) {
	args := m.Called(ctx, id, empresa)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Empresa), args.Error(1)
}

func (m *MockEmpresaCollection) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUnidadCollection is a mock implementation of db.UnidadCollection.
type MockUnidadCollection struct {
	mock.Mock
}

func (m *MockUnidadCollection) Insert(ctx context.Context, unidad models.Unidad) (*models.Unidad, error) {
	args := m.Called(ctx, unidad)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Unidad), args.Error(1)
}

func (m *MockUnidadCollection) FindByID(ctx context.Context, id string) (*models.Unidad, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Unidad), args.Error(1)
}

func (m *MockUnidadCollection) Find(ctx context.Context, filter bson.M) ([]models.Unidad, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Unidad), args.Error(1)
}

func (m *MockUnidadCollection) Update(ctx context.Context, id string, unidad models.Unidad) (*models.Unidad, error) {
	args := m.Called(ctx, id, unidad)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Unidad), args.Error(1)
}

func (m *MockUnidadCollection) SetChofer(ctx context.Context, id string, choferID *primitive.ObjectID) (*models.Unidad, error) {
	args := m.Called(ctx, id, choferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Unidad), args.Error(1)
}

func (m *MockUnidadCollection) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockChoferCollection is a mock implementation of db.ChoferCollection.
type MockChoferCollection struct {
	mock.Mock
}

func (m *MockChoferCollection) Insert(ctx context.Context, chofer models.Chofer) (*models.Chofer, error) {
	args := m.Called(ctx, chofer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chofer), args.Error(1)
}

func (m *MockChoferCollection) FindByID(ctx context.Context, id string) (*models.Chofer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chofer), args.Error(1)
}

func (m *MockChoferCollection) FindByDocumento(ctx context.Context, documento string) (*models.Chofer, error) {
	args := m.Called(ctx, documento)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chofer), args.Error(1)
}

func (m *MockChoferCollection) Find(ctx context.Context, filter bson.M) ([]models.Chofer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Chofer), args.Error(1)
}

func (m *MockChoferCollection) Update(ctx context.Context, id string, chofer models.Chofer) (*models.Chofer, error) {
	args := m.Called(ctx, id, chofer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chofer), args.Error(1)
}

func (m *MockChoferCollection) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEmpleadoCollection is a mock implementation of db.EmpleadoCollection.
type MockEmpleadoCollection struct {
	mock.Mock
}

func (m *MockEmpleadoCollection) Insert(ctx context.Context, empleado models.Empleado) (*models.Empleado, error) {
	args := m.Called(ctx, empleado)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Empleado), args.Error(1)
}

func (m *MockEmpleadoCollection) FindByID(ctx context.Context, id string) (*models.Empleado, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Empleado), args.Error(1)
}

func (m *MockEmpleadoCollection) Find(ctx context.Context, filter bson.M) ([]models.Empleado, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Empleado), args.Error(1)
}

func (m *MockEmpleadoCollection) Update(ctx context.Context, id string, empleado models.Empleado) (*models.Empleado, error) {
	args := m.Called(ctx, id, empleado)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Empleado), args.Error(1)
}

func (m *MockEmpleadoCollection) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPlayeroCollection is a mock implementation of db.PlayeroCollection.
type MockPlayeroCollection struct {
	mock.Mock
}

func (m *MockPlayeroCollection) Insert(ctx context.Context, playero models.Playero) (*models.Playero, error) {
	args := m.Called(ctx, playero)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playero), args.Error(1)
}

func (m *MockPlayeroCollection) FindByID(ctx context.Context, id string) (*models.Playero, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playero), args.Error(1)
}

func (m *MockPlayeroCollection) FindByDocumento(ctx context.Context, documento string) (*models.Playero, error) {
	args := m.Called(ctx, documento)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playero), args.Error(1)
}

func (m *MockPlayeroCollection) Find(ctx context.Context, filter bson.M) ([]models.Playero, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Playero), args.Error(1)
}

func (m *MockPlayeroCollection) Update(ctx context.Context, id string, playero models.Playero) (*models.Playero, error) {
	args := m.Called(ctx, id, playero)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playero), args.Error(1)
}

func (m *MockPlayeroCollection) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUbicacionCollection is a mock implementation of db.UbicacionCollection.
type MockUbicacionCollection struct {
	mock.Mock
}

func (m *MockUbicacionCollection) Insert(ctx context.Context, ubicacion models.Ubicacion) (*models.Ubicacion, error) {
	args := m.Called(ctx, ubicacion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ubicacion), args.Error(1)
}

func (m *MockUbicacionCollection) FindByID(ctx context.Context, id string) (*models.Ubicacion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ubicacion), args.Error(1)
}

func (m *MockUbicacionCollection) Find(ctx context.Context, filter bson.M) ([]models.Ubicacion, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ubicacion), args.Error(1)
}

func (m *MockUbicacionCollection) Update(ctx context.Context, id string, ubicacion models.Ubicacion) (*models.Ubicacion, error) {
	args := m.Called(ctx, id, ubicacion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ubicacion), args.Error(1)
}

func (m *MockUbicacionCollection) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOrdenCollection is a mock implementation of db.OrdenCollection.
type MockOrdenCollection struct {
	mock.Mock
}

func (m *MockOrdenCollection) Insert(ctx context.Context, orden models.Orden) (*models.Orden, error) {
	args := m.Called(ctx, orden)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Orden), args.Error(1)
}

func (m *MockOrdenCollection) FindByID(ctx context.Context, id string) (*models.Orden, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Orden), args.Error(1)
}

func (m *MockOrdenCollection) Find(ctx context.Context, filter bson.M) ([]models.Orden, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Orden), args.Error(1)
}

func (m *MockOrdenCollection) Update(ctx context.Context, id string, orden models.Orden) (*models.Orden, error) {
	args := m.Called(ctx, id, orden)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Orden), args.Error(1)
}

func (m *MockOrdenCollection) Transition(ctx context.Context, req models.TransitionRequest, playeroID *primitive.ObjectID) (*models.Orden, error) {
	args := m.Called(ctx, req, playeroID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Orden), args.Error(1)
}

func (m *MockOrdenCollection) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockStore bundles fresh mocks into a db.Store for handler tests.
type mockStore struct {
	users       *MockUserCollection
	empresas    *MockEmpresaCollection
	unidades    *MockUnidadCollection
	choferes    *MockChoferCollection
	empleados   *MockEmpleadoCollection
	playeros    *MockPlayeroCollection
	ubicaciones *MockUbicacionCollection
	ordenes     *MockOrdenCollection
}

func newMockStore() (*mockStore, *db.Store) {
	m := &mockStore{
		users:       new(MockUserCollection),
		empresas:    new(MockEmpresaCollection),
		unidades:    new(MockUnidadCollection),
		choferes:    new(MockChoferCollection),
		empleados:   new(MockEmpleadoCollection),
		playeros:    new(MockPlayeroCollection),
		ubicaciones: new(MockUbicacionCollection),
		ordenes:     new(MockOrdenCollection),
	}
	store := &db.Store{
		Users:       m.users,
		Empresas:    m.empresas,
		Unidades:    m.unidades,
		Choferes:    m.choferes,
		Empleados:   m.empleados,
		Playeros:    m.playeros,
		Ubicaciones: m.ubicaciones,
		Ordenes:     m.ordenes,
	}
	return m, store
}
