package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/petrosur/ordenes/internal/apperr"
)

// EstadoOrden is the lifecycle status of a fuel order.
type EstadoOrden string

const (
	EstadoPendienteAutorizacion EstadoOrden = "PENDIENTE_AUTORIZACION"
	EstadoAutorizada            EstadoOrden = "AUTORIZADA"
	EstadoCargada               EstadoOrden = "CARGADA"
)

// Producto enumerates the fuel products.
type Producto string

const (
	ProductoGasoilG2     Producto = "GASOIL_G2"
	ProductoGasoilG3     Producto = "GASOIL_G3"
	ProductoNaftaSuper   Producto = "NAFTA_SUPER"
	ProductoNaftaPremium Producto = "NAFTA_PREMIUM"
)

// CondicionPago enumerates payment conditions.
type CondicionPago string

const (
	PagoCuentaCorriente CondicionPago = "CUENTA_CORRIENTE"
	PagoContado         CondicionPago = "CONTADO"
)

// Moneda enumerates the currencies accepted for viaticos.
type Moneda string

const (
	MonedaARS Moneda = "ARS"
	MonedaGS  Moneda = "GS"
	MonedaUSD Moneda = "USD"
	MonedaBRL Moneda = "BRL"
)

// Orden is a fuel order. References to unidad/chofer/playero/ubicacion are
// stored as ids only; list responses resolve them into an OrdenView.
type Orden struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	EmpresaID      primitive.ObjectID  `bson:"empresa_id" json:"empresaId"`
	UnidadID       primitive.ObjectID  `bson:"unidad_id" json:"unidadId"`
	ChoferID       primitive.ObjectID  `bson:"chofer_id" json:"choferId"`
	PlayeroID      *primitive.ObjectID `bson:"playero_id,omitempty" json:"playeroId,omitempty"`
	UbicacionID    *primitive.ObjectID `bson:"ubicacion_id,omitempty" json:"ubicacionId,omitempty"`
	Producto       Producto            `bson:"producto" json:"producto"`
	TanqueLleno    bool                `bson:"tanque_lleno,omitempty" json:"tanqueLleno,omitempty"`
	Litros         float64             `bson:"litros,omitempty" json:"litros,omitempty"`
	Monto          float64             `bson:"monto,omitempty" json:"monto,omitempty"`
	CondicionPago  CondicionPago       `bson:"condicion_pago" json:"condicionPago"`
	Viatico        float64             `bson:"viatico,omitempty" json:"viatico,omitempty"`
	ViaticoMoneda  Moneda              `bson:"viatico_moneda,omitempty" json:"viaticoMoneda,omitempty"`
	FechaEmision   time.Time           `bson:"fecha_emision" json:"fechaEmision"`
	FechaCarga     *time.Time          `bson:"fecha_carga,omitempty" json:"fechaCarga,omitempty"`
	LitrosCargados *float64            `bson:"litros_cargados,omitempty" json:"litrosCargados,omitempty"`
	Estado         EstadoOrden         `bson:"estado" json:"estado"`
	CreatedAt      time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time           `bson:"updated_at" json:"updatedAt"`
}

// OrdenView is an Orden enriched with display fields resolved from the
// referenced entities at the response boundary.
type OrdenView struct {
	Orden           `bson:",inline"`
	EmpresaNombre   string `json:"empresaNombre,omitempty"`
	UnidadMatricula string `json:"unidadMatricula,omitempty"`
	ChoferNombre    string `json:"choferNombre,omitempty"`
	ChoferDocumento string `json:"choferDocumento,omitempty"`
	PlayeroNombre   string `json:"playeroNombre,omitempty"`
	UbicacionNombre string `json:"ubicacionNombre,omitempty"`
}

// TransitionRequest is the body of PATCH /api/orders.
type TransitionRequest struct {
	ID             string      `json:"id"`
	Estado         EstadoOrden `json:"estado"`
	LitrosCargados float64     `json:"litrosCargados,omitempty"`
	UbicacionID    string      `json:"ubicacionId,omitempty"`
}

// IsValidProducto checks if a product code is valid.
func IsValidProducto(p Producto) bool {
	switch p {
	case ProductoGasoilG2, ProductoGasoilG3, ProductoNaftaSuper, ProductoNaftaPremium:
		return true
	default:
		return false
	}
}

// IsValidEstado checks if an order status is valid.
func IsValidEstado(e EstadoOrden) bool {
	switch e {
	case EstadoPendienteAutorizacion, EstadoAutorizada, EstadoCargada:
		return true
	default:
		return false
	}
}

// CanTransition reports whether moving from one state to another is legal.
// The lifecycle only moves forward: PENDIENTE_AUTORIZACION -> AUTORIZADA -> CARGADA.
func CanTransition(from, to EstadoOrden) bool {
	switch {
	case from == EstadoPendienteAutorizacion && to == EstadoAutorizada:
		return true
	case from == EstadoAutorizada && to == EstadoCargada:
		return true
	default:
		return false
	}
}

// ErrInvalidTransition builds the validation error for an illegal transition.
func ErrInvalidTransition(from, to EstadoOrden) error {
	return apperr.Validation("transicion de estado invalida: " + string(from) + " -> " + string(to))
}

// fillModeCount counts how many fill-mode fields are set.
func (o *Orden) fillModeCount() int {
	n := 0
	if o.TanqueLleno {
		n++
	}
	if o.Litros > 0 {
		n++
	}
	if o.Monto > 0 {
		n++
	}
	return n
}

// Normalize uppercases the enum-carrying string fields.
func (o *Orden) Normalize() {
	o.Producto = Producto(strings.ToUpper(strings.TrimSpace(string(o.Producto))))
	o.CondicionPago = CondicionPago(strings.ToUpper(strings.TrimSpace(string(o.CondicionPago))))
	o.ViaticoMoneda = Moneda(strings.ToUpper(strings.TrimSpace(string(o.ViaticoMoneda))))
}

// Validate checks the creation invariants: required references, a known
// product, and exactly one fill mode.
func (o *Orden) Validate() error {
	if o.EmpresaID.IsZero() {
		return apperr.Validation("falta la empresa de la orden")
	}
	if o.UnidadID.IsZero() {
		return apperr.Validation("falta la unidad de la orden")
	}
	if o.ChoferID.IsZero() {
		return apperr.Validation("falta el chofer de la orden")
	}
	if !IsValidProducto(o.Producto) {
		return apperr.Validation("producto invalido")
	}
	switch o.fillModeCount() {
	case 0:
		return apperr.Validation("debe indicar tanque lleno, litros o monto")
	case 1:
		// ok
	default:
		return apperr.Validation("tanque lleno, litros y monto son excluyentes")
	}
	if o.Litros < 0 || o.Monto < 0 || o.Viatico < 0 {
		return apperr.Validation("los importes no pueden ser negativos")
	}
	if o.Viatico > 0 {
		switch o.ViaticoMoneda {
		case MonedaARS, MonedaGS, MonedaUSD, MonedaBRL:
		default:
			return apperr.Validation("moneda de viatico invalida")
		}
	}
	return nil
}
