package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una rotación. delivered y missing son terminales.
const (
	RotationStatusInTransit = "in_transit"
	RotationStatusDelivered = "delivered"
	RotationStatusMissing   = "missing"
)

// Rotation es un viaje de camión contra un despacho. DeliveredQuantity y
// ArrivalTime se fijan juntos, exactamente una vez, al recibirla.
// Discrepancy = esperado − entregado; negativa si se entregó de más.
type Rotation struct {
	ID                string
	DispatchID        string
	DriverID          string
	RotationNumber    string
	ExpectedQuantity  decimal.Decimal
	DeliveredQuantity *decimal.Decimal
	Status            string
	DepartureTime     time.Time
	ArrivalTime       *time.Time
	Discrepancy       decimal.Decimal
	Notes             string
}

// Terminal indica si la rotación ya fue resuelta (recibida completa o con faltante).
func (r *Rotation) Terminal() bool {
	return r.Status == RotationStatusDelivered || r.Status == RotationStatusMissing
}
