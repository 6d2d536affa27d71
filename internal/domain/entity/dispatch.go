package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un despacho.
const (
	DispatchStatusPending    = "pending"
	DispatchStatusInProgress = "in_progress"
	DispatchStatusCompleted  = "completed"
	DispatchStatusCancelled  = "cancelled"
)

// Dispatch es la intención de mover una cantidad total de un producto de un
// cliente entre dos almacenes, ejecutada en una o más rotaciones de camión.
// Invariante: la suma de ExpectedQuantity de sus rotaciones nunca supera
// TotalQuantity.
type Dispatch struct {
	ID                     string
	DispatchNumber         string
	ManagerID              string
	ClientID               string
	ProductID              string
	SourceWarehouseID      string
	DestinationWarehouseID string
	TotalQuantity          decimal.Decimal
	Status                 string
	// RotationSeq es el contador monótono por despacho que numera rotaciones.
	// No se reutiliza aunque se borren rotaciones anteriores.
	RotationSeq int
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// Active indica si el despacho acepta rotaciones nuevas.
func (d *Dispatch) Active() bool {
	return d.Status == DispatchStatusPending || d.Status == DispatchStatusInProgress
}
