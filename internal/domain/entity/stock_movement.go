package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeEntry    = "entry"    // entrada al almacén
	MovementTypeExit     = "exit"     // salida del almacén
	MovementTypeTransfer = "transfer" // entre almacenes
)

// StockMovement representa un ajuste atómico de saldo. Inmutable una vez creado:
// las correcciones se hacen con movimientos nuevos, nunca editando el historial.
// Quantity es siempre positiva; el signo lo da Type al plegar el log
// (saldo = Σ entradas − Σ salidas por clave cliente+producto+almacén).
type StockMovement struct {
	ID          string
	Type        string // entry, exit, transfer
	ProductID   string
	WarehouseID string
	ClientID    string
	RotationID  *string // nil para entradas/salidas directas sin rotación
	Quantity    decimal.Decimal
	Reference   string // número de rotación, bono de recepción, etc.
	OperatorID  string
	CreatedAt   time.Time
	Notes       string
}
