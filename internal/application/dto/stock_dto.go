package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DirectMovementRequest entrada o salida directa de stock (sin despacho).
type DirectMovementRequest struct {
	ClientID    string          `json:"client_id"`
	ProductID   string          `json:"product_id"`
	WarehouseID string          `json:"warehouse_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reference   string          `json:"reference"`
	Notes       string          `json:"notes"`
}

// BalanceResponse saldo de una clave (cliente, producto, almacén).
type BalanceResponse struct {
	ClientID    string          `json:"client_id"`
	ProductID   string          `json:"product_id"`
	WarehouseID string          `json:"warehouse_id"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// MovementResponse movimiento del log de auditoría.
type MovementResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	ProductID   string          `json:"product_id"`
	WarehouseID string          `json:"warehouse_id"`
	ClientID    string          `json:"client_id"`
	RotationID  *string         `json:"rotation_id,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reference   string          `json:"reference,omitempty"`
	OperatorID  string          `json:"operator_id"`
	CreatedAt   time.Time       `json:"created_at"`
	Notes       string          `json:"notes,omitempty"`
}
