package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDispatchRequest creación de un despacho.
type CreateDispatchRequest struct {
	ClientID               string          `json:"client_id"`
	ProductID              string          `json:"product_id"`
	SourceWarehouseID      string          `json:"source_warehouse_id"`
	DestinationWarehouseID string          `json:"destination_warehouse_id"`
	TotalQuantity          decimal.Decimal `json:"total_quantity"`
}

// DispatchResponse despacho serializado.
type DispatchResponse struct {
	ID                     string             `json:"id"`
	DispatchNumber         string             `json:"dispatch_number"`
	ManagerID              string             `json:"manager_id"`
	ClientID               string             `json:"client_id"`
	ProductID              string             `json:"product_id"`
	SourceWarehouseID      string             `json:"source_warehouse_id"`
	DestinationWarehouseID string             `json:"destination_warehouse_id"`
	TotalQuantity          decimal.Decimal    `json:"total_quantity"`
	Status                 string             `json:"status"`
	CreatedAt              time.Time          `json:"created_at"`
	CompletedAt            *time.Time         `json:"completed_at,omitempty"`
	Rotations              []RotationResponse `json:"rotations,omitempty"`
}

// AddRotationRequest alta de rotación contra un despacho.
type AddRotationRequest struct {
	DriverID         string          `json:"driver_id"`
	ExpectedQuantity decimal.Decimal `json:"expected_quantity"`
}

// RotationResponse rotación serializada.
type RotationResponse struct {
	ID                string           `json:"id"`
	DispatchID        string           `json:"dispatch_id"`
	DriverID          string           `json:"driver_id"`
	RotationNumber    string           `json:"rotation_number"`
	ExpectedQuantity  decimal.Decimal  `json:"expected_quantity"`
	DeliveredQuantity *decimal.Decimal `json:"delivered_quantity,omitempty"`
	Status            string           `json:"status"`
	DepartureTime     time.Time        `json:"departure_time"`
	ArrivalTime       *time.Time       `json:"arrival_time,omitempty"`
	Discrepancy       decimal.Decimal  `json:"discrepancy"`
	Notes             string           `json:"notes,omitempty"`
}

// ReceiveRotationRequest recepción de una rotación en destino.
type ReceiveRotationRequest struct {
	DeliveredQuantity decimal.Decimal `json:"delivered_quantity"`
	Notes             string          `json:"notes"`
}

// ReceiveRotationResponse resultado de la recepción.
type ReceiveRotationResponse struct {
	Rotation       RotationResponse `json:"rotation"`
	Discrepancy    decimal.Decimal  `json:"discrepancy"`
	DispatchStatus string           `json:"dispatch_status"`
}
