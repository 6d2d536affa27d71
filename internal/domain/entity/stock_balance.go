package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBalance es el saldo actual de un (cliente, producto, almacén).
// Fila única por clave, creada de forma perezosa con el primer movimiento y
// nunca borrada. Es estado derivado: re-aplicar los movimientos de la clave
// en orden debe reproducirla exactamente.
// El saldo puede quedar negativo: el libro no rechaza sobre-débitos (decisión
// de negocio, no un bug).
type StockBalance struct {
	ID          string
	ClientID    string
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal
	LastUpdated time.Time
}
