package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Driver representa un chofer de camión que ejecuta rotaciones.
type Driver struct {
	ID            string
	Name          string
	Phone         string
	LicenseNumber string
	TruckNumber   string
	TruckCapacity decimal.Decimal // toneladas
	CreatedAt     time.Time
}
