package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Warehouse representa un almacén donde se deposita mercancía.
type Warehouse struct {
	ID        string
	Name      string
	Code      string
	Location  string
	Capacity  decimal.Decimal // capacidad nominal en toneladas
	CreatedAt time.Time
}
