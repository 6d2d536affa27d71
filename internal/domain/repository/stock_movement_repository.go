package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despachos-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia del log de
// movimientos. Solo inserta y consulta: el log es append-only, sin Update ni
// Delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	GetByID(ctx context.Context, id string) (*entity.StockMovement, error)
	// ListByKey lista los movimientos de una clave (cliente, producto, almacén)
	// en orden cronológico ascendente, el orden de replay del saldo.
	ListByKey(ctx context.Context, clientID, productID, warehouseID string) ([]*entity.StockMovement, error)
	// ListByOperator lista movimientos de un operador en un rango de fechas,
	// más reciente primero.
	ListByOperator(ctx context.Context, operatorID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	// SumByOperatorAndType suma las cantidades de un tipo de movimiento de un
	// operador desde una fecha (totales del tablero diario).
	SumByOperatorAndType(ctx context.Context, operatorID, movementType string, since time.Time) (decimal.Decimal, error)
}
