package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despachos-api/internal/domain"
	"github.com/jhoicas/Despachos-api/internal/domain/entity"
	"github.com/jhoicas/Despachos-api/internal/domain/repository"
)

// RecordEntry inserta un movimiento de entrada y suma la cantidad al saldo de
// (cliente, producto, almacén), en los repositorios de la transacción del
// caller. Movimiento y ajuste de saldo persisten juntos o ninguno.
// Cantidad cero o negativa se rechaza como error de validación, no como
// movimiento sin efecto.
func RecordEntry(ctx context.Context, movRepo repository.StockMovementRepository, balanceRepo repository.StockBalanceRepository, movement *entity.StockMovement) error {
	movement.Type = entity.MovementTypeEntry
	if err := appendMovement(ctx, movRepo, movement); err != nil {
		return err
	}
	return Adjust(ctx, balanceRepo, movement.ClientID, movement.ProductID, movement.WarehouseID, movement.Quantity)
}

// RecordExit inserta un movimiento de salida y resta la cantidad del saldo.
func RecordExit(ctx context.Context, movRepo repository.StockMovementRepository, balanceRepo repository.StockBalanceRepository, movement *entity.StockMovement) error {
	movement.Type = entity.MovementTypeExit
	if err := appendMovement(ctx, movRepo, movement); err != nil {
		return err
	}
	return Adjust(ctx, balanceRepo, movement.ClientID, movement.ProductID, movement.WarehouseID, movement.Quantity.Neg())
}

// Adjust aplica delta al saldo de la clave, creando la fila en cero si no
// existe, y sella la fecha de actualización. Bloquea la fila antes de mutar.
// No valida no-negatividad: un sobre-débito deja saldo negativo por política.
func Adjust(ctx context.Context, balanceRepo repository.StockBalanceRepository, clientID, productID, warehouseID string, delta decimal.Decimal) error {
	balance, err := balanceRepo.GetForUpdate(ctx, clientID, productID, warehouseID)
	if err != nil {
		return err
	}
	balance.Quantity = balance.Quantity.Add(delta)
	balance.LastUpdated = time.Now()
	return balanceRepo.Upsert(ctx, balance)
}

func appendMovement(ctx context.Context, movRepo repository.StockMovementRepository, movement *entity.StockMovement) error {
	if !movement.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidQuantity
	}
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	if movement.CreatedAt.IsZero() {
		movement.CreatedAt = time.Now()
	}
	return movRepo.Create(ctx, movement)
}
