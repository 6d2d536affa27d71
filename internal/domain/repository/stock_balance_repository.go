package repository

import (
	"context"

	"github.com/jhoicas/Despachos-api/internal/domain/entity"
)

// StockBalanceRepository define el puerto para consultar/actualizar el saldo
// por (cliente, producto, almacén). Las mutaciones ocurren siempre dentro de
// la misma transacción que el movimiento que las origina.
type StockBalanceRepository interface {
	// Get devuelve el saldo de la clave; si no existe fila devuelve un saldo
	// en cero (la ausencia no es error).
	Get(ctx context.Context, clientID, productID, warehouseID string) (*entity.StockBalance, error)
	// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, clientID, productID, warehouseID string) (*entity.StockBalance, error)
	// Upsert inserta o actualiza la cantidad del saldo para la clave.
	Upsert(ctx context.Context, balance *entity.StockBalance) error
	// ListByWarehouse lista los saldos de un almacén.
	ListByWarehouse(ctx context.Context, warehouseID string, limit, offset int) ([]*entity.StockBalance, error)
}
