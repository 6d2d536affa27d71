package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despachos-api/internal/domain/entity"
	"github.com/jhoicas/Despachos-api/internal/domain/repository"
)

var _ repository.StockBalanceRepository = (*StockBalanceRepo)(nil)

// StockBalanceRepo implementa StockBalanceRepository sobre PostgreSQL.
type StockBalanceRepo struct {
	db Querier
}

// NewStockBalanceRepository construye el repositorio; acepta pool o tx.
func NewStockBalanceRepository(db Querier) *StockBalanceRepo {
	return &StockBalanceRepo{db: db}
}

const balanceColumns = `id, client_id, product_id, warehouse_id, quantity, last_updated`

// Get devuelve el saldo de la clave. Si la fila no existe devuelve un saldo en
// cero con la clave ya poblada: la ausencia de fila significa "nunca se movió
// nada", no un error.
func (r *StockBalanceRepo) Get(ctx context.Context, clientID, productID, warehouseID string) (*entity.StockBalance, error) {
	const q = `
		SELECT ` + balanceColumns + `
		FROM stock_balances
		WHERE client_id = $1 AND product_id = $2 AND warehouse_id = $3`
	return r.get(ctx, q, clientID, productID, warehouseID)
}

// GetForUpdate igual que Get pero con FOR UPDATE. Si la fila no existe no hay
// nada que bloquear: el Upsert posterior resuelve la carrera con ON CONFLICT.
func (r *StockBalanceRepo) GetForUpdate(ctx context.Context, clientID, productID, warehouseID string) (*entity.StockBalance, error) {
	const q = `
		SELECT ` + balanceColumns + `
		FROM stock_balances
		WHERE client_id = $1 AND product_id = $2 AND warehouse_id = $3
		FOR UPDATE`
	return r.get(ctx, q, clientID, productID, warehouseID)
}

func (r *StockBalanceRepo) get(ctx context.Context, q, clientID, productID, warehouseID string) (*entity.StockBalance, error) {
	var b entity.StockBalance
	err := r.db.QueryRow(ctx, q, clientID, productID, warehouseID).Scan(
		&b.ID, &b.ClientID, &b.ProductID, &b.WarehouseID, &b.Quantity, &b.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockBalance{
				ClientID:    clientID,
				ProductID:   productID,
				WarehouseID: warehouseID,
				Quantity:    decimal.Zero,
				LastUpdated: time.Now(),
			}, nil
		}
		return nil, fmt.Errorf("get stock_balance: %w", err)
	}
	return &b, nil
}

// Upsert inserta o actualiza el saldo de la clave.
func (r *StockBalanceRepo) Upsert(ctx context.Context, balance *entity.StockBalance) error {
	if balance.ID == "" {
		balance.ID = uuid.New().String()
	}
	const q = `
		INSERT INTO stock_balances (id, client_id, product_id, warehouse_id, quantity, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (client_id, product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, last_updated = EXCLUDED.last_updated`
	_, err := r.db.Exec(ctx, q,
		balance.ID, balance.ClientID, balance.ProductID, balance.WarehouseID,
		balance.Quantity, balance.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("upsert stock_balance: %w", err)
	}
	return nil
}

// ListByWarehouse lista los saldos de un almacén, mayor cantidad primero.
func (r *StockBalanceRepo) ListByWarehouse(ctx context.Context, warehouseID string, limit, offset int) ([]*entity.StockBalance, error) {
	const q = `
		SELECT ` + balanceColumns + `
		FROM stock_balances
		WHERE warehouse_id = $1
		ORDER BY quantity DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, q, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock_balances: %w", err)
	}
	defer rows.Close()

	var balances []*entity.StockBalance
	for rows.Next() {
		var b entity.StockBalance
		if err := rows.Scan(&b.ID, &b.ClientID, &b.ProductID, &b.WarehouseID, &b.Quantity, &b.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan stock_balance: %w", err)
		}
		balances = append(balances, &b)
	}
	return balances, rows.Err()
}
