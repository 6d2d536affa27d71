package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despachos-api/internal/domain/entity"
	"github.com/jhoicas/Despachos-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementa StockMovementRepository sobre PostgreSQL.
// La tabla es append-only: no hay UPDATE ni DELETE.
type StockMovementRepo struct {
	db Querier
}

// NewStockMovementRepository construye el repositorio; acepta pool o tx.
func NewStockMovementRepository(db Querier) *StockMovementRepo {
	return &StockMovementRepo{db: db}
}

const movementColumns = `id, type, product_id, warehouse_id, client_id, rotation_id, quantity, reference, operator_id, created_at, notes`

func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	const q = `
		INSERT INTO stock_movements
			(` + movementColumns + `)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, q,
		m.ID, m.Type, m.ProductID, m.WarehouseID, m.ClientID,
		m.RotationID, m.Quantity, m.Reference, m.OperatorID, m.CreatedAt, m.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert stock_movement: %w", err)
	}
	return nil
}

func (r *StockMovementRepo) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	const q = `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	m, err := scanMovement(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock_movement by id: %w", err)
	}
	return m, nil
}

// ListByKey devuelve los movimientos de la clave en orden cronológico
// ascendente: re-aplicarlos en este orden reproduce el saldo.
func (r *StockMovementRepo) ListByKey(ctx context.Context, clientID, productID, warehouseID string) ([]*entity.StockMovement, error) {
	const q = `
		SELECT ` + movementColumns + `
		FROM stock_movements
		WHERE client_id = $1 AND product_id = $2 AND warehouse_id = $3
		ORDER BY created_at ASC, id ASC`
	rows, err := r.db.Query(ctx, q, clientID, productID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list stock_movements by key: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

func (r *StockMovementRepo) ListByOperator(ctx context.Context, operatorID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	const q = `
		SELECT ` + movementColumns + `
		FROM stock_movements
		WHERE operator_id = $1
		  AND ($2::timestamptz IS NULL OR created_at >= $2)
		  AND ($3::timestamptz IS NULL OR created_at <= $3)
		ORDER BY created_at DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.db.Query(ctx, q, operatorID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock_movements by operator: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

func (r *StockMovementRepo) SumByOperatorAndType(ctx context.Context, operatorID, movementType string, since time.Time) (decimal.Decimal, error) {
	const q = `
		SELECT COALESCE(SUM(quantity), 0)
		FROM stock_movements
		WHERE operator_id = $1 AND type = $2 AND created_at >= $3`
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, q, operatorID, movementType, since).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum stock_movements: %w", err)
	}
	return sum, nil
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	err := row.Scan(
		&m.ID, &m.Type, &m.ProductID, &m.WarehouseID, &m.ClientID,
		&m.RotationID, &m.Quantity, &m.Reference, &m.OperatorID, &m.CreatedAt, &m.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var movements []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock_movement: %w", err)
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
