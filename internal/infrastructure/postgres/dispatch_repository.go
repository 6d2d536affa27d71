package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Despachos-api/internal/domain"
	"github.com/jhoicas/Despachos-api/internal/domain/entity"
	"github.com/jhoicas/Despachos-api/internal/domain/repository"
)

var _ repository.DispatchRepository = (*DispatchRepo)(nil)

// DispatchRepo implementa DispatchRepository sobre PostgreSQL.
type DispatchRepo struct {
	db Querier
}

// NewDispatchRepository construye el repositorio; acepta pool o tx.
func NewDispatchRepository(db Querier) *DispatchRepo {
	return &DispatchRepo{db: db}
}

const dispatchColumns = `id, dispatch_number, manager_id, client_id, product_id,
		source_warehouse_id, destination_warehouse_id, total_quantity, status,
		rotation_seq, created_at, completed_at`

// Create inserta el despacho. Una colisión del número único se reporta como
// domain.ErrDuplicate para que el caso de uso reintente con otro número.
func (r *DispatchRepo) Create(ctx context.Context, d *entity.Dispatch) error {
	const q = `
		INSERT INTO dispatches
			(` + dispatchColumns + `)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, q,
		d.ID, d.DispatchNumber, d.ManagerID, d.ClientID, d.ProductID,
		d.SourceWarehouseID, d.DestinationWarehouseID, d.TotalQuantity, d.Status,
		d.RotationSeq, d.CreatedAt, d.CompletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert dispatch: %w", err)
	}
	return nil
}

func (r *DispatchRepo) GetByID(ctx context.Context, id string) (*entity.Dispatch, error) {
	const q = `SELECT ` + dispatchColumns + ` FROM dispatches WHERE id = $1`
	return r.getOne(ctx, q, id)
}

// GetForUpdate bloquea la fila del despacho. Todo camino que muta el despacho
// o evalúa su cierre pasa por este lock.
func (r *DispatchRepo) GetForUpdate(ctx context.Context, id string) (*entity.Dispatch, error) {
	const q = `SELECT ` + dispatchColumns + ` FROM dispatches WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, q, id)
}

func (r *DispatchRepo) getOne(ctx context.Context, q, id string) (*entity.Dispatch, error) {
	d, err := scanDispatch(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dispatch: %w", err)
	}
	return d, nil
}

func (r *DispatchRepo) Update(ctx context.Context, d *entity.Dispatch) error {
	const q = `
		UPDATE dispatches
		SET status = $2, rotation_seq = $3, completed_at = $4
		WHERE id = $1`
	_, err := r.db.Exec(ctx, q, d.ID, d.Status, d.RotationSeq, d.CompletedAt)
	if err != nil {
		return fmt.Errorf("update dispatch: %w", err)
	}
	return nil
}

// Delete borra el despacho; las rotaciones caen por ON DELETE CASCADE.
func (r *DispatchRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM dispatches WHERE id = $1`
	if _, err := r.db.Exec(ctx, q, id); err != nil {
		return fmt.Errorf("delete dispatch: %w", err)
	}
	return nil
}

func (r *DispatchRepo) ListByManager(ctx context.Context, managerID, status string, limit, offset int) ([]*entity.Dispatch, error) {
	const q = `
		SELECT ` + dispatchColumns + `
		FROM dispatches
		WHERE manager_id = $1
		  AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.db.Query(ctx, q, managerID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list dispatches: %w", err)
	}
	defer rows.Close()

	var dispatches []*entity.Dispatch
	for rows.Next() {
		d, err := scanDispatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dispatch: %w", err)
		}
		dispatches = append(dispatches, d)
	}
	return dispatches, rows.Err()
}

func (r *DispatchRepo) CountByManagerAndStatus(ctx context.Context, managerID, status string) (int, error) {
	const q = `
		SELECT COUNT(*)
		FROM dispatches
		WHERE manager_id = $1
		  AND ($2 = '' OR status = $2)`
	var count int
	if err := r.db.QueryRow(ctx, q, managerID, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("count dispatches: %w", err)
	}
	return count, nil
}

func scanDispatch(row pgx.Row) (*entity.Dispatch, error) {
	var d entity.Dispatch
	err := row.Scan(
		&d.ID, &d.DispatchNumber, &d.ManagerID, &d.ClientID, &d.ProductID,
		&d.SourceWarehouseID, &d.DestinationWarehouseID, &d.TotalQuantity, &d.Status,
		&d.RotationSeq, &d.CreatedAt, &d.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
