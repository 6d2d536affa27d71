package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despachos-api/internal/domain/entity"
	"github.com/jhoicas/Despachos-api/internal/domain/repository"
)

var _ repository.RotationRepository = (*RotationRepo)(nil)

// RotationRepo implementa RotationRepository sobre PostgreSQL.
type RotationRepo struct {
	db Querier
}

// NewRotationRepository construye el repositorio; acepta pool o tx.
func NewRotationRepository(db Querier) *RotationRepo {
	return &RotationRepo{db: db}
}

const rotationColumns = `id, dispatch_id, driver_id, rotation_number, expected_quantity,
		delivered_quantity, status, departure_time, arrival_time, discrepancy, notes`

func (r *RotationRepo) Create(ctx context.Context, rot *entity.Rotation) error {
	const q = `
		INSERT INTO rotations
			(` + rotationColumns + `)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, q,
		rot.ID, rot.DispatchID, rot.DriverID, rot.RotationNumber, rot.ExpectedQuantity,
		rot.DeliveredQuantity, rot.Status, rot.DepartureTime, rot.ArrivalTime,
		rot.Discrepancy, rot.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert rotation: %w", err)
	}
	return nil
}

func (r *RotationRepo) GetByID(ctx context.Context, id string) (*entity.Rotation, error) {
	const q = `SELECT ` + rotationColumns + ` FROM rotations WHERE id = $1`
	return r.getOne(ctx, q, id)
}

// GetForUpdate bloquea la fila: la recepción de una rotación debe ser única
// aunque dos operadores la confirmen a la vez.
func (r *RotationRepo) GetForUpdate(ctx context.Context, id string) (*entity.Rotation, error) {
	const q = `SELECT ` + rotationColumns + ` FROM rotations WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, q, id)
}

func (r *RotationRepo) getOne(ctx context.Context, q, id string) (*entity.Rotation, error) {
	rot, err := scanRotation(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rotation: %w", err)
	}
	return rot, nil
}

func (r *RotationRepo) Update(ctx context.Context, rot *entity.Rotation) error {
	const q = `
		UPDATE rotations
		SET delivered_quantity = $2, status = $3, arrival_time = $4,
		    discrepancy = $5, notes = $6
		WHERE id = $1`
	_, err := r.db.Exec(ctx, q,
		rot.ID, rot.DeliveredQuantity, rot.Status, rot.ArrivalTime,
		rot.Discrepancy, rot.Notes,
	)
	if err != nil {
		return fmt.Errorf("update rotation: %w", err)
	}
	return nil
}

func (r *RotationRepo) ListByDispatch(ctx context.Context, dispatchID string) ([]*entity.Rotation, error) {
	const q = `
		SELECT ` + rotationColumns + `
		FROM rotations
		WHERE dispatch_id = $1
		ORDER BY departure_time ASC, rotation_number ASC`
	rows, err := r.db.Query(ctx, q, dispatchID)
	if err != nil {
		return nil, fmt.Errorf("list rotations by dispatch: %w", err)
	}
	defer rows.Close()
	return collectRotations(rows)
}

func (r *RotationRepo) SumExpectedByDispatch(ctx context.Context, dispatchID string) (decimal.Decimal, error) {
	const q = `
		SELECT COALESCE(SUM(expected_quantity), 0)
		FROM rotations
		WHERE dispatch_id = $1`
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, q, dispatchID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum expected rotations: %w", err)
	}
	return sum, nil
}

// ListInTransit lista rotaciones aún en tránsito de despachos activos, la cola
// de trabajo del operador de recepción.
func (r *RotationRepo) ListInTransit(ctx context.Context, limit, offset int) ([]*entity.Rotation, error) {
	const q = `
		SELECT r.id, r.dispatch_id, r.driver_id, r.rotation_number, r.expected_quantity,
		       r.delivered_quantity, r.status, r.departure_time, r.arrival_time, r.discrepancy, r.notes
		FROM rotations r
		JOIN dispatches d ON d.id = r.dispatch_id
		WHERE r.status = 'in_transit'
		  AND d.status IN ('pending', 'in_progress')
		ORDER BY r.departure_time DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list rotations in transit: %w", err)
	}
	defer rows.Close()
	return collectRotations(rows)
}

func scanRotation(row pgx.Row) (*entity.Rotation, error) {
	var rot entity.Rotation
	err := row.Scan(
		&rot.ID, &rot.DispatchID, &rot.DriverID, &rot.RotationNumber, &rot.ExpectedQuantity,
		&rot.DeliveredQuantity, &rot.Status, &rot.DepartureTime, &rot.ArrivalTime,
		&rot.Discrepancy, &rot.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &rot, nil
}

func collectRotations(rows pgx.Rows) ([]*entity.Rotation, error) {
	var rotations []*entity.Rotation
	for rows.Next() {
		rot, err := scanRotation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rotation: %w", err)
		}
		rotations = append(rotations, rot)
	}
	return rotations, rows.Err()
}
