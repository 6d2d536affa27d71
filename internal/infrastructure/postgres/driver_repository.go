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

var _ repository.DriverRepository = (*DriverRepo)(nil)

// DriverRepo implementa DriverRepository sobre PostgreSQL.
type DriverRepo struct {
	db Querier
}

// NewDriverRepository construye el repositorio; acepta pool o tx.
func NewDriverRepository(db Querier) *DriverRepo {
	return &DriverRepo{db: db}
}

func (r *DriverRepo) Create(ctx context.Context, d *entity.Driver) error {
	const q = `
		INSERT INTO drivers (id, name, phone, license_number, truck_number, truck_capacity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, q, d.ID, d.Name, d.Phone, d.LicenseNumber, d.TruckNumber, d.TruckCapacity, d.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert driver: %w", err)
	}
	return nil
}

func (r *DriverRepo) GetByID(ctx context.Context, id string) (*entity.Driver, error) {
	const q = `SELECT id, name, phone, license_number, truck_number, truck_capacity, created_at FROM drivers WHERE id = $1`
	var d entity.Driver
	err := r.db.QueryRow(ctx, q, id).Scan(&d.ID, &d.Name, &d.Phone, &d.LicenseNumber, &d.TruckNumber, &d.TruckCapacity, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver by id: %w", err)
	}
	return &d, nil
}

func (r *DriverRepo) List(ctx context.Context, limit, offset int) ([]*entity.Driver, error) {
	const q = `
		SELECT id, name, phone, license_number, truck_number, truck_capacity, created_at
		FROM drivers
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	var drivers []*entity.Driver
	for rows.Next() {
		var d entity.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.Phone, &d.LicenseNumber, &d.TruckNumber, &d.TruckCapacity, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		drivers = append(drivers, &d)
	}
	return drivers, rows.Err()
}
