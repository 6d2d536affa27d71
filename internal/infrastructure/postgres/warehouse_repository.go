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

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementa WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	db Querier
}

// NewWarehouseRepository construye el repositorio; acepta pool o tx.
func NewWarehouseRepository(db Querier) *WarehouseRepo {
	return &WarehouseRepo{db: db}
}

func (r *WarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) error {
	const q = `
		INSERT INTO warehouses (id, name, code, location, capacity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, q, w.ID, w.Name, w.Code, w.Location, w.Capacity, w.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

func (r *WarehouseRepo) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	const q = `SELECT id, name, code, location, capacity, created_at FROM warehouses WHERE id = $1`
	var w entity.Warehouse
	err := r.db.QueryRow(ctx, q, id).Scan(&w.ID, &w.Name, &w.Code, &w.Location, &w.Capacity, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse by id: %w", err)
	}
	return &w, nil
}

func (r *WarehouseRepo) List(ctx context.Context, limit, offset int) ([]*entity.Warehouse, error) {
	const q = `
		SELECT id, name, code, location, capacity, created_at
		FROM warehouses
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	var warehouses []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Code, &w.Location, &w.Capacity, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		warehouses = append(warehouses, &w)
	}
	return warehouses, rows.Err()
}
