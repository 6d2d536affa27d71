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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementa ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	db Querier
}

// NewClientRepository construye el repositorio; acepta pool o tx.
func NewClientRepository(db Querier) *ClientRepo {
	return &ClientRepo{db: db}
}

func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	const q = `
		INSERT INTO clients (id, name, code, contact, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, q, c.ID, c.Name, c.Code, c.Contact, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	const q = `SELECT id, name, code, contact, created_at FROM clients WHERE id = $1`
	var c entity.Client
	err := r.db.QueryRow(ctx, q, id).Scan(&c.ID, &c.Name, &c.Code, &c.Contact, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by id: %w", err)
	}
	return &c, nil
}

func (r *ClientRepo) List(ctx context.Context, limit, offset int) ([]*entity.Client, error) {
	const q = `
		SELECT id, name, code, contact, created_at
		FROM clients
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Contact, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, &c)
	}
	return clients, rows.Err()
}
