package repository

import (
	"context"

	"github.com/jhoicas/Despachos-api/internal/domain/entity"
)

// Puertos de datos maestros. El núcleo solo los referencia (validación de
// existencia al crear despachos y movimientos); no tienen más invariantes que
// la unicidad de códigos.

type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Client, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
}

type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Warehouse, error)
}

type DriverRepository interface {
	Create(ctx context.Context, driver *entity.Driver) error
	GetByID(ctx context.Context, id string) (*entity.Driver, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Driver, error)
}
