package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despachos-api/internal/domain/entity"
)

// RotationRepository define el puerto de persistencia de rotaciones.
type RotationRepository interface {
	Create(ctx context.Context, rotation *entity.Rotation) error
	GetByID(ctx context.Context, id string) (*entity.Rotation, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para que una rotación
	// no pueda recibirse dos veces bajo concurrencia.
	GetForUpdate(ctx context.Context, id string) (*entity.Rotation, error)
	Update(ctx context.Context, rotation *entity.Rotation) error
	// ListByDispatch lista las rotaciones del despacho en orden de creación.
	ListByDispatch(ctx context.Context, dispatchID string) ([]*entity.Rotation, error)
	// SumExpectedByDispatch suma ExpectedQuantity de todas las rotaciones del
	// despacho (base del control de sobre-asignación).
	SumExpectedByDispatch(ctx context.Context, dispatchID string) (decimal.Decimal, error)
	// ListInTransit lista rotaciones pendientes de recepción cuyo despacho
	// sigue activo, más reciente primero.
	ListInTransit(ctx context.Context, limit, offset int) ([]*entity.Rotation, error)
}
