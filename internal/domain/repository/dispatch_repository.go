package repository

import (
	"context"

	"github.com/jhoicas/Despachos-api/internal/domain/entity"
)

// DispatchRepository define el puerto de persistencia de despachos.
type DispatchRepository interface {
	// Create inserta el despacho. Retorna domain.ErrDuplicate si el número de
	// despacho ya existe (el caso de uso reintenta con otro número).
	Create(ctx context.Context, dispatch *entity.Dispatch) error
	GetByID(ctx context.Context, id string) (*entity.Dispatch, error)
	// GetForUpdate bloquea la fila del despacho (SELECT FOR UPDATE). Serializa
	// la inserción de rotaciones y la evaluación de cierre por despacho.
	GetForUpdate(ctx context.Context, id string) (*entity.Dispatch, error)
	Update(ctx context.Context, dispatch *entity.Dispatch) error
	// Delete elimina el despacho; las rotaciones caen por cascada en la DB.
	Delete(ctx context.Context, id string) error
	// ListByManager lista despachos de un manager, opcionalmente filtrados por
	// estado (status vacío = todos), más reciente primero.
	ListByManager(ctx context.Context, managerID, status string, limit, offset int) ([]*entity.Dispatch, error)
	// CountByManagerAndStatus cuenta despachos por estado (status vacío = todos).
	CountByManagerAndStatus(ctx context.Context, managerID, status string) (int, error)
}
