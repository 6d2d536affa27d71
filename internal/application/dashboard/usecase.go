package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despachos-api/internal/domain/entity"
	"github.com/jhoicas/Despachos-api/internal/domain/repository"
)

// UseCase agrega las estadísticas de los tableros de manager y operador.
type UseCase struct {
	dispatchRepo repository.DispatchRepository
	movementRepo repository.StockMovementRepository
}

// NewUseCase construye el caso de uso de tableros.
func NewUseCase(dispatchRepo repository.DispatchRepository, movementRepo repository.StockMovementRepository) *UseCase {
	return &UseCase{dispatchRepo: dispatchRepo, movementRepo: movementRepo}
}

// ManagerStats estadísticas del tablero de un manager.
type ManagerStats struct {
	Total            int
	Pending          int
	InProgress       int
	Completed        int
	RecentDispatches []*entity.Dispatch
}

// ManagerDashboard cuenta los despachos del manager por estado y trae los
// más recientes.
func (uc *UseCase) ManagerDashboard(ctx context.Context, managerID string) (*ManagerStats, error) {
	total, err := uc.dispatchRepo.CountByManagerAndStatus(ctx, managerID, "")
	if err != nil {
		return nil, err
	}
	pending, err := uc.dispatchRepo.CountByManagerAndStatus(ctx, managerID, entity.DispatchStatusPending)
	if err != nil {
		return nil, err
	}
	inProgress, err := uc.dispatchRepo.CountByManagerAndStatus(ctx, managerID, entity.DispatchStatusInProgress)
	if err != nil {
		return nil, err
	}
	completed, err := uc.dispatchRepo.CountByManagerAndStatus(ctx, managerID, entity.DispatchStatusCompleted)
	if err != nil {
		return nil, err
	}
	recent, err := uc.dispatchRepo.ListByManager(ctx, managerID, "", 10, 0)
	if err != nil {
		return nil, err
	}
	return &ManagerStats{
		Total:            total,
		Pending:          pending,
		InProgress:       inProgress,
		Completed:        completed,
		RecentDispatches: recent,
	}, nil
}

// OperatorStats estadísticas del tablero de un operador.
type OperatorStats struct {
	ReceivedToday   decimal.Decimal
	DeliveredToday  decimal.Decimal
	RecentMovements []*entity.StockMovement
}

// OperatorDashboard suma el tonelaje recibido (entradas) y despachado
// (salidas) del operador desde la medianoche local y trae sus últimos
// movimientos.
func (uc *UseCase) OperatorDashboard(ctx context.Context, operatorID string) (*OperatorStats, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	received, err := uc.movementRepo.SumByOperatorAndType(ctx, operatorID, entity.MovementTypeEntry, midnight)
	if err != nil {
		return nil, err
	}
	delivered, err := uc.movementRepo.SumByOperatorAndType(ctx, operatorID, entity.MovementTypeExit, midnight)
	if err != nil {
		return nil, err
	}
	recent, err := uc.movementRepo.ListByOperator(ctx, operatorID, nil, nil, 10, 0)
	if err != nil {
		return nil, err
	}
	return &OperatorStats{
		ReceivedToday:   received,
		DeliveredToday:  delivered,
		RecentMovements: recent,
	}, nil
}
