package dispatching

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despachos-api/internal/domain"
	"github.com/jhoicas/Despachos-api/internal/domain/entity"
	"github.com/jhoicas/Despachos-api/internal/domain/numbering"
	"github.com/jhoicas/Despachos-api/internal/domain/repository"
)

// maxNumberAttempts reintentos ante colisión del sufijo aleatorio del número.
const maxNumberAttempts = 5

// DispatchUseCase gestiona el ciclo de vida de despachos: creación (con
// verificación de stock en origen), cancelación, consulta y borrado admin.
type DispatchUseCase struct {
	txRunner      TxRunner
	dispatchRepo  repository.DispatchRepository
	rotationRepo  repository.RotationRepository
	balanceRepo   repository.StockBalanceRepository
	clientRepo    repository.ClientRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewDispatchUseCase construye el caso de uso de despachos.
func NewDispatchUseCase(
	txRunner TxRunner,
	dispatchRepo repository.DispatchRepository,
	rotationRepo repository.RotationRepository,
	balanceRepo repository.StockBalanceRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *DispatchUseCase {
	return &DispatchUseCase{
		txRunner:      txRunner,
		dispatchRepo:  dispatchRepo,
		rotationRepo:  rotationRepo,
		balanceRepo:   balanceRepo,
		clientRepo:    clientRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// CreateDispatchInput datos para crear un despacho.
type CreateDispatchInput struct {
	ManagerID              string
	ClientID               string
	ProductID              string
	SourceWarehouseID      string
	DestinationWarehouseID string
	TotalQuantity          decimal.Decimal
}

// CreateDispatch crea un despacho en estado pending. Precondición: el saldo
// del cliente para el producto en el almacén origen cubre la cantidad total;
// si no, falla con ErrInsufficientStock sin crear nada. La verificación es una
// precondición de lectura, no una reserva: el libro admite que despachos
// posteriores sobre-suscriban el mismo saldo.
func (uc *DispatchUseCase) CreateDispatch(ctx context.Context, in CreateDispatchInput) (*entity.Dispatch, error) {
	if !in.TotalQuantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}
	if in.SourceWarehouseID == in.DestinationWarehouseID {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validateMasters(ctx, in); err != nil {
		return nil, err
	}

	balance, err := uc.balanceRepo.Get(ctx, in.ClientID, in.ProductID, in.SourceWarehouseID)
	if err != nil {
		return nil, err
	}
	if balance.Quantity.LessThan(in.TotalQuantity) {
		return nil, domain.ErrInsufficientStock
	}

	// El sufijo aleatorio puede colisionar con un número existente: se
	// reintenta con un número nuevo ante violación de unicidad.
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		dispatch := &entity.Dispatch{
			ID:                     uuid.New().String(),
			DispatchNumber:         numbering.DispatchNumber(time.Now()),
			ManagerID:              in.ManagerID,
			ClientID:               in.ClientID,
			ProductID:              in.ProductID,
			SourceWarehouseID:      in.SourceWarehouseID,
			DestinationWarehouseID: in.DestinationWarehouseID,
			TotalQuantity:          in.TotalQuantity,
			Status:                 entity.DispatchStatusPending,
			CreatedAt:              time.Now(),
		}
		err := uc.dispatchRepo.Create(ctx, dispatch)
		if err == nil {
			return dispatch, nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
	}
	return nil, domain.ErrDuplicate
}

// CancelDispatch cancela un despacho pending o in_progress. Un despacho
// completed no se puede cancelar (ErrInvalidTransition). La cancelación no
// revierte movimientos ya registrados por rotaciones recibidas.
func (uc *DispatchUseCase) CancelDispatch(ctx context.Context, actorID, actorRole, dispatchID string) error {
	return uc.txRunner.RunDispatch(ctx, func(
		dispatchRepo repository.DispatchRepository,
		_ repository.RotationRepository,
		_ repository.StockMovementRepository,
		_ repository.StockBalanceRepository,
	) error {
		dispatch, err := dispatchRepo.GetForUpdate(ctx, dispatchID)
		if err != nil {
			return err
		}
		if dispatch == nil {
			return domain.ErrNotFound
		}
		if err := checkScope(dispatch, actorID, actorRole); err != nil {
			return err
		}
		if !dispatch.Active() {
			return domain.ErrInvalidTransition
		}
		dispatch.Status = entity.DispatchStatusCancelled
		return dispatchRepo.Update(ctx, dispatch)
	})
}

// DeleteDispatch borra un despacho cancelado (solo admin); las rotaciones
// caen por cascada. Los despachos con trabajo ejecutado no se borran para
// preservar la pista de auditoría.
func (uc *DispatchUseCase) DeleteDispatch(ctx context.Context, actorRole, dispatchID string) error {
	if actorRole != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	dispatch, err := uc.dispatchRepo.GetByID(ctx, dispatchID)
	if err != nil {
		return err
	}
	if dispatch == nil {
		return domain.ErrNotFound
	}
	if dispatch.Status != entity.DispatchStatusCancelled {
		return domain.ErrInvalidTransition
	}
	return uc.dispatchRepo.Delete(ctx, dispatchID)
}

// GetDispatch devuelve el despacho con sus rotaciones, dentro del alcance del
// manager creador (admin ve todo).
func (uc *DispatchUseCase) GetDispatch(ctx context.Context, actorID, actorRole, dispatchID string) (*entity.Dispatch, []*entity.Rotation, error) {
	dispatch, err := uc.dispatchRepo.GetByID(ctx, dispatchID)
	if err != nil {
		return nil, nil, err
	}
	if dispatch == nil {
		return nil, nil, domain.ErrNotFound
	}
	if err := checkScope(dispatch, actorID, actorRole); err != nil {
		return nil, nil, err
	}
	rotations, err := uc.rotationRepo.ListByDispatch(ctx, dispatchID)
	if err != nil {
		return nil, nil, err
	}
	return dispatch, rotations, nil
}

// ListDispatches lista los despachos del manager, opcionalmente por estado.
func (uc *DispatchUseCase) ListDispatches(ctx context.Context, managerID, status string, limit, offset int) ([]*entity.Dispatch, error) {
	return uc.dispatchRepo.ListByManager(ctx, managerID, status, limit, offset)
}

// checkScope aplica el alcance por manager creador. El operador recibe
// rotaciones, no consulta despachos ajenos; admin no tiene restricción.
func checkScope(dispatch *entity.Dispatch, actorID, actorRole string) error {
	if actorRole == entity.RoleAdmin {
		return nil
	}
	if dispatch.ManagerID != actorID {
		return domain.ErrForbidden
	}
	return nil
}

func (uc *DispatchUseCase) validateMasters(ctx context.Context, in CreateDispatchInput) error {
	client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return err
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return err
	}
	source, err := uc.warehouseRepo.GetByID(ctx, in.SourceWarehouseID)
	if err != nil {
		return err
	}
	dest, err := uc.warehouseRepo.GetByID(ctx, in.DestinationWarehouseID)
	if err != nil {
		return err
	}
	if client == nil || product == nil || source == nil || dest == nil {
		return domain.ErrNotFound
	}
	return nil
}
