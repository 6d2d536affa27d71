package dispatching

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despachos-api/internal/application/ledger"
	"github.com/jhoicas/Despachos-api/internal/domain"
	"github.com/jhoicas/Despachos-api/internal/domain/entity"
	"github.com/jhoicas/Despachos-api/internal/domain/numbering"
	"github.com/jhoicas/Despachos-api/internal/domain/repository"
)

// RotationUseCase gestiona rotaciones: alta contra un despacho (control de
// sobre-asignación) y recepción en destino (conciliación de entrega).
type RotationUseCase struct {
	txRunner     TxRunner
	rotationRepo repository.RotationRepository
	dispatchRepo repository.DispatchRepository
	driverRepo   repository.DriverRepository
}

// NewRotationUseCase construye el caso de uso de rotaciones.
func NewRotationUseCase(
	txRunner TxRunner,
	rotationRepo repository.RotationRepository,
	dispatchRepo repository.DispatchRepository,
	driverRepo repository.DriverRepository,
) *RotationUseCase {
	return &RotationUseCase{
		txRunner:     txRunner,
		rotationRepo: rotationRepo,
		dispatchRepo: dispatchRepo,
		driverRepo:   driverRepo,
	}
}

// AddRotation crea una rotación in_transit contra un despacho activo.
// La fila del despacho se bloquea (FOR UPDATE) durante toda la operación, de
// modo que el control Σ esperado + nueva ≤ total no pueda carrear bajo altas
// concurrentes, y el contador de secuencia avance sin huecos reutilizados.
// Si el despacho estaba pending pasa a in_progress.
func (uc *RotationUseCase) AddRotation(ctx context.Context, actorID, actorRole, dispatchID, driverID string, expectedQuantity decimal.Decimal) (*entity.Rotation, error) {
	if !expectedQuantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}
	driver, err := uc.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, domain.ErrNotFound
	}

	var rotation *entity.Rotation
	err = uc.txRunner.RunDispatch(ctx, func(
		dispatchRepo repository.DispatchRepository,
		rotationRepo repository.RotationRepository,
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

		allocated, err := rotationRepo.SumExpectedByDispatch(ctx, dispatchID)
		if err != nil {
			return err
		}
		if allocated.Add(expectedQuantity).GreaterThan(dispatch.TotalQuantity) {
			return domain.ErrOverAllocation
		}

		dispatch.RotationSeq++
		if dispatch.Status == entity.DispatchStatusPending {
			dispatch.Status = entity.DispatchStatusInProgress
		}
		if err := dispatchRepo.Update(ctx, dispatch); err != nil {
			return err
		}

		rotation = &entity.Rotation{
			ID:               uuid.New().String(),
			DispatchID:       dispatchID,
			DriverID:         driverID,
			RotationNumber:   numbering.RotationNumber(dispatch.DispatchNumber, dispatch.RotationSeq),
			ExpectedQuantity: expectedQuantity,
			Status:           entity.RotationStatusInTransit,
			DepartureTime:    time.Now(),
			Discrepancy:      decimal.Zero,
		}
		return rotationRepo.Create(ctx, rotation)
	})
	if err != nil {
		return nil, err
	}
	return rotation, nil
}

// ReceiveResult resultado de la recepción de una rotación.
type ReceiveResult struct {
	Rotation       *entity.Rotation
	Discrepancy    decimal.Decimal
	DispatchStatus string
}

// ReceiveRotation concilia la entrega de una rotación in_transit. En una sola
// transacción: fija entregado/llegada/discrepancia/estado en la rotación,
// registra la entrada en el almacén destino, debita el saldo del origen y
// cierra el despacho si todas sus rotaciones quedaron resueltas. Una segunda
// recepción de la misma rotación falla con ErrAlreadyProcessed sin duplicar
// movimientos ni ajustes.
func (uc *RotationUseCase) ReceiveRotation(ctx context.Context, operatorID, rotationID string, deliveredQuantity decimal.Decimal, notes string) (*ReceiveResult, error) {
	if deliveredQuantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var result *ReceiveResult
	err := uc.txRunner.RunDispatch(ctx, func(
		dispatchRepo repository.DispatchRepository,
		rotationRepo repository.RotationRepository,
		movRepo repository.StockMovementRepository,
		balanceRepo repository.StockBalanceRepository,
	) error {
		rotation, err := rotationRepo.GetForUpdate(ctx, rotationID)
		if err != nil {
			return err
		}
		if rotation == nil {
			return domain.ErrNotFound
		}
		if rotation.Status != entity.RotationStatusInTransit {
			return domain.ErrAlreadyProcessed
		}

		// Bloquear el despacho serializa la evaluación de cierre: sin esto,
		// dos recepciones simultáneas pueden leer un conjunto de rotaciones
		// desactualizado y cerrar de más o de menos.
		dispatch, err := dispatchRepo.GetForUpdate(ctx, rotation.DispatchID)
		if err != nil {
			return err
		}
		if dispatch == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		discrepancy := rotation.ExpectedQuantity.Sub(deliveredQuantity)

		delivered := deliveredQuantity
		rotation.DeliveredQuantity = &delivered
		rotation.ArrivalTime = &now
		rotation.Discrepancy = discrepancy
		rotation.Notes = notes
		if discrepancy.IsZero() {
			rotation.Status = entity.RotationStatusDelivered
		} else {
			rotation.Status = entity.RotationStatusMissing
		}
		if err := rotationRepo.Update(ctx, rotation); err != nil {
			return err
		}

		// Entrada en destino por lo efectivamente entregado. Con entrega en
		// cero no se registra movimiento (cantidad cero no es un movimiento).
		if deliveredQuantity.GreaterThan(decimal.Zero) {
			rotationRef := rotation.ID
			entry := &entity.StockMovement{
				ProductID:   dispatch.ProductID,
				WarehouseID: dispatch.DestinationWarehouseID,
				ClientID:    dispatch.ClientID,
				RotationID:  &rotationRef,
				Quantity:    deliveredQuantity,
				Reference:   rotation.RotationNumber,
				OperatorID:  operatorID,
				CreatedAt:   now,
				Notes:       notes,
			}
			if err := ledger.RecordEntry(ctx, movRepo, balanceRepo, entry); err != nil {
				return err
			}
		}

		// Débito del origen: ajuste directo de saldo, sin fila espejo en
		// stock_movements.
		// TODO: definir con producto si la salida del origen debe registrar
		// un movimiento 'exit'. Hoy la entrada en destino queda auditada y
		// la salida del origen no.
		if err := ledger.Adjust(ctx, balanceRepo, dispatch.ClientID, dispatch.ProductID, dispatch.SourceWarehouseID, deliveredQuantity.Neg()); err != nil {
			return err
		}

		// Cierre del despacho: re-escanea todas las rotaciones en lugar de
		// mantener un contador incremental en el despacho.
		rotations, err := rotationRepo.ListByDispatch(ctx, dispatch.ID)
		if err != nil {
			return err
		}
		allResolved := true
		for _, r := range rotations {
			if !r.Terminal() {
				allResolved = false
				break
			}
		}
		if allResolved {
			dispatch.Status = entity.DispatchStatusCompleted
			dispatch.CompletedAt = &now
			if err := dispatchRepo.Update(ctx, dispatch); err != nil {
				return err
			}
		}

		result = &ReceiveResult{
			Rotation:       rotation,
			Discrepancy:    discrepancy,
			DispatchStatus: dispatch.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetRotation devuelve una rotación por ID.
func (uc *RotationUseCase) GetRotation(ctx context.Context, rotationID string) (*entity.Rotation, error) {
	rotation, err := uc.rotationRepo.GetByID(ctx, rotationID)
	if err != nil {
		return nil, err
	}
	if rotation == nil {
		return nil, domain.ErrNotFound
	}
	return rotation, nil
}

// ListPendingRotations lista rotaciones in_transit de despachos activos.
func (uc *RotationUseCase) ListPendingRotations(ctx context.Context, limit, offset int) ([]*entity.Rotation, error) {
	return uc.rotationRepo.ListInTransit(ctx, limit, offset)
}
