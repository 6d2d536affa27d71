package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despachos-api/internal/domain"
	"github.com/jhoicas/Despachos-api/internal/domain/entity"
	"github.com/jhoicas/Despachos-api/internal/domain/repository"
)

// UseCase expone el libro de stock: consulta de saldos, entradas/salidas
// directas (mercancía que llega o sale sin despacho) y el log de auditoría.
type UseCase struct {
	txRunner      TxRunner
	balanceRepo   repository.StockBalanceRepository
	movementRepo  repository.StockMovementRepository
	clientRepo    repository.ClientRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewUseCase construye el caso de uso del libro de stock.
func NewUseCase(
	txRunner TxRunner,
	balanceRepo repository.StockBalanceRepository,
	movementRepo repository.StockMovementRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		balanceRepo:   balanceRepo,
		movementRepo:  movementRepo,
		clientRepo:    clientRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// DirectMovementInput entrada o salida directa de stock.
type DirectMovementInput struct {
	ClientID    string
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal
	Reference   string
	OperatorID  string
	Notes       string
}

// GetBalance devuelve el saldo de la clave; cero si la fila no existe.
func (uc *UseCase) GetBalance(ctx context.Context, clientID, productID, warehouseID string) (decimal.Decimal, error) {
	balance, err := uc.balanceRepo.Get(ctx, clientID, productID, warehouseID)
	if err != nil {
		return decimal.Zero, err
	}
	return balance.Quantity, nil
}

// DirectEntry registra una entrada sin despacho (recepción inicial, llegada de
// navío). Devuelve el ID del movimiento creado.
func (uc *UseCase) DirectEntry(ctx context.Context, in DirectMovementInput) (string, error) {
	return uc.direct(ctx, in, entity.MovementTypeEntry)
}

// DirectExit registra una salida sin despacho (retiro del cliente en puerta de
// almacén). Devuelve el ID del movimiento creado.
func (uc *UseCase) DirectExit(ctx context.Context, in DirectMovementInput) (string, error) {
	return uc.direct(ctx, in, entity.MovementTypeExit)
}

func (uc *UseCase) direct(ctx context.Context, in DirectMovementInput, movementType string) (string, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return "", domain.ErrInvalidQuantity
	}
	if err := uc.validateKey(ctx, in.ClientID, in.ProductID, in.WarehouseID); err != nil {
		return "", err
	}

	movement := &entity.StockMovement{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		ClientID:    in.ClientID,
		Quantity:    in.Quantity,
		Reference:   in.Reference,
		OperatorID:  in.OperatorID,
		Notes:       in.Notes,
	}
	err := uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, balanceRepo repository.StockBalanceRepository) error {
		if movementType == entity.MovementTypeExit {
			return RecordExit(ctx, movRepo, balanceRepo, movement)
		}
		return RecordEntry(ctx, movRepo, balanceRepo, movement)
	})
	if err != nil {
		return "", err
	}
	return movement.ID, nil
}

// ListMovementsByKey devuelve el historial de una clave en orden cronológico.
func (uc *UseCase) ListMovementsByKey(ctx context.Context, clientID, productID, warehouseID string) ([]*entity.StockMovement, error) {
	return uc.movementRepo.ListByKey(ctx, clientID, productID, warehouseID)
}

// ListMovementsByOperator devuelve los movimientos de un operador en un rango
// de fechas, más reciente primero.
func (uc *UseCase) ListMovementsByOperator(ctx context.Context, operatorID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.movementRepo.ListByOperator(ctx, operatorID, from, to, limit, offset)
}

// ListBalancesByWarehouse lista los saldos presentes en un almacén.
func (uc *UseCase) ListBalancesByWarehouse(ctx context.Context, warehouseID string, limit, offset int) ([]*entity.StockBalance, error) {
	return uc.balanceRepo.ListByWarehouse(ctx, warehouseID, limit, offset)
}

// validateKey verifica que cliente, producto y almacén existan.
func (uc *UseCase) validateKey(ctx context.Context, clientID, productID, warehouseID string) error {
	client, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	warehouse, err := uc.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		return err
	}
	if client == nil || product == nil || warehouse == nil {
		return domain.ErrNotFound
	}
	return nil
}
