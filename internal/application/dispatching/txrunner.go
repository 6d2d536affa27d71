package dispatching

import (
	"context"

	"github.com/jhoicas/Despachos-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con los cuatro repos que
// tocan las operaciones despacho+rotación+libro. Commit si fn retorna nil;
// Rollback en caso contrario: nunca sobrevive una mutación parcial (rotación
// actualizada sin movimiento, saldo ajustado sin cierre de despacho, etc.).
type TxRunner interface {
	RunDispatch(ctx context.Context, fn func(
		dispatchRepo repository.DispatchRepository,
		rotationRepo repository.RotationRepository,
		movRepo repository.StockMovementRepository,
		balanceRepo repository.StockBalanceRepository,
	) error) error
}
