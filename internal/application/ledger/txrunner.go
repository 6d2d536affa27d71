package ledger

import (
	"context"

	"github.com/jhoicas/Despachos-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos de movimientos y
// saldos atados a la tx. Commit si fn retorna nil; Rollback en caso contrario.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		balanceRepo repository.StockBalanceRepository,
	) error) error
}
