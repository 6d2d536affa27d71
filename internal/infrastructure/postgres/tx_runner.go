package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Despachos-api/internal/application/dispatching"
	"github.com/jhoicas/Despachos-api/internal/application/ledger"
	"github.com/jhoicas/Despachos-api/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner and dispatching.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)
var _ dispatching.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos de movimientos y saldos
// atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	balanceRepo repository.StockBalanceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewStockMovementRepository(tx)
	balanceRepo := NewStockBalanceRepository(tx)

	if err := fn(movRepo, balanceRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunDispatch inicia una transacción con los cuatro repos que tocan las
// operaciones despacho+rotación+libro (alta de rotación, recepción, cancelación).
func (r *TxRunner) RunDispatch(ctx context.Context, fn func(
	dispatchRepo repository.DispatchRepository,
	rotationRepo repository.RotationRepository,
	movRepo repository.StockMovementRepository,
	balanceRepo repository.StockBalanceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	dispatchRepo := NewDispatchRepository(tx)
	rotationRepo := NewRotationRepository(tx)
	movRepo := NewStockMovementRepository(tx)
	balanceRepo := NewStockBalanceRepository(tx)

	if err := fn(dispatchRepo, rotationRepo, movRepo, balanceRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
