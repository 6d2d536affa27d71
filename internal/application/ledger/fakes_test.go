package ledger_test

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despachos-api/internal/application/ledger"
	"github.com/jhoicas/Despachos-api/internal/domain/entity"
	"github.com/jhoicas/Despachos-api/internal/domain/repository"
)

// Fakes en memoria para ejercitar el caso de uso del libro sin PostgreSQL.

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (f *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	cp := *m
	f.movements = append(f.movements, &cp)
	return nil
}

func (f *fakeMovementRepo) GetByID(_ context.Context, id string) (*entity.StockMovement, error) {
	for _, m := range f.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMovementRepo) ListByKey(_ context.Context, clientID, productID, warehouseID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range f.movements {
		if m.ClientID == clientID && m.ProductID == productID && m.WarehouseID == warehouseID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) ListByOperator(_ context.Context, operatorID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range f.movements {
		if m.OperatorID != operatorID {
			continue
		}
		if from != nil && m.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && m.CreatedAt.After(*to) {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeMovementRepo) SumByOperatorAndType(_ context.Context, operatorID, movementType string, since time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, m := range f.movements {
		if m.OperatorID == operatorID && m.Type == movementType && !m.CreatedAt.Before(since) {
			sum = sum.Add(m.Quantity)
		}
	}
	return sum, nil
}

type fakeBalanceRepo struct {
	balances map[string]*entity.StockBalance
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: map[string]*entity.StockBalance{}}
}

func balanceKey(clientID, productID, warehouseID string) string {
	return fmt.Sprintf("%s|%s|%s", clientID, productID, warehouseID)
}

func (f *fakeBalanceRepo) Get(_ context.Context, clientID, productID, warehouseID string) (*entity.StockBalance, error) {
	if b, ok := f.balances[balanceKey(clientID, productID, warehouseID)]; ok {
		cp := *b
		return &cp, nil
	}
	return &entity.StockBalance{
		ClientID:    clientID,
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    decimal.Zero,
		LastUpdated: time.Now(),
	}, nil
}

func (f *fakeBalanceRepo) GetForUpdate(ctx context.Context, clientID, productID, warehouseID string) (*entity.StockBalance, error) {
	return f.Get(ctx, clientID, productID, warehouseID)
}

func (f *fakeBalanceRepo) Upsert(_ context.Context, balance *entity.StockBalance) error {
	cp := *balance
	f.balances[balanceKey(balance.ClientID, balance.ProductID, balance.WarehouseID)] = &cp
	return nil
}

func (f *fakeBalanceRepo) ListByWarehouse(_ context.Context, warehouseID string, limit, offset int) ([]*entity.StockBalance, error) {
	var out []*entity.StockBalance
	for _, b := range f.balances {
		if b.WarehouseID == warehouseID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeClientRepo struct{ clients map[string]*entity.Client }

func (f *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	f.clients[c.ID] = c
	return nil
}
func (f *fakeClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	return f.clients[id], nil
}
func (f *fakeClientRepo) List(_ context.Context, limit, offset int) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, nil
}

type fakeProductRepo struct{ products map[string]*entity.Product }

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}
func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

type fakeWarehouseRepo struct{ warehouses map[string]*entity.Warehouse }

func (f *fakeWarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	f.warehouses[w.ID] = w
	return nil
}
func (f *fakeWarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	return f.warehouses[id], nil
}
func (f *fakeWarehouseRepo) List(_ context.Context, limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range f.warehouses {
		out = append(out, w)
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes. Los casos de
// prueba solo ejercitan caminos donde el error ocurre antes de la primera
// mutación, así que no hace falta simular rollback.
type fakeTxRunner struct {
	mov *fakeMovementRepo
	bal *fakeBalanceRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	balanceRepo repository.StockBalanceRepository,
) error) error {
	return fn(f.mov, f.bal)
}

// testLedger arma el caso de uso con un juego de fakes poblado con los datos
// maestros de referencia.
type testLedger struct {
	uc  *ledger.UseCase
	mov *fakeMovementRepo
	bal *fakeBalanceRepo
}

const (
	testClientID    = "client-1"
	testProductID   = "product-trigo"
	testWarehouseID = "warehouse-puerto"
	testOperatorID  = "operator-1"
)

func newTestLedger() *testLedger {
	mov := &fakeMovementRepo{}
	bal := newFakeBalanceRepo()
	clients := &fakeClientRepo{clients: map[string]*entity.Client{
		testClientID: {ID: testClientID, Name: "Molinos del Sur", Code: "MOL"},
	}}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		testProductID: {ID: testProductID, Name: "Trigo", Code: "TRG", Unit: "tonnes"},
	}}
	warehouses := &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		testWarehouseID: {ID: testWarehouseID, Name: "Puerto", Code: "PTO"},
	}}
	uc := ledger.NewUseCase(&fakeTxRunner{mov: mov, bal: bal}, bal, mov, clients, products, warehouses)
	return &testLedger{uc: uc, mov: mov, bal: bal}
}
