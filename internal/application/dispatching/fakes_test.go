package dispatching_test

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despachos-api/internal/application/dispatching"
	"github.com/jhoicas/Despachos-api/internal/domain"
	"github.com/jhoicas/Despachos-api/internal/domain/entity"
	"github.com/jhoicas/Despachos-api/internal/domain/repository"
)

// Fakes en memoria para ejercitar despachos y rotaciones sin PostgreSQL.

type fakeDispatchRepo struct {
	dispatches map[string]*entity.Dispatch
	// failCreates fuerza ErrDuplicate en las próximas N inserciones, para
	// probar el reintento de numeración.
	failCreates int
}

func newFakeDispatchRepo() *fakeDispatchRepo {
	return &fakeDispatchRepo{dispatches: map[string]*entity.Dispatch{}}
}

func (f *fakeDispatchRepo) Create(_ context.Context, d *entity.Dispatch) error {
	if f.failCreates > 0 {
		f.failCreates--
		return domain.ErrDuplicate
	}
	for _, existing := range f.dispatches {
		if existing.DispatchNumber == d.DispatchNumber {
			return domain.ErrDuplicate
		}
	}
	cp := *d
	f.dispatches[d.ID] = &cp
	return nil
}

func (f *fakeDispatchRepo) GetByID(_ context.Context, id string) (*entity.Dispatch, error) {
	d, ok := f.dispatches[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDispatchRepo) GetForUpdate(ctx context.Context, id string) (*entity.Dispatch, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeDispatchRepo) Update(_ context.Context, d *entity.Dispatch) error {
	if _, ok := f.dispatches[d.ID]; !ok {
		return fmt.Errorf("dispatch %s no existe", d.ID)
	}
	cp := *d
	f.dispatches[d.ID] = &cp
	return nil
}

func (f *fakeDispatchRepo) Delete(_ context.Context, id string) error {
	delete(f.dispatches, id)
	return nil
}

func (f *fakeDispatchRepo) ListByManager(_ context.Context, managerID, status string, limit, offset int) ([]*entity.Dispatch, error) {
	var out []*entity.Dispatch
	for _, d := range f.dispatches {
		if d.ManagerID == managerID && (status == "" || d.Status == status) {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeDispatchRepo) CountByManagerAndStatus(_ context.Context, managerID, status string) (int, error) {
	count := 0
	for _, d := range f.dispatches {
		if d.ManagerID == managerID && (status == "" || d.Status == status) {
			count++
		}
	}
	return count, nil
}

type fakeRotationRepo struct {
	rotations []*entity.Rotation
}

func (f *fakeRotationRepo) Create(_ context.Context, r *entity.Rotation) error {
	cp := *r
	f.rotations = append(f.rotations, &cp)
	return nil
}

func (f *fakeRotationRepo) GetByID(_ context.Context, id string) (*entity.Rotation, error) {
	for _, r := range f.rotations {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRotationRepo) GetForUpdate(ctx context.Context, id string) (*entity.Rotation, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeRotationRepo) Update(_ context.Context, r *entity.Rotation) error {
	for i, existing := range f.rotations {
		if existing.ID == r.ID {
			cp := *r
			f.rotations[i] = &cp
			return nil
		}
	}
	return fmt.Errorf("rotation %s no existe", r.ID)
}

func (f *fakeRotationRepo) ListByDispatch(_ context.Context, dispatchID string) ([]*entity.Rotation, error) {
	var out []*entity.Rotation
	for _, r := range f.rotations {
		if r.DispatchID == dispatchID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRotationRepo) SumExpectedByDispatch(_ context.Context, dispatchID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, r := range f.rotations {
		if r.DispatchID == dispatchID {
			sum = sum.Add(r.ExpectedQuantity)
		}
	}
	return sum, nil
}

func (f *fakeRotationRepo) ListInTransit(_ context.Context, limit, offset int) ([]*entity.Rotation, error) {
	var out []*entity.Rotation
	for _, r := range f.rotations {
		if r.Status == entity.RotationStatusInTransit {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

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
		if m.OperatorID == operatorID {
			cp := *m
			out = append(out, &cp)
		}
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

func (f *fakeBalanceRepo) set(clientID, productID, warehouseID string, qty decimal.Decimal) {
	f.balances[balanceKey(clientID, productID, warehouseID)] = &entity.StockBalance{
		ID:          uuid.New().String(),
		ClientID:    clientID,
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    qty,
		LastUpdated: time.Now(),
	}
}

func (f *fakeBalanceRepo) quantity(clientID, productID, warehouseID string) decimal.Decimal {
	if b, ok := f.balances[balanceKey(clientID, productID, warehouseID)]; ok {
		return b.Quantity
	}
	return decimal.Zero
}

type fakeClientRepo struct{ clients map[string]*entity.Client }

func (f *fakeClientRepo) Create(_ context.Context, c *entity.Client) error { return nil }
func (f *fakeClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	return f.clients[id], nil
}
func (f *fakeClientRepo) List(_ context.Context, limit, offset int) ([]*entity.Client, error) {
	return nil, nil
}

type fakeProductRepo struct{ products map[string]*entity.Product }

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}

type fakeWarehouseRepo struct{ warehouses map[string]*entity.Warehouse }

func (f *fakeWarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error { return nil }
func (f *fakeWarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	return f.warehouses[id], nil
}
func (f *fakeWarehouseRepo) List(_ context.Context, limit, offset int) ([]*entity.Warehouse, error) {
	return nil, nil
}

type fakeDriverRepo struct{ drivers map[string]*entity.Driver }

func (f *fakeDriverRepo) Create(_ context.Context, d *entity.Driver) error { return nil }
func (f *fakeDriverRepo) GetByID(_ context.Context, id string) (*entity.Driver, error) {
	return f.drivers[id], nil
}
func (f *fakeDriverRepo) List(_ context.Context, limit, offset int) ([]*entity.Driver, error) {
	return nil, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes. Los casos de
// prueba solo ejercitan caminos donde el error ocurre antes de la primera
// mutación, así que no hace falta simular rollback.
type fakeTxRunner struct {
	dispatches *fakeDispatchRepo
	rotations  *fakeRotationRepo
	movements  *fakeMovementRepo
	balances   *fakeBalanceRepo
}

func (f *fakeTxRunner) RunDispatch(ctx context.Context, fn func(
	dispatchRepo repository.DispatchRepository,
	rotationRepo repository.RotationRepository,
	movRepo repository.StockMovementRepository,
	balanceRepo repository.StockBalanceRepository,
) error) error {
	return fn(f.dispatches, f.rotations, f.movements, f.balances)
}

// Identificadores de referencia de las pruebas.
const (
	testManagerID   = "manager-1"
	testOtherMgrID  = "manager-2"
	testOperatorID  = "operator-1"
	testClientID    = "client-1"
	testProductID   = "product-trigo"
	testSourceWH    = "warehouse-puerto"
	testDestWH      = "warehouse-molino"
	testDriverID    = "driver-1"
)

// testEnv arma los dos casos de uso con el mismo juego de fakes.
type testEnv struct {
	dispatchUC *dispatching.DispatchUseCase
	rotationUC *dispatching.RotationUseCase
	dispatches *fakeDispatchRepo
	rotations  *fakeRotationRepo
	movements  *fakeMovementRepo
	balances   *fakeBalanceRepo
}

func newTestEnv() *testEnv {
	dispatches := newFakeDispatchRepo()
	rotations := &fakeRotationRepo{}
	movements := &fakeMovementRepo{}
	balances := newFakeBalanceRepo()
	clients := &fakeClientRepo{clients: map[string]*entity.Client{
		testClientID: {ID: testClientID, Name: "Molinos del Sur", Code: "MOL"},
	}}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		testProductID: {ID: testProductID, Name: "Trigo", Code: "TRG", Unit: "tonnes"},
	}}
	warehouses := &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		testSourceWH: {ID: testSourceWH, Name: "Puerto", Code: "PTO"},
		testDestWH:   {ID: testDestWH, Name: "Molino", Code: "MLN"},
	}}
	drivers := &fakeDriverRepo{drivers: map[string]*entity.Driver{
		testDriverID: {ID: testDriverID, Name: "Pedro", LicenseNumber: "LIC-1"},
	}}

	runner := &fakeTxRunner{dispatches: dispatches, rotations: rotations, movements: movements, balances: balances}
	dispatchUC := dispatching.NewDispatchUseCase(runner, dispatches, rotations, balances, clients, products, warehouses)
	rotationUC := dispatching.NewRotationUseCase(runner, rotations, dispatches, drivers)
	return &testEnv{
		dispatchUC: dispatchUC,
		rotationUC: rotationUC,
		dispatches: dispatches,
		rotations:  rotations,
		movements:  movements,
		balances:   balances,
	}
}

func (e *testEnv) createDispatch(ctx context.Context, total int64) (*entity.Dispatch, error) {
	return e.dispatchUC.CreateDispatch(ctx, dispatching.CreateDispatchInput{
		ManagerID:              testManagerID,
		ClientID:               testClientID,
		ProductID:              testProductID,
		SourceWarehouseID:      testSourceWH,
		DestinationWarehouseID: testDestWH,
		TotalQuantity:          decimal.NewFromInt(total),
	})
}
