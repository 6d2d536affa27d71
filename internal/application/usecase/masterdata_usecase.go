package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Despachos-api/internal/application/dto"
	"github.com/jhoicas/Despachos-api/internal/domain"
	"github.com/jhoicas/Despachos-api/internal/domain/entity"
	"github.com/jhoicas/Despachos-api/internal/domain/repository"
)

// MasterDataUseCase altas y consultas de datos maestros (clientes, productos,
// almacenes, choferes). Sin invariantes más allá de unicidad de códigos: son
// los colaboradores de referencia que el núcleo solo consulta.
type MasterDataUseCase struct {
	clientRepo    repository.ClientRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	driverRepo    repository.DriverRepository
}

// NewMasterDataUseCase construye el caso de uso de datos maestros.
func NewMasterDataUseCase(
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	driverRepo repository.DriverRepository,
) *MasterDataUseCase {
	return &MasterDataUseCase{
		clientRepo:    clientRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		driverRepo:    driverRepo,
	}
}

// CreateClient alta de cliente.
func (uc *MasterDataUseCase) CreateClient(ctx context.Context, in dto.CreateClientRequest) (*entity.Client, error) {
	if in.Name == "" || in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Code:      in.Code,
		Contact:   in.Contact,
		CreatedAt: time.Now(),
	}
	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// ListClients lista clientes.
func (uc *MasterDataUseCase) ListClients(ctx context.Context, limit, offset int) ([]*entity.Client, error) {
	return uc.clientRepo.List(ctx, limit, offset)
}

// CreateProduct alta de producto; unidad por defecto: toneladas.
func (uc *MasterDataUseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	unit := in.Unit
	if unit == "" {
		unit = "tonnes"
	}
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Code:      in.Code,
		Unit:      unit,
		CreatedAt: time.Now(),
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListProducts lista productos.
func (uc *MasterDataUseCase) ListProducts(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.List(ctx, limit, offset)
}

// CreateWarehouse alta de almacén.
func (uc *MasterDataUseCase) CreateWarehouse(ctx context.Context, in dto.CreateWarehouseRequest) (*entity.Warehouse, error) {
	if in.Name == "" || in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Code:      in.Code,
		Location:  in.Location,
		Capacity:  in.Capacity,
		CreatedAt: time.Now(),
	}
	if err := uc.warehouseRepo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// ListWarehouses lista almacenes.
func (uc *MasterDataUseCase) ListWarehouses(ctx context.Context, limit, offset int) ([]*entity.Warehouse, error) {
	return uc.warehouseRepo.List(ctx, limit, offset)
}

// CreateDriver alta de chofer.
func (uc *MasterDataUseCase) CreateDriver(ctx context.Context, in dto.CreateDriverRequest) (*entity.Driver, error) {
	if in.Name == "" || in.LicenseNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	driver := &entity.Driver{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Phone:         in.Phone,
		LicenseNumber: in.LicenseNumber,
		TruckNumber:   in.TruckNumber,
		TruckCapacity: in.TruckCapacity,
		CreatedAt:     time.Now(),
	}
	if err := uc.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

// ListDrivers lista choferes.
func (uc *MasterDataUseCase) ListDrivers(ctx context.Context, limit, offset int) ([]*entity.Driver, error) {
	return uc.driverRepo.List(ctx, limit, offset)
}
