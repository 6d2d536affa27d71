package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despachos-api/internal/application/dto"
	"github.com/jhoicas/Despachos-api/internal/application/usecase"
	"github.com/jhoicas/Despachos-api/internal/domain"
)

// MasterDataHandler maneja altas y listados de clientes, productos, almacenes
// y choferes.
type MasterDataHandler struct {
	uc *usecase.MasterDataUseCase
}

// NewMasterDataHandler construye el handler de datos maestros.
func NewMasterDataHandler(uc *usecase.MasterDataUseCase) *MasterDataHandler {
	return &MasterDataHandler{uc: uc}
}

// CreateClient godoc
// @Summary      Crear cliente
// @Tags         masterdata
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "name, code, contact"
// @Success      201   {object}  entity.Client
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *MasterDataHandler) CreateClient(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	client, err := h.uc.CreateClient(c.Context(), in)
	if err != nil {
		return masterError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// ListClients godoc
// @Summary      Listar clientes
// @Tags         masterdata
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Client
// @Router       /api/clients [get]
func (h *MasterDataHandler) ListClients(c *fiber.Ctx) error {
	page := pageFrom(c)
	clients, err := h.uc.ListClients(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return masterError(c, err)
	}
	return c.JSON(clients)
}

// CreateProduct godoc
// @Summary      Crear producto
// @Tags         masterdata
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "name, code, unit"
// @Success      201   {object}  entity.Product
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *MasterDataHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.CreateProduct(c.Context(), in)
	if err != nil {
		return masterError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// ListProducts godoc
// @Summary      Listar productos
// @Tags         masterdata
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Product
// @Router       /api/products [get]
func (h *MasterDataHandler) ListProducts(c *fiber.Ctx) error {
	page := pageFrom(c)
	products, err := h.uc.ListProducts(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return masterError(c, err)
	}
	return c.JSON(products)
}

// CreateWarehouse godoc
// @Summary      Crear almacén
// @Tags         masterdata
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseRequest  true  "name, code, location, capacity"
// @Success      201   {object}  entity.Warehouse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/warehouses [post]
func (h *MasterDataHandler) CreateWarehouse(c *fiber.Ctx) error {
	var in dto.CreateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	warehouse, err := h.uc.CreateWarehouse(c.Context(), in)
	if err != nil {
		return masterError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(warehouse)
}

// ListWarehouses godoc
// @Summary      Listar almacenes
// @Tags         masterdata
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Warehouse
// @Router       /api/warehouses [get]
func (h *MasterDataHandler) ListWarehouses(c *fiber.Ctx) error {
	page := pageFrom(c)
	warehouses, err := h.uc.ListWarehouses(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return masterError(c, err)
	}
	return c.JSON(warehouses)
}

// CreateDriver godoc
// @Summary      Crear chofer
// @Tags         masterdata
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDriverRequest  true  "name, phone, license_number, truck_number, truck_capacity"
// @Success      201   {object}  entity.Driver
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/drivers [post]
func (h *MasterDataHandler) CreateDriver(c *fiber.Ctx) error {
	var in dto.CreateDriverRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	driver, err := h.uc.CreateDriver(c.Context(), in)
	if err != nil {
		return masterError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(driver)
}

// ListDrivers godoc
// @Summary      Listar choferes
// @Tags         masterdata
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Driver
// @Router       /api/drivers [get]
func (h *MasterDataHandler) ListDrivers(c *fiber.Ctx) error {
	page := pageFrom(c)
	drivers, err := h.uc.ListDrivers(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return masterError(c, err)
	}
	return c.JSON(drivers)
}

func pageFrom(c *fiber.Ctx) dto.PageRequest {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	return page
}

func masterError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código ya existe"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
