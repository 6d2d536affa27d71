package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despachos-api/internal/application/dto"
	"github.com/jhoicas/Despachos-api/internal/application/ledger"
)

// StockHandler maneja saldos, entradas/salidas directas y el log de movimientos.
type StockHandler struct {
	uc *ledger.UseCase
}

// NewStockHandler construye el handler de stock.
func NewStockHandler(uc *ledger.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// GetBalance godoc
// @Summary      Saldo de un cliente/producto/almacén
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        client_id     query  string  true  "ID del cliente"
// @Param        product_id    query  string  true  "ID del producto"
// @Param        warehouse_id  query  string  true  "ID del almacén"
// @Success      200  {object}  dto.BalanceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/balance [get]
func (h *StockHandler) GetBalance(c *fiber.Ctx) error {
	clientID := c.Query("client_id")
	productID := c.Query("product_id")
	warehouseID := c.Query("warehouse_id")
	if clientID == "" || productID == "" || warehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_id, product_id y warehouse_id son requeridos"})
	}
	quantity, err := h.uc.GetBalance(c.Context(), clientID, productID, warehouseID)
	if err != nil {
		return dispatchError(c, err)
	}
	return c.JSON(dto.BalanceResponse{
		ClientID:    clientID,
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    quantity,
	})
}

// ListWarehouseBalances godoc
// @Summary      Saldos presentes en un almacén
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del almacén"
// @Param        limit   query  int     false  "Máx resultados (def 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200     {array}  dto.BalanceResponse
// @Router       /api/stock/warehouses/{id}/balances [get]
func (h *StockHandler) ListWarehouseBalances(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	balances, err := h.uc.ListBalancesByWarehouse(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return dispatchError(c, err)
	}
	out := make([]dto.BalanceResponse, 0, len(balances))
	for _, b := range balances {
		out = append(out, dto.BalanceResponse{
			ClientID:    b.ClientID,
			ProductID:   b.ProductID,
			WarehouseID: b.WarehouseID,
			Quantity:    b.Quantity,
		})
	}
	return c.JSON(out)
}

// DirectEntry godoc
// @Summary      Registrar entrada directa (sin despacho)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DirectMovementRequest  true  "client_id, product_id, warehouse_id, quantity, reference, notes"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/entries [post]
func (h *StockHandler) DirectEntry(c *fiber.Ctx) error {
	return h.direct(c, h.uc.DirectEntry)
}

// DirectExit godoc
// @Summary      Registrar salida directa (sin despacho)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DirectMovementRequest  true  "client_id, product_id, warehouse_id, quantity, reference, notes"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/exits [post]
func (h *StockHandler) DirectExit(c *fiber.Ctx) error {
	return h.direct(c, h.uc.DirectExit)
}

func (h *StockHandler) direct(c *fiber.Ctx, record func(ctx context.Context, in ledger.DirectMovementInput) (string, error)) error {
	var in dto.DirectMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movementID, err := record(c.Context(), ledger.DirectMovementInput{
		ClientID:    in.ClientID,
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		Reference:   in.Reference,
		OperatorID:  GetUserID(c),
		Notes:       in.Notes,
	})
	if err != nil {
		return dispatchError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"movement_id": movementID})
}

// ListMovements godoc
// @Summary      Historial de movimientos de una clave
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        client_id     query  string  true  "ID del cliente"
// @Param        product_id    query  string  true  "ID del producto"
// @Param        warehouse_id  query  string  true  "ID del almacén"
// @Success      200  {array}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	clientID := c.Query("client_id")
	productID := c.Query("product_id")
	warehouseID := c.Query("warehouse_id")
	if clientID == "" || productID == "" || warehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_id, product_id y warehouse_id son requeridos"})
	}
	movements, err := h.uc.ListMovementsByKey(c.Context(), clientID, productID, warehouseID)
	if err != nil {
		return dispatchError(c, err)
	}
	return c.JSON(toMovementResponses(movements))
}

// MyMovements godoc
// @Summary      Movimientos del operador autenticado
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "Fecha inicial (RFC3339)"
// @Param        to      query  string  false  "Fecha final (RFC3339)"
// @Param        limit   query  int     false  "Máx resultados (def 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200     {array}  dto.MovementResponse
// @Router       /api/stock/movements/mine [get]
func (h *StockHandler) MyMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()

	var from, to *time.Time
	if s := c.Query("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC3339"})
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC3339"})
		}
		to = &t
	}

	movements, err := h.uc.ListMovementsByOperator(c.Context(), GetUserID(c), from, to, page.Limit, page.Offset)
	if err != nil {
		return dispatchError(c, err)
	}
	return c.JSON(toMovementResponses(movements))
}
