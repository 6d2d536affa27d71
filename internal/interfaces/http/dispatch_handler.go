package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despachos-api/internal/application/dispatching"
	"github.com/jhoicas/Despachos-api/internal/application/dto"
	"github.com/jhoicas/Despachos-api/internal/domain"
)

// DispatchHandler maneja el ciclo de vida de despachos (manager/admin).
type DispatchHandler struct {
	dispatchUC *dispatching.DispatchUseCase
	rotationUC *dispatching.RotationUseCase
}

// NewDispatchHandler construye el handler de despachos.
func NewDispatchHandler(dispatchUC *dispatching.DispatchUseCase, rotationUC *dispatching.RotationUseCase) *DispatchHandler {
	return &DispatchHandler{dispatchUC: dispatchUC, rotationUC: rotationUC}
}

// Create godoc
// @Summary      Crear despacho
// @Tags         dispatches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDispatchRequest  true  "client_id, product_id, source_warehouse_id, destination_warehouse_id, total_quantity"
// @Success      201   {object}  dto.DispatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/dispatches [post]
func (h *DispatchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDispatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	dispatch, err := h.dispatchUC.CreateDispatch(c.Context(), dispatching.CreateDispatchInput{
		ManagerID:              GetUserID(c),
		ClientID:               in.ClientID,
		ProductID:              in.ProductID,
		SourceWarehouseID:      in.SourceWarehouseID,
		DestinationWarehouseID: in.DestinationWarehouseID,
		TotalQuantity:          in.TotalQuantity,
	})
	if err != nil {
		return dispatchError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toDispatchResponse(dispatch, nil))
}

// List godoc
// @Summary      Listar despachos del manager
// @Tags         dispatches
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "pending | in_progress | completed | cancelled"
// @Param        limit   query  int     false  "Máx resultados (def 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200     {array}  dto.DispatchResponse
// @Router       /api/dispatches [get]
func (h *DispatchHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	dispatches, err := h.dispatchUC.ListDispatches(c.Context(), GetUserID(c), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return dispatchError(c, err)
	}
	out := make([]dto.DispatchResponse, 0, len(dispatches))
	for _, d := range dispatches {
		out = append(out, toDispatchResponse(d, nil))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de despacho con sus rotaciones
// @Tags         dispatches
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del despacho"
// @Success      200  {object}  dto.DispatchResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dispatches/{id} [get]
func (h *DispatchHandler) GetByID(c *fiber.Ctx) error {
	dispatch, rotations, err := h.dispatchUC.GetDispatch(c.Context(), GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		return dispatchError(c, err)
	}
	return c.JSON(toDispatchResponse(dispatch, rotations))
}

// Cancel godoc
// @Summary      Cancelar despacho activo
// @Tags         dispatches
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del despacho"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dispatches/{id}/cancel [post]
func (h *DispatchHandler) Cancel(c *fiber.Ctx) error {
	if err := h.dispatchUC.CancelDispatch(c.Context(), GetUserID(c), GetRole(c), c.Params("id")); err != nil {
		return dispatchError(c, err)
	}
	return c.JSON(fiber.Map{"message": "despacho cancelado"})
}

// Delete godoc
// @Summary      Borrar despacho cancelado (solo admin)
// @Tags         dispatches
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del despacho"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dispatches/{id} [delete]
func (h *DispatchHandler) Delete(c *fiber.Ctx) error {
	if err := h.dispatchUC.DeleteDispatch(c.Context(), GetRole(c), c.Params("id")); err != nil {
		return dispatchError(c, err)
	}
	return c.JSON(fiber.Map{"message": "despacho eliminado"})
}

// AddRotation godoc
// @Summary      Agregar rotación a un despacho
// @Tags         dispatches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del despacho"
// @Param        body  body  dto.AddRotationRequest  true  "driver_id, expected_quantity"
// @Success      201   {object}  dto.RotationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/dispatches/{id}/rotations [post]
func (h *DispatchHandler) AddRotation(c *fiber.Ctx) error {
	var in dto.AddRotationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rotation, err := h.rotationUC.AddRotation(c.Context(), GetUserID(c), GetRole(c), c.Params("id"), in.DriverID, in.ExpectedQuantity)
	if err != nil {
		return dispatchError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toRotationResponse(rotation))
}

// dispatchError traduce errores de dominio del flujo de despachos a HTTP.
func dispatchError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidQuantity:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la cantidad debe ser mayor que cero"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente en el almacén origen"})
	case domain.ErrOverAllocation:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OVER_ALLOCATION", Message: "las rotaciones superan la cantidad total del despacho"})
	case domain.ErrInvalidTransition:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "el estado del despacho no permite la operación"})
	case domain.ErrAlreadyProcessed:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_PROCESSED", Message: "la rotación ya fue recibida"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
