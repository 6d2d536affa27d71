package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despachos-api/internal/application/dispatching"
	"github.com/jhoicas/Despachos-api/internal/application/dto"
)

// RotationHandler maneja la recepción de rotaciones (operador).
type RotationHandler struct {
	uc *dispatching.RotationUseCase
}

// NewRotationHandler construye el handler de rotaciones.
func NewRotationHandler(uc *dispatching.RotationUseCase) *RotationHandler {
	return &RotationHandler{uc: uc}
}

// Receive godoc
// @Summary      Recibir una rotación en destino
// @Description  Concilia la entrega: fija cantidad entregada, discrepancia y
//               estado, registra la entrada en el almacén destino y debita el
//               origen. Cierra el despacho si todas sus rotaciones quedaron
//               resueltas.
// @Tags         rotations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID de la rotación"
// @Param        body  body  dto.ReceiveRotationRequest  true  "delivered_quantity, notes"
// @Success      200   {object}  dto.ReceiveRotationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/rotations/{id}/receive [post]
func (h *RotationHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveRotationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.ReceiveRotation(c.Context(), GetUserID(c), c.Params("id"), in.DeliveredQuantity, in.Notes)
	if err != nil {
		return dispatchError(c, err)
	}
	return c.JSON(dto.ReceiveRotationResponse{
		Rotation:       toRotationResponse(result.Rotation),
		Discrepancy:    result.Discrepancy,
		DispatchStatus: result.DispatchStatus,
	})
}

// Pending godoc
// @Summary      Rotaciones en tránsito pendientes de recepción
// @Tags         rotations
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máx resultados (def 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200     {array}  dto.RotationResponse
// @Router       /api/rotations/pending [get]
func (h *RotationHandler) Pending(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	rotations, err := h.uc.ListPendingRotations(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return dispatchError(c, err)
	}
	out := make([]dto.RotationResponse, 0, len(rotations))
	for _, r := range rotations {
		out = append(out, toRotationResponse(r))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de una rotación
// @Tags         rotations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la rotación"
// @Success      200  {object}  dto.RotationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rotations/{id} [get]
func (h *RotationHandler) GetByID(c *fiber.Ctx) error {
	rotation, err := h.uc.GetRotation(c.Context(), c.Params("id"))
	if err != nil {
		return dispatchError(c, err)
	}
	return c.JSON(toRotationResponse(rotation))
}
