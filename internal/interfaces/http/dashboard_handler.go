package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despachos-api/internal/application/dashboard"
	"github.com/jhoicas/Despachos-api/internal/application/dto"
)

// DashboardHandler maneja los tableros de manager y operador.
type DashboardHandler struct {
	uc *dashboard.UseCase
}

// NewDashboardHandler construye el handler de tableros.
func NewDashboardHandler(uc *dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Manager godoc
// @Summary      Tablero del manager: despachos por estado y recientes
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ManagerDashboardResponse
// @Router       /api/dashboard/manager [get]
func (h *DashboardHandler) Manager(c *fiber.Ctx) error {
	stats, err := h.uc.ManagerDashboard(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	resp := dto.ManagerDashboardResponse{
		TotalDispatches:      stats.Total,
		PendingDispatches:    stats.Pending,
		InProgressDispatches: stats.InProgress,
		CompletedDispatches:  stats.Completed,
	}
	for _, d := range stats.RecentDispatches {
		resp.RecentDispatches = append(resp.RecentDispatches, toDispatchResponse(d, nil))
	}
	return c.JSON(resp)
}

// Operator godoc
// @Summary      Tablero del operador: tonelaje del día y movimientos recientes
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OperatorDashboardResponse
// @Router       /api/dashboard/operator [get]
func (h *DashboardHandler) Operator(c *fiber.Ctx) error {
	stats, err := h.uc.OperatorDashboard(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.OperatorDashboardResponse{
		ReceivedToday:   stats.ReceivedToday,
		DeliveredToday:  stats.DeliveredToday,
		RecentMovements: toMovementResponses(stats.RecentMovements),
	})
}
