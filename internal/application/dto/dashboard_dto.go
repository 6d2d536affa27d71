package dto

import "github.com/shopspring/decimal"

// ManagerDashboardResponse estadísticas del tablero de un manager.
type ManagerDashboardResponse struct {
	TotalDispatches      int                `json:"total_dispatches"`
	PendingDispatches    int                `json:"pending_dispatches"`
	InProgressDispatches int                `json:"in_progress_dispatches"`
	CompletedDispatches  int                `json:"completed_dispatches"`
	RecentDispatches     []DispatchResponse `json:"recent_dispatches"`
}

// OperatorDashboardResponse estadísticas del tablero de un operador.
type OperatorDashboardResponse struct {
	ReceivedToday   decimal.Decimal    `json:"received_today"`
	DeliveredToday  decimal.Decimal    `json:"delivered_today"`
	RecentMovements []MovementResponse `json:"recent_movements"`
}
