package http

import (
	"github.com/jhoicas/Despachos-api/internal/application/dto"
	"github.com/jhoicas/Despachos-api/internal/domain/entity"
)

// Conversión entidad -> DTO de respuesta.

func toDispatchResponse(d *entity.Dispatch, rotations []*entity.Rotation) dto.DispatchResponse {
	resp := dto.DispatchResponse{
		ID:                     d.ID,
		DispatchNumber:         d.DispatchNumber,
		ManagerID:              d.ManagerID,
		ClientID:               d.ClientID,
		ProductID:              d.ProductID,
		SourceWarehouseID:      d.SourceWarehouseID,
		DestinationWarehouseID: d.DestinationWarehouseID,
		TotalQuantity:          d.TotalQuantity,
		Status:                 d.Status,
		CreatedAt:              d.CreatedAt,
		CompletedAt:            d.CompletedAt,
	}
	for _, r := range rotations {
		resp.Rotations = append(resp.Rotations, toRotationResponse(r))
	}
	return resp
}

func toRotationResponse(r *entity.Rotation) dto.RotationResponse {
	return dto.RotationResponse{
		ID:                r.ID,
		DispatchID:        r.DispatchID,
		DriverID:          r.DriverID,
		RotationNumber:    r.RotationNumber,
		ExpectedQuantity:  r.ExpectedQuantity,
		DeliveredQuantity: r.DeliveredQuantity,
		Status:            r.Status,
		DepartureTime:     r.DepartureTime,
		ArrivalTime:       r.ArrivalTime,
		Discrepancy:       r.Discrepancy,
		Notes:             r.Notes,
	}
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		Type:        m.Type,
		ProductID:   m.ProductID,
		WarehouseID: m.WarehouseID,
		ClientID:    m.ClientID,
		RotationID:  m.RotationID,
		Quantity:    m.Quantity,
		Reference:   m.Reference,
		OperatorID:  m.OperatorID,
		CreatedAt:   m.CreatedAt,
		Notes:       m.Notes,
	}
}

func toMovementResponses(movements []*entity.StockMovement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return out
}
