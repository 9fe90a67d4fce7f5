package order

import (
	"github.com/jhoicas/Cafeteria-api/internal/application/dto"
	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
)

func toOrderResponse(o *entity.Order, items []*entity.OrderItem, history []*entity.OrderHistory) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:             o.ID,
		Number:         o.Number,
		Type:           o.Type,
		Status:         o.Status,
		Total:          o.Total,
		Notes:          o.Notes,
		CustomerName:   o.CustomerName,
		CustomerPhone:  o.CustomerPhone,
		Address:        o.Address,
		ExternalNumber: o.ExternalNumber,
		UserID:         o.UserID,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		Items:          make([]dto.OrderItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:              it.ID,
			ProductID:       it.ProductID,
			ProductName:     it.ProductName,
			ProductCategory: it.ProductCategory,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			Subtotal:        it.Subtotal,
		})
	}
	for _, h := range history {
		entry := dto.OrderHistoryResponse{
			ID:        h.ID,
			NewStatus: h.NewStatus,
			UserID:    h.UserID,
			UserName:  h.UserName,
			CreatedAt: h.CreatedAt,
		}
		if h.PreviousStatus != "" {
			prev := h.PreviousStatus
			entry.PreviousStatus = &prev
		}
		resp.History = append(resp.History, entry)
	}
	return resp
}
