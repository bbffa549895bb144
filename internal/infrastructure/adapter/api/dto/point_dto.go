package dto

import (
	"github.com/amirhossein-jamali/point-processor/internal/domain/entity"
)

// AmountRequest is the request body for charge and use operations
type AmountRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// PointResponse represents the API response for a user's balance
type PointResponse struct {
	ID           uint64 `json:"id"`
	Point        int64  `json:"point"`
	UpdateMillis int64  `json:"updateMillis"`
}

// NewPointResponse builds a response from a balance entity
func NewPointResponse(p *entity.UserPoint) PointResponse {
	return PointResponse{
		ID:           p.ID,
		Point:        p.Point,
		UpdateMillis: p.UpdateMillis,
	}
}

// HistoryResponse represents one transaction log entry in API responses
type HistoryResponse struct {
	ID         int64  `json:"id"`
	UserID     uint64 `json:"userId"`
	Point      int64  `json:"point"`
	Type       string `json:"type"`
	TimeMillis int64  `json:"timeMillis"`
}

// NewHistoryResponses converts history entities to API responses
func NewHistoryResponses(histories []entity.PointHistory) []HistoryResponse {
	responses := make([]HistoryResponse, 0, len(histories))
	for _, h := range histories {
		responses = append(responses, HistoryResponse{
			ID:         h.ID,
			UserID:     h.UserID,
			Point:      h.Point,
			Type:       string(h.Type),
			TimeMillis: h.TimeMillis,
		})
	}
	return responses
}
