package handler

import (
	"net/http"
	"strconv"

	"github.com/amirhossein-jamali/point-processor/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/point-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/point-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/point-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/point-processor/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PointHandler handles point-related HTTP requests
type PointHandler struct {
	pointUseCase usecase.PointUseCase
	logger       coreport.Logger
}

// NewPointHandler creates a new point handler instance
func NewPointHandler(pointUseCase usecase.PointUseCase, logger coreport.Logger) *PointHandler {
	return &PointHandler{
		pointUseCase: pointUseCase,
		logger:       logger,
	}
}

// GetPoint handles the GET /point/:id endpoint
func (h *PointHandler) GetPoint(c *gin.Context) {
	userID, ok := h.parseUserID(c)
	if !ok {
		return
	}

	userPoint, err := h.pointUseCase.GetPoint(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPointResponse(userPoint))
}

// GetHistories handles the GET /point/:id/histories endpoint
func (h *PointHandler) GetHistories(c *gin.Context) {
	userID, ok := h.parseUserID(c)
	if !ok {
		return
	}

	histories, err := h.pointUseCase.GetHistories(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewHistoryResponses(histories))
}

// Charge handles the PATCH /point/:id/charge endpoint
func (h *PointHandler) Charge(c *gin.Context) {
	h.mutate(c, entity.TypeCharge)
}

// Use handles the PATCH /point/:id/use endpoint
func (h *PointHandler) Use(c *gin.Context) {
	h.mutate(c, entity.TypeUse)
}

// mutate runs the shared request plumbing for charge and use
func (h *PointHandler) mutate(c *gin.Context, txType entity.TransactionType) {
	userID, ok := h.parseUserID(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidAmount,
			Message: "Invalid request body",
		})
		return
	}

	var (
		userPoint *entity.UserPoint
		err       error
	)
	if txType == entity.TypeCharge {
		userPoint, err = h.pointUseCase.Charge(c.Request.Context(), userID, req.Amount)
	} else {
		userPoint, err = h.pointUseCase.Use(c.Request.Context(), userID, req.Amount)
	}
	if err != nil {
		h.respondError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPointResponse(userPoint))
}

// parseUserID extracts the path user id, writing a 400 response when malformed
func (h *PointHandler) parseUserID(c *gin.Context) (uint64, bool) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidUserID,
			Message: "Invalid user ID format",
		})
		return 0, false
	}
	return userID, true
}

// respondError maps domain errors to HTTP status codes
func (h *PointHandler) respondError(c *gin.Context, userID uint64, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case domainerr.IsValidationError(err):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case domainerr.IsInsufficientPointError(err):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case domainerr.IsLockTimeoutError(err):
		// Transient contention; the caller may retry with backoff
		statusCode = http.StatusConflict
		message = "Operation timed out due to concurrent requests for this user. Please try again."
	}

	h.logger.Error("Point request failed", map[string]any{
		"user_id":     userID,
		"status_code": statusCode,
		"error":       err.Error(),
	})

	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
