package repository

import (
	"context"

	"github.com/amirhossein-jamali/point-processor/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/point-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/point-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/point-processor/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PointHistoryRepository implements the append-only history store on
// PostgreSQL using GORM. Sequence ids come from the table's autoincrement.
type PointHistoryRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPointHistoryRepository creates a new PointHistoryRepository instance
func NewPointHistoryRepository(db *gorm.DB, logger coreport.Logger) *PointHistoryRepository {
	return &PointHistoryRepository{
		db:     db,
		logger: logger,
	}
}

// Insert appends one history record and returns it with its assigned id
func (r *PointHistoryRepository) Insert(ctx context.Context, userID uint64, point int64, txType entity.TransactionType, timeMillis int64) (*entity.PointHistory, error) {
	historyModel := model.PointHistory{
		UserID:     userID,
		Point:      point,
		Type:       string(txType),
		TimeMillis: timeMillis,
	}

	result := r.db.WithContext(ctx).Create(&historyModel)
	if result.Error != nil {
		r.logger.Error("Failed to insert point history", map[string]any{
			"user_id": userID,
			"type":    string(txType),
			"error":   result.Error.Error(),
		})
		return nil, database.MapError(result.Error, "inserting point history")
	}

	return historyModel.ToEntity(), nil
}

// SelectAllByUserID returns the user's records in insertion order
func (r *PointHistoryRepository) SelectAllByUserID(ctx context.Context, userID uint64) ([]entity.PointHistory, error) {
	var historyModels []model.PointHistory
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&historyModels)
	if result.Error != nil {
		r.logger.Error("Failed to select point histories", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, database.MapError(result.Error, "selecting point histories")
	}

	histories := make([]entity.PointHistory, 0, len(historyModels))
	for i := range historyModels {
		histories = append(histories, *historyModels[i].ToEntity())
	}
	return histories, nil
}
