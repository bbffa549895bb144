package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/point-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/point-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/point-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/point-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/point-processor/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserPointRepository implements the balance store on PostgreSQL using GORM
type UserPointRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserPointRepository creates a new UserPointRepository instance
func NewUserPointRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserPointRepository {
	return &UserPointRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// SelectByID retrieves the balance record for a user. A missing row maps to
// the zero-valued record, matching the store contract.
func (r *UserPointRepository) SelectByID(ctx context.Context, userID uint64) (*entity.UserPoint, error) {
	var pointModel model.UserPoint
	result := r.db.WithContext(ctx).First(&pointModel, userID)
	if result.Error != nil {
		mapped := database.MapError(result.Error, "selecting user point")
		if errors.Is(mapped, errs.ErrUserPointNotFound) {
			return entity.EmptyUserPoint(userID, r.timeProvider.NowUnixMilli()), nil
		}
		r.logger.Error("Failed to select user point", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, mapped
	}

	return pointModel.ToEntity(), nil
}

// InsertOrUpdate atomically upserts the user's balance with a fresh timestamp
func (r *UserPointRepository) InsertOrUpdate(ctx context.Context, userID uint64, point int64) (*entity.UserPoint, error) {
	pointModel := model.UserPoint{
		ID:           userID,
		Point:        point,
		UpdateMillis: r.timeProvider.NowUnixMilli(),
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"point", "update_millis"}),
	}).Create(&pointModel)
	if result.Error != nil {
		r.logger.Error("Failed to upsert user point", map[string]any{
			"user_id": userID,
			"point":   point,
			"error":   result.Error.Error(),
		})
		return nil, database.MapError(result.Error, "upserting user point")
	}

	return pointModel.ToEntity(), nil
}
