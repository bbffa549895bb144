package model

import (
	"github.com/amirhossein-jamali/point-processor/internal/domain/entity"
)

// UserPoint represents the database model for user point balances
type UserPoint struct {
	ID           uint64 `gorm:"primaryKey"`
	Point        int64  `gorm:"not null"`
	UpdateMillis int64  `gorm:"not null"`
}

// TableName specifies the table name for UserPoint
func (UserPoint) TableName() string {
	return "user_points"
}

// ToEntity converts the model to a domain entity
func (m *UserPoint) ToEntity() *entity.UserPoint {
	return &entity.UserPoint{
		ID:           m.ID,
		Point:        m.Point,
		UpdateMillis: m.UpdateMillis,
	}
}
