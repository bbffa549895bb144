package model

import (
	"github.com/amirhossein-jamali/point-processor/internal/domain/entity"
)

// PointHistory represents the database model for transaction history records
type PointHistory struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	UserID     uint64 `gorm:"not null;index"`
	Point      int64  `gorm:"not null"`
	Type       string `gorm:"not null;size:16"`
	TimeMillis int64  `gorm:"not null"`
}

// TableName specifies the table name for PointHistory
func (PointHistory) TableName() string {
	return "point_histories"
}

// ToEntity converts the model to a domain entity
func (m *PointHistory) ToEntity() *entity.PointHistory {
	return &entity.PointHistory{
		ID:         m.ID,
		UserID:     m.UserID,
		Point:      m.Point,
		Type:       entity.TransactionType(m.Type),
		TimeMillis: m.TimeMillis,
	}
}
