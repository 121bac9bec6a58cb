package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BehaviorLogModel mirrors the 'behavior_logs' table.
type BehaviorLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ActionType   string    `gorm:"type:varchar(10);not null"`
	PointsChange int       `gorm:"not null"`
	Note         string    `gorm:"type:text;not null;default:''"`
	LoggedBy     uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (BehaviorLogModel) TableName() string {
	return "behavior_logs"
}

// BeforeCreate assigns the primary key.
func (m *BehaviorLogModel) BeforeCreate(*gorm.DB) error {
	newIDIfNil(&m.ID)

	return nil
}
