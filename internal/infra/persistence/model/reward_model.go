package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RewardModel mirrors the 'rewards' table.
type RewardModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	Cost        int       `gorm:"not null"`
	Icon        string    `gorm:"type:varchar(16);not null"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RewardModel) TableName() string {
	return "rewards"
}

// BeforeCreate assigns the primary key.
func (m *RewardModel) BeforeCreate(*gorm.DB) error {
	newIDIfNil(&m.ID)

	return nil
}

// RedemptionModel mirrors the 'redemptions' table. reward_id carries no foreign key; the
// title and cost are snapshots taken when the kid redeemed.
type RedemptionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	RewardID    uuid.UUID `gorm:"type:uuid;not null"`
	RewardTitle string    `gorm:"type:varchar(200);not null"`
	Cost        int       `gorm:"not null"`
	Status      string    `gorm:"type:varchar(10);not null;default:PENDING"`
	ClaimedAt   time.Time `gorm:"not null"`
	ProcessedAt *time.Time
	ProcessedBy *uuid.UUID `gorm:"type:uuid"`
}

// TableName explicitly sets the table name for GORM.
func (RedemptionModel) TableName() string {
	return "redemptions"
}

// BeforeCreate assigns the primary key.
func (m *RedemptionModel) BeforeCreate(*gorm.DB) error {
	newIDIfNil(&m.ID)

	return nil
}
