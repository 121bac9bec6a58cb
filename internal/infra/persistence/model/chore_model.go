package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChoreModel mirrors the 'chores' table.
type ChoreModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	PointsValue int       `gorm:"not null"`
	AssignedTo  uuid.UUID `gorm:"type:uuid;not null;index"`
	ChoreType   string    `gorm:"type:varchar(10);not null;default:ONE_TIME"`
	Icon        string    `gorm:"type:varchar(16);not null"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChoreModel) TableName() string {
	return "chores"
}

// BeforeCreate assigns the primary key.
func (m *ChoreModel) BeforeCreate(*gorm.DB) error {
	newIDIfNil(&m.ID)

	return nil
}

// ChoreCompletionModel mirrors the 'chore_completions' table. chore_id carries no foreign key
// so completions outlive the chores they record. The partial unique index
// idx_completion_user_chore_date covers (user_id, chore_id, completed_on) of DAILY rows only.
type ChoreCompletionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null"`
	ChoreID      uuid.UUID `gorm:"type:uuid;not null"`
	ChoreTitle   string    `gorm:"type:varchar(200);not null"`
	PointsEarned int       `gorm:"not null"`
	ChoreType    string    `gorm:"type:varchar(10);not null"`
	CompletedAt  time.Time `gorm:"not null"`
	CompletedOn  string    `gorm:"type:varchar(10);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ChoreCompletionModel) TableName() string {
	return "chore_completions"
}

// BeforeCreate assigns the primary key.
func (m *ChoreCompletionModel) BeforeCreate(*gorm.DB) error {
	newIDIfNil(&m.ID)

	return nil
}
