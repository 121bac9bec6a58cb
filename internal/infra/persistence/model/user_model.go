package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"type:varchar(150);unique;not null"`
	Email     string    `gorm:"type:varchar(255);not null;default:''"`
	Name      string    `gorm:"type:varchar(100);not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Profile *ProfileModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns the primary key.
func (m *UserModel) BeforeCreate(*gorm.DB) error {
	newIDIfNil(&m.ID)

	return nil
}

// ProfileModel mirrors the 'profiles' table. UserID is both the primary key and a reference to users.id.
type ProfileModel struct {
	UserID    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Role      string     `gorm:"type:varchar(10);not null;default:PARENT"`
	Points    int        `gorm:"not null;default:0"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
