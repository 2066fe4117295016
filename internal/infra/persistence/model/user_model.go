package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(100)"`
	LastName     string    `gorm:"type:varchar(100)"`
	// No column default: gorm would skip the zero value on insert and the
	// default would win. The mapper always writes the flag explicitly.
	IsActive bool `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Products []ProductModel `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Orders   []OrderModel   `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns the user ID when the caller has not set one.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
