package model

import "time"

// CategoryModel mirrors the 'categories' table. The RESTRICT constraint on
// Products backs up the application-level restrict-on-delete check.
type CategoryModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:varchar(500)"`
	// No column default here: gorm omits zero-value fields that carry a
	// default tag, which would silently persist IsActive=false as true.
	// The mapper always writes the value explicitly.
	IsActive bool `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Products []ProductModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
