package model

import "github.com/google/uuid"

// ProductModel mirrors the 'products' table. IsDeleted is the soft-delete
// flag: reads filter on it, deletes set it, the row stays.
type ProductModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:varchar(1000)"`
	Price       float64   `gorm:"type:numeric(18,2);not null"`
	Stock       int       `gorm:"not null"`
	ImageURL    string    `gorm:"type:varchar(500)"`
	CategoryID  int64     `gorm:"not null;index"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	IsDeleted   bool      `gorm:"not null;default:false;index"`
	AuditFields

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
	User     *UserModel     `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
