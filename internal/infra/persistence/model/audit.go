// Package model contains the GORM persistence models mirroring the database
// schema. Domain entities never carry gorm tags; these types do.
package model

import (
	"time"

	deliverycontext "storefront/internal/delivery/context"

	"gorm.io/gorm"
)

// AuditFields is embedded by every mutable model. CreatedAt/UpdatedAt are
// stamped by GORM at insert/update; CreatedBy/UpdatedBy are stamped here from
// the caller identity placed in the statement context by the delivery layer.
// Application code never writes these fields directly.
type AuditFields struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string `gorm:"type:varchar(64)"`
	UpdatedBy string `gorm:"type:varchar(64)"`
}

// BeforeCreate stamps the creating actor immediately before insert.
func (f *AuditFields) BeforeCreate(tx *gorm.DB) error {
	if actor := deliverycontext.GetActor(tx.Statement.Context); actor != "" {
		f.CreatedBy = actor
		f.UpdatedBy = actor
	}

	return nil
}

// BeforeUpdate stamps the updating actor immediately before commit.
// SetColumn reaches map-based Updates as well as struct updates; assigning
// the struct field would be ignored when the SET clause is built from a map.
func (f *AuditFields) BeforeUpdate(tx *gorm.DB) error {
	if actor := deliverycontext.GetActor(tx.Statement.Context); actor != "" {
		tx.Statement.SetColumn("updated_by", actor)
	}

	return nil
}
