package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogItemModel is the GORM-specific struct for the 'catalog_items' table.
// The catalog is owned by the back office; checkout only reads it and mirrors stock.
type CatalogItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Code      string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	Category  string          `gorm:"type:varchar(128);not null;index"`
	Stock     int             `gorm:"not null;default:0"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CatalogItemModel) TableName() string {
	return "catalog_items"
}
