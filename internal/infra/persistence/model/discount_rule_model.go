package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// DiscountRuleModel is the GORM-specific struct for the 'discount_rules' table.
type DiscountRuleModel struct {
	ID         uuid.UUID                      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name       string                         `gorm:"type:varchar(255);not null"`
	Scope      string                         `gorm:"type:varchar(32);not null"`
	ItemIDs    datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb"`
	Categories datatypes.JSONSlice[string]    `gorm:"type:jsonb"`
	Kind       string                         `gorm:"type:varchar(32);not null"`
	Value      decimal.Decimal                `gorm:"type:numeric(12,2);not null"`
	StartsAt   time.Time                      `gorm:"not null"`
	EndsAt     time.Time                      `gorm:"not null"`
	Enabled    bool                           `gorm:"not null;default:true;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DiscountRuleModel) TableName() string {
	return "discount_rules"
}
