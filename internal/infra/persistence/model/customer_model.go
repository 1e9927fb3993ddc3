package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NationalID string    `gorm:"type:char(8);not null;uniqueIndex"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Phone      *string   `gorm:"type:varchar(32)"`
	Email      *string   `gorm:"type:varchar(255)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
