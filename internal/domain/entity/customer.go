package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Customer is a locally registered buyer identified by a national identity number.
type Customer struct {
	ID         uuid.UUID `json:"id"`          // Local record identifier.
	NationalID string    `json:"national_id"` // 8 digit national identity number.
	Name       string    `json:"name"`
	Phone      *string   `json:"phone,omitempty"`
	Email      *string   `json:"email,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CustomerMatch is the outcome of a successful lookup: either ExistingCustomer or
// PendingRegistration.
type CustomerMatch interface {
	NationalIdentity() string
	DisplayName() string
	customerMatch()
}

// ExistingCustomer is a customer found in the local store.
type ExistingCustomer struct {
	Customer Customer
}

func (m ExistingCustomer) NationalIdentity() string { return m.Customer.NationalID }
func (m ExistingCustomer) DisplayName() string      { return m.Customer.Name }
func (ExistingCustomer) customerMatch()             {}

// PendingRegistration is a person found in the national registry but not yet stored locally.
type PendingRegistration struct {
	NationalID  string
	Name        string
	RegistryRaw json.RawMessage
}

func (m PendingRegistration) NationalIdentity() string { return m.NationalID }
func (m PendingRegistration) DisplayName() string      { return m.Name }
func (PendingRegistration) customerMatch()             {}
