package repository

import (
	"context"

	"checkout/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrCustomerNotFound is returned when no customer has the national id.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicateCustomer is returned when the national id is already registered.
	ErrDuplicateCustomer = errors.New("customer already exists")
)

// CustomerRepository is the local customer store.
type CustomerRepository interface {
	// FindByNationalID looks a customer up by national identity number.
	FindByNationalID(ctx context.Context, nationalID string) (*entity.Customer, error)

	// CreateCustomer registers a customer and assigns its local identifier.
	CreateCustomer(ctx context.Context, customer *entity.Customer) error
}
