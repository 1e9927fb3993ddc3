package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type checkoutRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,payment_method"`
}

type selectionRequest struct {
	ItemID string `json:"item_id" validate:"required,uuid"`
}

func TestCustomValidator(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&checkoutRequest{PaymentMethod: "card"}))
	assert.NoError(t, v.Validate(&selectionRequest{ItemID: "0b5d9c2e-6f1a-4d8e-9a57-4c1f2e3d4b5a"}))

	err := v.Validate(&checkoutRequest{PaymentMethod: "bitcoin"})
	assert.EqualError(t, err, "payment_method must be one of cash, card, transfer")

	err = v.Validate(&checkoutRequest{})
	assert.EqualError(t, err, "payment_method is required")

	err = v.Validate(&selectionRequest{ItemID: "nope"})
	assert.EqualError(t, err, "item_id must be a UUID")
}
