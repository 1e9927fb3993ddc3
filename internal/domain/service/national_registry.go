package service

import (
	"context"
	"encoding/json"
)

// RegistryResult is the answer of the national registry. Success false carries an optional
// message for the operator.
type RegistryResult struct {
	Success bool
	Name    string
	Message string
	Raw     json.RawMessage
}

// NationalRegistry looks people up by national identity number.
// An error means the registry could not be reached or answered garbage.
type NationalRegistry interface {
	Lookup(ctx context.Context, nationalID string) (*RegistryResult, error)
}
