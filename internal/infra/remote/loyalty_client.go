package remote

import (
	"context"
	"encoding/json"
	"net/http"

	"checkout/config"
	"checkout/internal/domain/entity"
	"checkout/internal/domain/service"
	"checkout/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var maxLoyaltyPercentage = decimal.NewFromInt(100)

type loyaltyResponse struct {
	Eligible   bool            `json:"eligible"`
	Percentage decimal.Decimal `json:"percentage"`
}

type loyaltyClient struct {
	http *httpClient
}

// NewLoyaltyClient creates the client of the loyalty eligibility service.
func NewLoyaltyClient(cfg *config.Config) (service.LoyaltyService, error) {
	client, err := newHTTPClient("loyalty", cfg.Loyalty)
	if err != nil {
		return nil, err
	}

	return &loyaltyClient{http: client}, nil
}

// Eligibility returns the customer's loyalty discount. Unknown customers are not eligible.
func (c *loyaltyClient) Eligibility(ctx context.Context, customerID uuid.UUID) (entity.LoyaltyDiscount, error) {
	req, err := c.http.newRequest(ctx, http.MethodGet, nil, "customers", customerID.String(), "loyalty")
	if err != nil {
		return entity.LoyaltyDiscount{}, err
	}

	status, body, err := c.http.do(req)
	if err != nil {
		return entity.LoyaltyDiscount{}, errors.Wrap(err, "loyalty lookup")
	}
	if status == http.StatusNotFound {
		return entity.LoyaltyDiscount{Percentage: decimal.Zero}, nil
	}
	if !isSuccess(status) {
		return entity.LoyaltyDiscount{}, &StatusError{StatusCode: status, Body: string(body)}
	}

	var resp loyaltyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return entity.LoyaltyDiscount{}, errors.Wrap(err, "decode loyalty response")
	}
	if !resp.Eligible {
		return entity.LoyaltyDiscount{Percentage: decimal.Zero}, nil
	}
	if resp.Percentage.IsNegative() || resp.Percentage.GreaterThan(maxLoyaltyPercentage) {
		return entity.LoyaltyDiscount{}, errors.Errorf("loyalty percentage %s out of range", resp.Percentage)
	}

	return entity.LoyaltyDiscount{Eligible: true, Percentage: resp.Percentage}, nil
}
