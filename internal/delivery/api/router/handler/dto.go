package handler

import (
	"time"

	"checkout/internal/delivery/api/response"
	deliverycontext "checkout/internal/delivery/context"
	"checkout/internal/domain/checkout"
	"checkout/internal/domain/constants"
	"checkout/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const displayPlaces = 2

// SessionResponse is the JSON form of a checkout session.
type SessionResponse struct {
	ID         uuid.UUID           `json:"id"`
	OperatorID uuid.UUID           `json:"operator_id"`
	CreatedAt  time.Time           `json:"created_at"`
	Lines      []LineResponse      `json:"lines"`
	Pending    *PendingResponse    `json:"pending,omitempty"`
	Totals     TotalsResponse      `json:"totals"`
	Resolution ResolutionResponse  `json:"resolution"`
	Customer   *entity.Customer    `json:"customer,omitempty"`
	Loyalty    LoyaltyResponse     `json:"loyalty"`
	Submitting bool                `json:"submitting"`
	Completed  *SubmissionResponse `json:"completed,omitempty"`
}

// LineResponse is one cart line.
type LineResponse struct {
	ItemID              uuid.UUID       `json:"item_id"`
	Name                string          `json:"name"`
	Code                string          `json:"code"`
	Category            string          `json:"category"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	DiscountedUnitPrice decimal.Decimal `json:"discounted_unit_price"`
	DiscountID          *uuid.UUID      `json:"discount_id,omitempty"`
	Quantity            int             `json:"quantity"`
	StockSnapshot       int             `json:"stock_snapshot"`
	LineTotal           decimal.Decimal `json:"line_total"`
}

// PendingResponse is the selected item awaiting a quantity.
type PendingResponse struct {
	Item     entity.PricedItem `json:"item"`
	Quantity int               `json:"quantity"`
}

// TotalsResponse holds cart totals rounded for display.
type TotalsResponse struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	ItemDiscount    decimal.Decimal `json:"item_discount"`
	LoyaltyDiscount decimal.Decimal `json:"loyalty_discount"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
}

// ResolutionResponse is the state of the customer lookup.
type ResolutionResponse struct {
	State      checkout.ResolutionState `json:"state"`
	NationalID string                   `json:"national_id,omitempty"`
	Name       string                   `json:"name,omitempty"`
	Registered bool                     `json:"registered"`
	Message    string                   `json:"message,omitempty"`
}

// LoyaltyResponse is the loyalty discount of the attached customer.
type LoyaltyResponse struct {
	Eligible   bool            `json:"eligible"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ConfirmedCustomerResponse is returned once a customer is attached.
type ConfirmedCustomerResponse struct {
	Customer entity.Customer `json:"customer"`
	Loyalty  LoyaltyResponse `json:"loyalty"`
}

// SubmissionResponse describes a completed checkout.
type SubmissionResponse struct {
	Status      string             `json:"status"`
	Outcome     string             `json:"outcome"`
	Reference   string             `json:"reference"`
	ServerCode  string             `json:"server_code,omitempty"`
	LocalID     int64              `json:"local_id,omitempty"`
	Transaction entity.Transaction `json:"transaction"`
	Totals      TotalsResponse     `json:"totals"`
}

func toSessionResponse(view *checkout.View) SessionResponse {
	resp := SessionResponse{
		ID:         view.ID,
		OperatorID: view.OperatorID,
		CreatedAt:  view.CreatedAt,
		Lines:      make([]LineResponse, 0, len(view.Lines)),
		Totals:     toTotalsResponse(view.Totals),
		Resolution: toResolutionResponse(view.Resolution),
		Customer:   view.Customer,
		Loyalty:    toLoyaltyResponse(view.Loyalty),
		Submitting: view.Submitting,
	}
	for _, line := range view.Lines {
		resp.Lines = append(resp.Lines, toLineResponse(line))
	}
	if view.Pending != nil {
		resp.Pending = &PendingResponse{Item: view.Pending.Item, Quantity: view.Pending.Quantity}
	}
	if view.Completed != nil {
		completed := toSubmissionResponse(view.Completed)
		resp.Completed = &completed
	}

	return resp
}

func toLineResponse(line entity.LineItem) LineResponse {
	return LineResponse{
		ItemID:              line.ID,
		Name:                line.Name,
		Code:                line.Code,
		Category:            line.Category,
		UnitPrice:           line.UnitPrice,
		DiscountedUnitPrice: line.DiscountedUnitPrice.Round(displayPlaces),
		DiscountID:          line.DiscountID(),
		Quantity:            line.Quantity,
		StockSnapshot:       line.StockSnapshot,
		LineTotal:           line.DiscountedUnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(displayPlaces),
	}
}

func toTotalsResponse(totals entity.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:        totals.Subtotal.Round(displayPlaces),
		ItemDiscount:    totals.ItemDiscount.Round(displayPlaces),
		LoyaltyDiscount: totals.LoyaltyDiscount.Round(displayPlaces),
		Tax:             totals.Tax.Round(displayPlaces),
		Total:           totals.Total.Round(displayPlaces),
	}
}

func toResolutionResponse(view checkout.ResolutionView) ResolutionResponse {
	resp := ResolutionResponse{
		State:      view.State,
		NationalID: view.NationalID,
		Message:    view.Message,
	}
	if view.Match != nil {
		resp.Name = view.Match.DisplayName()
		_, resp.Registered = view.Match.(entity.ExistingCustomer)
	}

	return resp
}

func toLoyaltyResponse(loyalty entity.LoyaltyDiscount) LoyaltyResponse {
	return LoyaltyResponse{Eligible: loyalty.Eligible, Percentage: loyalty.Percentage}
}

func toSubmissionResponse(result *entity.SubmissionResult) SubmissionResponse {
	resp := SubmissionResponse{
		Status:      "completed",
		Transaction: result.Transaction,
		Totals:      toTotalsResponse(result.Totals),
	}
	if result.Outcome == nil {
		return resp
	}
	resp.Reference = result.Outcome.Reference()

	switch outcome := result.Outcome.(type) {
	case entity.Delivered:
		resp.Outcome = constants.OutcomeDelivered
		resp.ServerCode = outcome.ServerCode
	case entity.QueuedLocally:
		resp.Outcome = constants.OutcomeQueuedLocally
		resp.LocalID = outcome.LocalID
	}

	return resp
}

// sessionScope returns the authenticated operator and the session named in the path.
// On failure the error response has already been written and ok is false.
func sessionScope(c echo.Context) (operatorID, sessionID uuid.UUID, ok bool, err error) {
	operatorID, found := deliverycontext.GetOperatorID(c)
	if !found {
		return uuid.Nil, uuid.Nil, false, response.Unauthorized(c, "INVALID_TOKEN", "Invalid operator ID in token")
	}

	sessionID, parseErr := uuid.Parse(c.Param("id"))
	if parseErr != nil {
		return uuid.Nil, uuid.Nil, false, response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	return operatorID, sessionID, true, nil
}
