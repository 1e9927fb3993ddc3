// Package checkout holds the state of one checkout session: the cart, the customer resolution and
// the submission lifecycle. A Session serializes access to its state.
package checkout

import (
	"sync"
	"time"

	"checkout/internal/domain/cart"
	"checkout/internal/domain/entity"
	domainerrors "checkout/internal/domain/errors"

	"github.com/google/uuid"
)

// Session is the state owned by one operator's checkout.
type Session struct {
	ID         uuid.UUID
	OperatorID uuid.UUID
	CreatedAt  time.Time

	mu         sync.Mutex
	ledger     *cart.Ledger
	resolution Resolution
	customer   *entity.Customer
	loyalty    entity.LoyaltyDiscount
	submitting bool
	completed  *entity.SubmissionResult
}

// Draft is the immutable input of a submission, captured when it begins.
type Draft struct {
	OperatorID uuid.UUID
	Lines      []entity.LineItem
	Customer   *entity.Customer
	Loyalty    entity.LoyaltyDiscount
	Totals     entity.Totals
}

// View is a consistent copy of a session's state.
type View struct {
	ID         uuid.UUID
	OperatorID uuid.UUID
	CreatedAt  time.Time
	Lines      []entity.LineItem
	Pending    *cart.Selection
	Totals     entity.Totals
	Resolution ResolutionView
	Customer   *entity.Customer
	Loyalty    entity.LoyaltyDiscount
	Submitting bool
	Completed  *entity.SubmissionResult
}

func NewSession(operatorID uuid.UUID, now time.Time) *Session {
	return &Session{
		ID:         uuid.New(),
		OperatorID: operatorID,
		CreatedAt:  now,
		ledger:     cart.NewLedger(),
	}
}

// Mutate runs fn on the cart. Carts are locked while a submission runs or awaits dismissal.
func (s *Session) Mutate(fn func(l *cart.Ledger) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureMutableLocked(); err != nil {
		return err
	}

	return fn(s.ledger)
}

// BeginResolution starts a customer lookup. Any customer attached by an earlier confirmation is
// detached along with its loyalty discount; only a confirmation attaches one again.
func (s *Session) BeginResolution(nationalID string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureMutableLocked(); err != nil {
		return 0, err
	}
	s.customer = nil
	s.loyalty = entity.LoyaltyDiscount{}

	return s.resolution.Begin(nationalID)
}

// SettleResolution applies fn to the resolution if it is still the lookup started at generation.
func (s *Session) SettleResolution(fn func(r *Resolution)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.resolution)
}

// ConfirmableMatch returns the match a confirm would register or attach.
func (s *Session) ConfirmableMatch() (entity.CustomerMatch, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureMutableLocked(); err != nil {
		return nil, 0, err
	}

	return s.resolution.Confirmable()
}

// AttachCustomer records the confirmed customer and its loyalty parameters. It reports false when
// the resolution was cancelled while the customer was being confirmed.
func (s *Session) AttachCustomer(generation uint64, customer entity.Customer, loyalty entity.LoyaltyDiscount) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.resolution.Registered(generation, customer) {
		return false
	}
	s.customer = &customer
	s.loyalty = loyalty

	return true
}

// DetachCustomer cancels any lookup and drops the confirmed customer.
func (s *Session) DetachCustomer() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureMutableLocked(); err != nil {
		return err
	}
	s.resolution.Reset()
	s.customer = nil
	s.loyalty = entity.LoyaltyDiscount{}

	return nil
}

// BeginSubmission validates the cart and captures it. Until FinishSubmission or AbortSubmission
// is called the session rejects mutations and a second submission.
func (s *Session) BeginSubmission() (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting || s.completed != nil {
		return Draft{}, domainerrors.ErrSubmissionInProgress
	}
	if s.ledger.IsEmpty() {
		return Draft{}, domainerrors.ErrEmptyCart
	}
	if s.OperatorID == uuid.Nil {
		return Draft{}, domainerrors.ErrNoOperator
	}

	draft := Draft{
		OperatorID: s.OperatorID,
		Lines:      s.ledger.Lines(),
		Loyalty:    s.loyalty,
		Totals:     s.ledger.Totals(s.loyalty),
	}
	if s.customer != nil {
		c := *s.customer
		draft.Customer = &c
	}
	s.submitting = true

	return draft, nil
}

// FinishSubmission stores the completed result until it is dismissed.
func (s *Session) FinishSubmission(result entity.SubmissionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.submitting = false
	s.completed = &result
}

// AbortSubmission unlocks the cart after a submission that recorded nothing.
func (s *Session) AbortSubmission() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.submitting = false
}

// Completed returns the result awaiting dismissal, or nil.
func (s *Session) Completed() *entity.SubmissionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.completed
}

// Dismiss acknowledges a completed checkout and resets the session for the next sale.
func (s *Session) Dismiss() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed == nil {
		return domainerrors.ErrNothingToDismiss
	}
	s.completed = nil
	s.ledger.Clear()
	s.resolution.Reset()
	s.customer = nil
	s.loyalty = entity.LoyaltyDiscount{}

	return nil
}

// View returns a copy of the session state with fresh totals.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		ID:         s.ID,
		OperatorID: s.OperatorID,
		CreatedAt:  s.CreatedAt,
		Lines:      s.ledger.Lines(),
		Pending:    s.ledger.Pending(),
		Totals:     s.ledger.Totals(s.loyalty),
		Resolution: s.resolution.View(),
		Loyalty:    s.loyalty,
		Submitting: s.submitting,
		Completed:  s.completed,
	}
	if s.customer != nil {
		c := *s.customer
		v.Customer = &c
	}

	return v
}

func (s *Session) ensureMutableLocked() error {
	if s.submitting || s.completed != nil {
		return domainerrors.ErrCheckoutLocked
	}

	return nil
}
