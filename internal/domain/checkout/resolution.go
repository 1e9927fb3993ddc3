package checkout

import (
	"checkout/internal/domain/entity"
	domainerrors "checkout/internal/domain/errors"
)

// ResolutionState is the state of a customer identity lookup.
type ResolutionState string

const (
	ResolutionIdle          ResolutionState = "idle"
	ResolutionSearching     ResolutionState = "searching"
	ResolutionFoundExisting ResolutionState = "found-existing"
	ResolutionFoundNew      ResolutionState = "found-new"
	ResolutionError         ResolutionState = "error"
)

// Resolution tracks one customer lookup:
//
//	Idle -> Searching -> FoundExisting | FoundNew | Error
//
// Every Begin and Reset bumps the generation, so the result of an abandoned lookup is discarded.
type Resolution struct {
	state      ResolutionState
	nationalID string
	match      entity.CustomerMatch
	message    string
	generation uint64
}

// ResolutionView is a read-only copy of a Resolution.
type ResolutionView struct {
	State      ResolutionState      `json:"state"`
	NationalID string               `json:"national_id,omitempty"`
	Match      entity.CustomerMatch `json:"-"`
	Message    string               `json:"message,omitempty"`
}

func (r *Resolution) State() ResolutionState {
	if r.state == "" {
		return ResolutionIdle
	}

	return r.state
}

// Begin enters Searching and returns the generation of the new lookup.
func (r *Resolution) Begin(nationalID string) (uint64, error) {
	if r.State() == ResolutionSearching {
		return 0, domainerrors.ErrResolutionInProgress
	}
	r.generation++
	r.state = ResolutionSearching
	r.nationalID = nationalID
	r.match = nil
	r.message = ""

	return r.generation, nil
}

// Found settles a lookup with a match. It reports false when the lookup was abandoned.
func (r *Resolution) Found(generation uint64, match entity.CustomerMatch) bool {
	if !r.current(generation) {
		return false
	}
	r.match = match
	switch match.(type) {
	case entity.ExistingCustomer:
		r.state = ResolutionFoundExisting
	case entity.PendingRegistration:
		r.state = ResolutionFoundNew
	}

	return true
}

// Fail settles a lookup with an operator-facing message.
func (r *Resolution) Fail(generation uint64, message string) bool {
	if !r.current(generation) {
		return false
	}
	r.state = ResolutionError
	r.message = message

	return true
}

// Abort drops a lookup that ended on an internal error, returning to Idle.
func (r *Resolution) Abort(generation uint64) {
	if r.current(generation) {
		r.Reset()
	}
}

// Confirmable returns the match that confirm would act on.
func (r *Resolution) Confirmable() (entity.CustomerMatch, uint64, error) {
	switch r.State() {
	case ResolutionFoundExisting, ResolutionFoundNew:
		return r.match, r.generation, nil
	case ResolutionSearching:
		return nil, 0, domainerrors.ErrResolutionInProgress
	default:
		return nil, 0, domainerrors.ErrResolutionNotConfirmable
	}
}

// Registered replaces a pending registration with the stored record.
func (r *Resolution) Registered(generation uint64, customer entity.Customer) bool {
	if r.generation != generation {
		return false
	}
	r.state = ResolutionFoundExisting
	r.match = entity.ExistingCustomer{Customer: customer}

	return true
}

// RegistrationFailed moves a confirm that could not persist the customer into Error.
func (r *Resolution) RegistrationFailed(generation uint64, message string) {
	if r.generation == generation {
		r.state = ResolutionError
		r.message = message
	}
}

// Reset abandons any lookup and returns to Idle.
func (r *Resolution) Reset() {
	r.generation++
	r.state = ResolutionIdle
	r.nationalID = ""
	r.match = nil
	r.message = ""
}

func (r *Resolution) View() ResolutionView {
	return ResolutionView{
		State:      r.State(),
		NationalID: r.nationalID,
		Match:      r.match,
		Message:    r.message,
	}
}

func (r *Resolution) current(generation uint64) bool {
	return r.generation == generation && r.State() == ResolutionSearching
}
