package booking

import "github.com/bookora/marketplace-api/internal/httperr"

// ===============================
// Error taxonomy
// ===============================
//
// Every expected business condition is one of these codes. Callers branch
// with httperr.IsBusiness; anything else is an infrastructure fault.

var (
	ErrInvalidWindow          = httperr.ErrBusiness("invalid_window")
	ErrPastDate               = httperr.ErrBusiness("past_date")
	ErrSlotUnavailable        = httperr.ErrBusiness("slot_unavailable")
	ErrInvalidTransition      = httperr.ErrBusiness("invalid_transition")
	ErrUnauthorized           = httperr.ErrBusiness("unauthorized")
	ErrAlreadySettled         = httperr.ErrBusiness("already_settled")
	ErrConcurrentModification = httperr.ErrBusiness("concurrent_modification")
	ErrNotFound               = httperr.ErrBusiness("not_found")
	ErrTimeout                = httperr.ErrBusiness("timeout")
)
