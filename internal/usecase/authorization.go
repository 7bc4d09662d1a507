package usecase

import (
	"errors"

	"cotafrete/internal/domain/entities"
)

// Typed denial reasons returned by the authorization guard. Handlers map them
// to user-facing errors; the guard itself has no side effects.
var (
	ErrNotCarrier  = errors.New("only carriers may respond to quotations")
	ErrNotOwner    = errors.New("only the quotation owner may perform this action")
	ErrSelfDealing = errors.New("a carrier cannot respond to its own quotation")
	ErrNotAllowed  = errors.New("not allowed to view these responses")
)

// GuardAction is an operation subject to the authorization guard.
type GuardAction string

const (
	ActionSubmitResponse GuardAction = "submit_response"
	ActionAcceptResponse GuardAction = "accept_response"
	ActionRejectResponse GuardAction = "reject_response"
	ActionCancel         GuardAction = "cancel"
	ActionFinalize       GuardAction = "finalize"
	ActionContest        GuardAction = "contest"
)

// Authorize is the pure role/ownership decision applied before every core
// operation. It returns nil when allowed, or one of the typed denials.
func Authorize(actor entities.Principal, action GuardAction, q entities.Quotation) error {
	switch action {
	case ActionSubmitResponse:
		if actor.UserType != entities.UserTypeTransportadora {
			return ErrNotCarrier
		}
		// Roles differ, but the ownership comparison stays: a misconfigured
		// account must never bid on its own shipment.
		if actor.ID == q.ClienteID {
			return ErrSelfDealing
		}
		return nil
	case ActionAcceptResponse, ActionRejectResponse, ActionCancel, ActionFinalize, ActionContest:
		if actor.ID != q.ClienteID {
			return ErrNotOwner
		}
		return nil
	default:
		return ErrNotAllowed
	}
}

// ResponseVisibility resolves who sees which responses of a quotation:
// the owning client and admins see all; a carrier sees only its own.
// Anyone else is denied.
func ResponseVisibility(actor entities.Principal, q entities.Quotation) (all bool, carrierID string, err error) {
	if actor.ID == q.ClienteID || actor.UserType == entities.UserTypeAdmin {
		return true, "", nil
	}
	if actor.UserType == entities.UserTypeTransportadora {
		return false, actor.ID, nil
	}
	return false, "", ErrNotAllowed
}
