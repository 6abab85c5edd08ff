package subscription

import "github.com/barbearia-america/agenda-api/internal/httperr"

// ===============================
// Subscription Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

// ===============================
// Validations
// ===============================

// CanApprove: apenas assinaturas pendentes são aprovadas pelo admin
func CanApprove(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel: pendente ou ativa podem ser canceladas
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusActive {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
