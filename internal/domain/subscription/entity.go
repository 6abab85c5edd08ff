package subscription

import (
	"time"

	"github.com/barbearia-america/agenda-api/internal/models"
)

// Janela de vigência criada na assinatura: 30 dias a partir de agora
const WindowDays = 30

func NewWindow(now time.Time) (start time.Time, end time.Time) {
	return now, now.AddDate(0, 0, WindowDays)
}

// ===============================
// Domain Actions
// ===============================

func Approve(sub *models.Subscription) error {
	if err := CanApprove(Status(sub.Status)); err != nil {
		return err
	}

	sub.Status = string(StatusActive)
	return nil
}

func Cancel(sub *models.Subscription) error {
	if err := CanCancel(Status(sub.Status)); err != nil {
		return err
	}

	sub.Status = string(StatusCancelled)
	return nil
}

// Expire marca como expirada uma assinatura ativa cuja vigência terminou.
// Não é erro chamar com vigência aberta: retorna false e não altera nada.
func Expire(sub *models.Subscription, now time.Time) bool {
	if Status(sub.Status) != StatusActive {
		return false
	}
	if sub.EndDate == nil || sub.EndDate.After(now) {
		return false
	}

	sub.Status = string(StatusExpired)
	return true
}
