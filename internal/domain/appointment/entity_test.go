package appointment

import (
	"testing"
	"time"

	"github.com/barbearia-america/agenda-api/internal/httperr"
	"github.com/barbearia-america/agenda-api/internal/models"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from  Status
		check func(Status) error
		name  string
		ok    bool
	}{
		{StatusConfirmed, CanCancel, "cancel de confirmado", true},
		{StatusCompleted, CanCancel, "cancel de concluído", false},
		{StatusCancelled, CanCancel, "cancel de cancelado", false},
		{StatusNoShow, CanCancel, "cancel de falta", false},

		{StatusConfirmed, CanComplete, "complete de confirmado", true},
		{StatusCancelled, CanComplete, "complete de cancelado", false},
		{StatusCompleted, CanComplete, "complete repetido", false},

		{StatusConfirmed, CanMarkNoShow, "no_show de confirmado", true},
		{StatusCompleted, CanMarkNoShow, "no_show de concluído", false},
	}

	for _, tt := range cases {
		err := tt.check(tt.from)
		if tt.ok && err != nil {
			t.Fatalf("%s: erro inesperado %v", tt.name, err)
		}
		if !tt.ok {
			if !httperr.IsBusiness(err, "invalid_state") {
				t.Fatalf("%s: esperava invalid_state, veio %v", tt.name, err)
			}
		}
	}
}

func TestBlocksSlot(t *testing.T) {
	if !BlocksSlot(StatusConfirmed) || !BlocksSlot(StatusCompleted) {
		t.Fatal("confirmado e concluído devem ocupar o horário")
	}
	if BlocksSlot(StatusCancelled) || BlocksSlot(StatusNoShow) {
		t.Fatal("cancelado e falta liberam o horário")
	}
}

func TestCancelStampsTimestamp(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusConfirmed)}

	if err := Cancel(ap, now); err != nil {
		t.Fatal(err)
	}
	if ap.Status != string(StatusCancelled) {
		t.Fatalf("status = %q, want cancelled", ap.Status)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Fatal("CancelledAt não foi carimbado")
	}

	// segundo cancelamento não passa
	if err := Cancel(ap, now); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("esperava invalid_state, veio %v", err)
	}
}

func TestCompleteStampsTimestamp(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusConfirmed)}

	if err := Complete(ap, now); err != nil {
		t.Fatal(err)
	}
	if ap.Status != string(StatusCompleted) {
		t.Fatalf("status = %q, want completed", ap.Status)
	}
	if ap.CompletedAt == nil || !ap.CompletedAt.Equal(now) {
		t.Fatal("CompletedAt não foi carimbado")
	}
}

func TestMarkNoShow(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusConfirmed)}

	if err := MarkNoShow(ap); err != nil {
		t.Fatal(err)
	}
	if ap.Status != string(StatusNoShow) {
		t.Fatalf("status = %q, want no_show", ap.Status)
	}

	if err := MarkNoShow(ap); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("esperava invalid_state, veio %v", err)
	}
}
