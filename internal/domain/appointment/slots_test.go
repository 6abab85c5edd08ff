package appointment

import (
	"reflect"
	"testing"

	"github.com/barbearia-america/agenda-api/internal/models"
)

func settings(open, close string, interval int) *models.Settings {
	return &models.Settings{
		OpeningTime:     open,
		ClosingTime:     close,
		SlotIntervalMin: interval,
	}
}

func booked(pairs ...string) []models.Appointment {
	aps := []models.Appointment{}
	for i := 0; i+1 < len(pairs); i += 2 {
		aps = append(aps, models.Appointment{
			StartTime: pairs[i],
			EndTime:   pairs[i+1],
		})
	}
	return aps
}

func TestAvailableSlots(t *testing.T) {
	cases := []struct {
		name     string
		settings *models.Settings
		booked   []models.Appointment
		want     []string
	}{
		{
			name:     "dia livre gera a grade inteira",
			settings: settings("09:00", "12:00", 60),
			booked:   nil,
			want:     []string{"09:00", "10:00", "11:00"},
		},
		{
			name:     "fechamento é limite exclusivo",
			settings: settings("09:00", "10:00", 30),
			booked:   nil,
			want:     []string{"09:00", "09:30"},
		},
		{
			name:     "agendamento bloqueia o slot que começa dentro dele",
			settings: settings("09:00", "12:00", 30),
			booked:   booked("10:00", "10:30"),
			want:     []string{"09:00", "09:30", "10:30", "11:00", "11:30"},
		},
		{
			name:     "serviço longo bloqueia vários slots",
			settings: settings("09:00", "12:00", 30),
			booked:   booked("09:30", "11:00"),
			want:     []string{"09:00", "11:00", "11:30"},
		},
		{
			name:     "fim do agendamento é aberto, slot no fim fica livre",
			settings: settings("09:00", "11:00", 60),
			booked:   booked("09:00", "10:00"),
			want:     []string{"10:00"},
		},
		{
			name:     "dia lotado",
			settings: settings("09:00", "10:00", 30),
			booked:   booked("09:00", "09:30", "09:30", "10:00"),
			want:     []string{},
		},
		{
			name:     "intervalo que não divide o expediente para antes do fechamento",
			settings: settings("09:00", "10:10", 45),
			booked:   nil,
			want:     []string{"09:00", "09:45"},
		},
		{
			name:     "settings nulo",
			settings: nil,
			booked:   nil,
			want:     []string{},
		},
		{
			name:     "intervalo zero",
			settings: settings("09:00", "12:00", 0),
			booked:   nil,
			want:     []string{},
		},
		{
			name:     "abertura depois do fechamento",
			settings: settings("19:00", "09:00", 30),
			booked:   nil,
			want:     []string{},
		},
		{
			name:     "abertura igual ao fechamento",
			settings: settings("09:00", "09:00", 30),
			booked:   nil,
			want:     []string{},
		},
		{
			name:     "horário de abertura malformado",
			settings: settings("9h00", "12:00", 30),
			booked:   nil,
			want:     []string{},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := AvailableSlots(tt.settings, tt.booked)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("AvailableSlots() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAvailableSlotsNeverReturnsNil(t *testing.T) {
	if got := AvailableSlots(nil, nil); got == nil {
		t.Fatal("slice nula em entrada inválida, esperava vazia")
	}
	if got := AvailableSlots(settings("09:00", "09:00", 30), nil); got == nil {
		t.Fatal("slice nula em expediente vazio, esperava vazia")
	}
}

func TestAvailableSlotsIsPure(t *testing.T) {
	s := settings("09:00", "12:00", 30)
	aps := booked("10:00", "10:30")

	first := AvailableSlots(s, aps)
	second := AvailableSlots(s, aps)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("mesma entrada gerou saídas diferentes: %v vs %v", first, second)
	}
	if aps[0].StartTime != "10:00" || aps[0].EndTime != "10:30" {
		t.Fatal("entrada foi modificada")
	}
}
