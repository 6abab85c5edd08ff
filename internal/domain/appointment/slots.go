package appointment

import "github.com/barbearia-america/agenda-api/internal/models"

// AvailableSlots gera os horários livres de um barbeiro em um dia.
//
// A grade começa no horário de abertura e avança pelo intervalo configurado;
// o fechamento é limite exclusivo (um slot que começa no fechamento ou depois
// não existe). Um slot é descartado quando seu início cai dentro de
// [start, end) de algum agendamento recebido — os agendamentos já devem vir
// filtrados por barbeiro, data e status que ocupam a agenda (BlocksSlot).
//
// Função pura: mesma entrada, mesma saída, sempre em ordem crescente.
func AvailableSlots(settings *models.Settings, booked []models.Appointment) []string {
	if settings == nil || settings.SlotIntervalMin <= 0 {
		return []string{}
	}

	open, err := ParseHM(settings.OpeningTime)
	if err != nil {
		return []string{}
	}
	close, err := ParseHM(settings.ClosingTime)
	if err != nil {
		return []string{}
	}
	if open >= close {
		return []string{}
	}

	slots := []string{}
	for cur := open; cur < close; cur += settings.SlotIntervalMin {
		slot := FormatHM(cur)

		taken := false
		for _, ap := range booked {
			// contenção do horário de início, não sobreposição de intervalos
			if slot >= ap.StartTime && slot < ap.EndTime {
				taken = true
				break
			}
		}

		if !taken {
			slots = append(slots, slot)
		}
	}

	return slots
}
