package appointment

import (
	"fmt"
	"time"
)

// Horários trafegam como relógio de parede "HH:MM", sem fuso.
// Strings zero-padded ordenam corretamente por comparação lexicográfica.

const DateLayout = "2006-01-02"

func ParseHM(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatHM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddMinutes soma minutos a um horário "HH:MM" no mesmo dia
func AddMinutes(hm string, delta int) (string, error) {
	m, err := ParseHM(hm)
	if err != nil {
		return "", err
	}
	return FormatHM(m + delta), nil
}

func IsValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
