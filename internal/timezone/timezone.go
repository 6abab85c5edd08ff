package timezone

import "time"

// A barbearia opera em um único fuso; todo relógio de parede é local.
const ShopTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(ShopTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today retorna a data local no formato YYYY-MM-DD
func Today() string {
	return Now().Format("2006-01-02")
}
