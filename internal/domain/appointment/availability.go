package appointment

type AvailabilityInput struct {
	BarberID uint
	Date     string // YYYY-MM-DD
}
