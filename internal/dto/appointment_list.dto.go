package dto

type AppointmentListDTO struct {
	ID          uint    `json:"id"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Status      string  `json:"status"`
	Price       float64 `json:"price"`
	ClientName  string  `json:"client_name"`
	BarberName  string  `json:"barber_name"`
	ServiceName string  `json:"service_name"`
}
