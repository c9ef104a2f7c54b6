package dto

import (
	"time"

	"github.com/zlatne-makaze/barbershop-api/internal/models"
)

type ReservationListDTO struct {
	ID            uint      `json:"id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	Services      []string  `json:"services"`
	TotalPriceRSD int64     `json:"total_price_rsd"`
}

func FromReservation(res models.Reservation) ReservationListDTO {
	dto := ReservationListDTO{
		ID:            res.ID,
		StartTime:     res.StartTime,
		EndTime:       res.EndTime,
		Status:        res.Status,
		CustomerName:  res.CustomerName,
		CustomerPhone: res.CustomerPhone,
		Services:      make([]string, 0, len(res.Services)),
	}

	for _, s := range res.Services {
		dto.Services = append(dto.Services, s.Name)
		dto.TotalPriceRSD += s.PriceRSD
	}

	return dto
}
