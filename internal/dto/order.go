package dto

import "time"

type OrderResponseDTO struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	Amount         int       `json:"amount" example:"2"`
	OrderedAt      time.Time `json:"ordered_at"`
	ShipmentStatus string    `json:"shipment_status,omitempty" example:"IN_TRANSIT"`
}
