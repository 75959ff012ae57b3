package dto

type ProductResponseDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name" example:"Wireless earbuds"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" example:"100"`
	DiscountRate float64 `json:"discount_rate" example:"10"`
	UnitPrice    float64 `json:"unit_price" example:"90"`
	Quantity     int     `json:"quantity" example:"25"`
	ImageURL     string  `json:"image_url"`
}

type ProductRequestDTO struct {
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" validate:"required,gte=0"`
	DiscountRate float64 `json:"discount_rate" validate:"gte=0,lte=100"`
	Quantity     int     `json:"quantity" validate:"gte=0"`
	ImageURL     string  `json:"image_url"`
}
