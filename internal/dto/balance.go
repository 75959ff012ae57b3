package dto

import "time"

type BalanceResponseDTO struct {
	Balance        float64 `json:"balance" example:"500.5"`
	TrialBonus     float64 `json:"trial_bonus" example:"300"`
	TodayBonus     float64 `json:"today_bonus" example:"6"`
	TotalEarning   float64 `json:"total_earning" example:"42"`
	NumberOfRating int     `json:"number_of_rating" example:"3"`
	Available      float64 `json:"available" example:"800.5"`
}

type BalanceWithdrawRequestDTO struct {
	Sum float64 `json:"sum" example:"500"`
}

type GetWithdrawalsResponseDTO struct {
	ID          int       `json:"id" example:"1"`
	Sum         float64   `json:"sum" example:"500"`
	Status      string    `json:"status" example:"PENDING"`
	RequestedAt time.Time `json:"requested_at" example:"2020-12-09T16:09:57+03:00"`
}
