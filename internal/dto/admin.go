package dto

import "time"

type AdminWithdrawalDTO struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Sum         float64   `json:"sum"`
	Status      string    `json:"status" example:"PENDING"`
	RequestedAt time.Time `json:"requested_at"`
}

type TaskSettingDTO struct {
	ProductID string `json:"product_id"`
	Amount    string `json:"amount"`
	UserIDs   []int  `json:"user_id,omitempty"`
}

type UpsertTaskSettingsRequestDTO struct {
	// Global applies the table to every seller instead of the calling
	// admin's sellers only.
	Global   bool                      `json:"global,omitempty"`
	Settings map[string]TaskSettingDTO `json:"settings"`
}

type ReferralCodeResponseDTO struct {
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}
