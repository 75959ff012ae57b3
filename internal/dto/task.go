package dto

import "time"

type TaskStateDTO struct {
	Key       string              `json:"key" example:"task3"`
	Done      bool                `json:"done"`
	Available bool                `json:"available"`
	Paywall   bool                `json:"paywall"`
	Required  *TaskRequirementDTO `json:"required,omitempty"`
}

type TaskRequirementDTO struct {
	ProductID string `json:"product_id" example:"e7b8f1d2-4c3a-4b5e-9f00-1a2b3c4d5e6f"`
	Amount    string `json:"amount" example:"2"`
	Met       bool   `json:"met"`
}

type TaskListResponseDTO struct {
	Tasks      []TaskStateDTO `json:"tasks"`
	Percentage int            `json:"percentage" example:"40"`
	LastEdit   time.Time      `json:"last_edit"`
	AutoReset  bool           `json:"auto_reset"`
}

type CompleteTaskRequestDTO struct {
	Quantity int `json:"quantity" example:"2"`
}

type CompleteTaskResponseDTO struct {
	Task        string  `json:"task" example:"task3"`
	AlreadyDone bool    `json:"already_done"`
	Purchased   bool    `json:"purchased"`
	Cashback    float64 `json:"cashback,omitempty" example:"6.0"`
	OrderID     string  `json:"order_id,omitempty"`
}

type AutoResetRequestDTO struct {
	Allow bool `json:"allow"`
}
