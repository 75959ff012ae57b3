package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	AdminID      *int      `db:"admin_id"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	RoleSeller string = "seller"
	RoleAdmin  string = "admin"
)

// Sale is the per-user balance ledger: withdrawable funds plus the two
// date-scoped bonuses and lifetime counters.
type Sale struct {
	ID             int       `db:"id"`
	UserID         int       `db:"user_id"`
	Balance        float64   `db:"balance"`
	TrialBonus     float64   `db:"trial_bonus"`
	TrialBonusDate time.Time `db:"trial_bonus_date"`
	TodayBonus     float64   `db:"today_bonus"`
	TodayBonusDate time.Time `db:"today_bonus_date"`
	TotalEarning   float64   `db:"total_earning"`
	NumberOfRating int       `db:"number_of_rating"`
}

type TaskProgress struct {
	ID               int       `db:"id"`
	UserID           int       `db:"user_id"`
	Progress         Progress  `db:"progress"`
	LastEdit         time.Time `db:"last_edit"`
	AllowSystemReset bool      `db:"allow_system_reset"`
}

// TaskSetting is one row of the requirement table: which product (and how
// many) a task demands. UserIDs restricts an admin override to specific
// users; empty means the override applies to every seller of that admin.
type TaskSetting struct {
	ProductID string `json:"product_id"`
	Amount    string `json:"amount"`
	UserIDs   []int  `json:"user_id,omitempty"`
}

// TaskSettings maps task keys to their requirement rows.
type TaskSettings map[string]TaskSetting

type Product struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Description  string    `db:"description"`
	Price        float64   `db:"price"`
	DiscountRate float64   `db:"discount_rate"`
	Quantity     int       `db:"quantity"`
	ImageURL     string    `db:"image_url"`
	CreatedAt    time.Time `db:"created_at"`
}

// UnitPrice is the effective per-unit price after discount.
func (p *Product) UnitPrice() float64 {
	return p.Price * (1 - p.DiscountRate/100)
}

type Order struct {
	ID                   string    `db:"id"`
	UserID               int       `db:"user_id"`
	ProductID            string    `db:"product_id"`
	Amount               int       `db:"amount"`
	OrderedAt            time.Time `db:"ordered_at"`
	ShipmentAutomationID *string   `db:"shipment_automation_id"`
	ShipmentStatus       string    `db:"shipment_status"`
	ShipmentUpdatedAt    time.Time `db:"shipment_updated_at"`
}

type WithdrawalStatus int

const (
	WithdrawalPending  WithdrawalStatus = 1
	WithdrawalApproved WithdrawalStatus = 2
	WithdrawalRejected WithdrawalStatus = 3
)

func (s WithdrawalStatus) String() string {
	switch s {
	case WithdrawalPending:
		return "PENDING"
	case WithdrawalApproved:
		return "APPROVED"
	case WithdrawalRejected:
		return "REJECTED"
	}
	return "UNKNOWN"
}

type Withdrawal struct {
	ID          int              `db:"id"`
	UserID      int              `db:"user_id"`
	Amount      float64          `db:"withdraw_amount"`
	Status      WithdrawalStatus `db:"status"`
	RequestedAt time.Time        `db:"requested_at"`
}

type ReferralCode struct {
	ID        int       `db:"id"`
	Code      string    `db:"code"`
	AdminID   int       `db:"admin_id"`
	CreatedAt time.Time `db:"created_at"`
}

// ShipmentAutomation advances an order's shipment status through Statuses,
// one step every StepInterval.
type ShipmentAutomation struct {
	ID           string        `db:"id"`
	Name         string        `db:"name"`
	Statuses     []string      `db:"statuses"`
	StepInterval time.Duration `db:"step_interval"`
}
