package repo

import (
	"github.com/taskmart/taskmart/internal/pg"
	orderrepo "github.com/taskmart/taskmart/internal/repo/order-repo"
	productrepo "github.com/taskmart/taskmart/internal/repo/product-repo"
	progressrepo "github.com/taskmart/taskmart/internal/repo/progress-repo"
	referralrepo "github.com/taskmart/taskmart/internal/repo/referral-repo"
	salerepo "github.com/taskmart/taskmart/internal/repo/sale-repo"
	settingsrepo "github.com/taskmart/taskmart/internal/repo/settings-repo"
	userrepo "github.com/taskmart/taskmart/internal/repo/user-repo"
	withdrawalrepo "github.com/taskmart/taskmart/internal/repo/withdrawal-repo"
)

type Repositories struct {
	UserRepo       *userrepo.Repository
	SaleRepo       *salerepo.Repository
	ProgressRepo   *progressrepo.Repository
	SettingsRepo   *settingsrepo.Repository
	ProductRepo    *productrepo.Repository
	OrderRepo      *orderrepo.Repository
	WithdrawalRepo *withdrawalrepo.Repository
	ReferralRepo   *referralrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		SaleRepo:       salerepo.New(conn, txManager),
		ProgressRepo:   progressrepo.New(conn),
		SettingsRepo:   settingsrepo.New(conn),
		ProductRepo:    productrepo.New(conn),
		OrderRepo:      orderrepo.New(conn, txManager),
		WithdrawalRepo: withdrawalrepo.New(conn),
		ReferralRepo:   referralrepo.New(conn),
	}
}
