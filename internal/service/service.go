package service

import (
	"time"

	"github.com/taskmart/taskmart/internal/repo"
	"github.com/taskmart/taskmart/internal/service/authservice"
	"github.com/taskmart/taskmart/internal/service/ledgerservice"
	"github.com/taskmart/taskmart/internal/service/productservice"
	"github.com/taskmart/taskmart/internal/service/purchaseservice"
	"github.com/taskmart/taskmart/internal/service/taskservice"
	"github.com/taskmart/taskmart/internal/service/withdrawalservice"
	pkgauth "github.com/taskmart/taskmart/pkg/auth"
	"github.com/taskmart/taskmart/pkg/lock"
)

type Services struct {
	AuthService       *authservice.Service
	LedgerService     *ledgerservice.Service
	TaskService       *taskservice.Service
	PurchaseService   *purchaseservice.Service
	WithdrawalService *withdrawalservice.Service
	ProductService    *productservice.Service
}

func New(repo *repo.Repositories, productCacheTTL time.Duration) *Services {
	locks := lock.NewUserLock()

	ledgerService := ledgerservice.New(repo.SaleRepo, locks)
	taskService := taskservice.New(repo.ProgressRepo)
	productService := productservice.New(repo.ProductRepo, productCacheTTL)
	purchaseService := purchaseservice.New(
		repo.SettingsRepo,
		repo.ProductRepo,
		repo.OrderRepo,
		repo.UserRepo,
		ledgerService,
		taskService,
	)
	withdrawalService := withdrawalservice.New(repo.WithdrawalRepo, ledgerService)
	authService := authservice.New(repo.UserRepo, repo.ReferralRepo, ledgerService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:       authService,
		LedgerService:     ledgerService,
		TaskService:       taskService,
		PurchaseService:   purchaseService,
		WithdrawalService: withdrawalService,
		ProductService:    productService,
	}
}
