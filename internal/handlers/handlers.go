package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/taskmart/taskmart/docs"
	adminhandlers "github.com/taskmart/taskmart/internal/handlers/admin"
	authhandlers "github.com/taskmart/taskmart/internal/handlers/auth"
	balancehandlers "github.com/taskmart/taskmart/internal/handlers/balance"
	producthandlers "github.com/taskmart/taskmart/internal/handlers/products"
	taskhandlers "github.com/taskmart/taskmart/internal/handlers/tasks"
	"github.com/taskmart/taskmart/internal/service"
	"github.com/taskmart/taskmart/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type TaskHandler interface {
	GetTasks(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
	AutoReset(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type ProductHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListWithdrawals(w http.ResponseWriter, r *http.Request)
	ApproveWithdrawal(w http.ResponseWriter, r *http.Request)
	RejectWithdrawal(w http.ResponseWriter, r *http.Request)
	CreateProduct(w http.ResponseWriter, r *http.Request)
	UpdateProduct(w http.ResponseWriter, r *http.Request)
	UpsertTaskSettings(w http.ResponseWriter, r *http.Request)
	CreateReferralCode(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	TaskHandler    TaskHandler
	BalanceHandler BalanceHandler
	ProductHandler ProductHandler
	AdminHandler   AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		TaskHandler:    taskhandlers.New(s.TaskService, s.PurchaseService),
		BalanceHandler: balancehandlers.New(s.LedgerService, s.WithdrawalService),
		ProductHandler: producthandlers.New(s.ProductService),
		AdminHandler:   adminhandlers.New(s.WithdrawalService, s.ProductService, s.PurchaseService, s.AuthService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.TaskHandler.GetTasks)
				r.Post("/{key}/complete", h.TaskHandler.Complete)
				r.Post("/reset", h.TaskHandler.Reset)
				r.Post("/auto-reset", h.TaskHandler.AutoReset)
			})
			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetBalance)
				r.Post("/withdraw", h.BalanceHandler.Withdraw)
			})
			r.Get("/withdrawals", h.BalanceHandler.GetWithdrawals)
			r.Get("/orders", h.TaskHandler.GetOrders)
		})
	})
	r.Route("/api/products", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Get("/", h.ProductHandler.List)
		r.Get("/{id}", h.ProductHandler.Get)
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware, auth.AdminOnly)
		r.Get("/withdrawals", h.AdminHandler.ListWithdrawals)
		r.Post("/withdrawals/{id}/approve", h.AdminHandler.ApproveWithdrawal)
		r.Post("/withdrawals/{id}/reject", h.AdminHandler.RejectWithdrawal)
		r.Post("/products", h.AdminHandler.CreateProduct)
		r.Put("/products/{id}", h.AdminHandler.UpdateProduct)
		r.Put("/task-settings", h.AdminHandler.UpsertTaskSettings)
		r.Post("/referral-codes", h.AdminHandler.CreateReferralCode)
	})

	return r
}
