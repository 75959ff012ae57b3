package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taskmart/taskmart/internal/domain"
	"github.com/taskmart/taskmart/internal/dto"
	"github.com/taskmart/taskmart/internal/service/productservice"
	"github.com/taskmart/taskmart/internal/service/withdrawalservice"
	"github.com/taskmart/taskmart/pkg/auth"
	"github.com/taskmart/taskmart/pkg/utils"
)

type WithdrawalService interface {
	ListByStatus(ctx context.Context, status domain.WithdrawalStatus) ([]domain.Withdrawal, error)
	Approve(ctx context.Context, id int) (*domain.Sale, error)
	Reject(ctx context.Context, id int) error
}

type ProductService interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
}

type SettingsService interface {
	UpsertSettings(ctx context.Context, adminID *int, settings domain.TaskSettings) error
}

type ReferralService interface {
	CreateReferralCode(ctx context.Context, adminID int) (*domain.ReferralCode, error)
}

type AdminHandler struct {
	withdrawalService WithdrawalService
	productService    ProductService
	settingsService   SettingsService
	referralService   ReferralService
}

func New(withdrawalService WithdrawalService, productService ProductService, settingsService SettingsService, referralService ReferralService) *AdminHandler {
	return &AdminHandler{
		withdrawalService: withdrawalService,
		productService:    productService,
		settingsService:   settingsService,
		referralService:   referralService,
	}
}

// ListWithdrawals godoc
//
//	@Summary		List withdrawal requests
//	@Description	Returns withdrawals filtered by status (1=pending, 2=approved, 3=rejected), oldest first.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		int	false	"Status filter, defaults to pending"
//	@Success		200		{array}		dto.AdminWithdrawalDTO	"Withdrawals"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"Admin access required"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/withdrawals [get]
func (h *AdminHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	status := domain.WithdrawalPending
	if raw := r.URL.Query().Get("status"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 3 {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid status filter")
			return
		}
		status = domain.WithdrawalStatus(n)
	}

	withdrawals, err := h.withdrawalService.ListByStatus(r.Context(), status)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.AdminWithdrawalDTO, len(withdrawals))
	for i, wd := range withdrawals {
		resp[i] = dto.AdminWithdrawalDTO{
			ID:          wd.ID,
			UserID:      wd.UserID,
			Sum:         wd.Amount,
			Status:      wd.Status.String(),
			RequestedAt: wd.RequestedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ApproveWithdrawal godoc
//
//	@Summary		Approve a withdrawal
//	@Description	Moves a pending withdrawal to approved and debits the seller's balance, clamped at zero.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Withdrawal id"
//	@Success		200	{string}	string			"Approved"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Withdrawal not found"
//	@Failure		409	{object}	utils.Response	"Withdrawal not pending"
//	@Failure		500	{object}	utils.Response	"Internal or partial failure"
//	@Router			/api/admin/withdrawals/{id}/approve [post]
func (h *AdminHandler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid withdrawal id")
		return
	}

	if _, err := h.withdrawalService.Approve(r.Context(), id); err != nil {
		respondWithdrawalError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "withdrawal approved")
}

// RejectWithdrawal godoc
//
//	@Summary		Reject a withdrawal
//	@Description	Moves a pending withdrawal to rejected; the balance is untouched.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Withdrawal id"
//	@Success		200	{string}	string			"Rejected"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Withdrawal not found"
//	@Failure		409	{object}	utils.Response	"Withdrawal not pending"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/reject [post]
func (h *AdminHandler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid withdrawal id")
		return
	}

	if err := h.withdrawalService.Reject(r.Context(), id); err != nil {
		respondWithdrawalError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "withdrawal rejected")
}

func respondWithdrawalError(w http.ResponseWriter, err error) {
	var partial *domain.PartialError
	switch {
	case errors.As(err, &partial):
		utils.RespondWithError(w, http.StatusInternalServerError, partial.Error())
	case errors.Is(err, withdrawalservice.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, withdrawalservice.ErrNotPending):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// CreateProduct godoc
//
//	@Summary		Create a product
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ProductRequestDTO	true	"Product payload"
//	@Success		200		{object}	dto.ProductResponseDTO	"Created product"
//	@Failure		400		{object}	utils.Response			"Invalid payload"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"Admin access required"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/products [post]
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := decodeProduct(w, r)
	if !ok {
		return
	}

	created, err := h.productService.Create(r.Context(), product)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, productDTO(created))
}

// UpdateProduct godoc
//
//	@Summary		Update a product
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Product id"
//	@Param			request	body		dto.ProductRequestDTO	true	"Product payload"
//	@Success		200		{object}	dto.ProductResponseDTO	"Updated product"
//	@Failure		400		{object}	utils.Response			"Invalid payload"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"Admin access required"
//	@Failure		404		{object}	utils.Response			"Product not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/products/{id} [put]
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := decodeProduct(w, r)
	if !ok {
		return
	}
	product.ID = chi.URLParam(r, "id")

	updated, err := h.productService.Update(r.Context(), product)
	if err != nil {
		if errors.Is(err, productservice.ErrProductNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, productDTO(updated))
}

func decodeProduct(w http.ResponseWriter, r *http.Request) (*domain.Product, bool) {
	var req dto.ProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if req.Name == "" || req.Price < 0 || req.DiscountRate < 0 || req.DiscountRate > 100 || req.Quantity < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid product fields")
		return nil, false
	}
	return &domain.Product{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		DiscountRate: req.DiscountRate,
		Quantity:     req.Quantity,
		ImageURL:     req.ImageURL,
	}, true
}

func productDTO(p *domain.Product) dto.ProductResponseDTO {
	return dto.ProductResponseDTO{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		DiscountRate: p.DiscountRate,
		UnitPrice:    p.UnitPrice(),
		Quantity:     p.Quantity,
		ImageURL:     p.ImageURL,
	}
}

// UpsertTaskSettings godoc
//
//	@Summary		Replace a task-settings table
//	@Description	Replaces the calling admin's requirement overrides, or the global defaults when global is set.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpsertTaskSettingsRequestDTO	true	"Settings payload"
//	@Success		200		{string}	string								"Settings saved"
//	@Failure		400		{object}	utils.Response						"Invalid payload"
//	@Failure		401		{object}	utils.Response						"User not authorized"
//	@Failure		403		{object}	utils.Response						"Admin access required"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/admin/task-settings [put]
func (h *AdminHandler) UpsertTaskSettings(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.UpsertTaskSettingsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings := make(domain.TaskSettings, len(req.Settings))
	for key, s := range req.Settings {
		settings[key] = domain.TaskSetting{
			ProductID: s.ProductID,
			Amount:    s.Amount,
			UserIDs:   s.UserIDs,
		}
	}

	scope := &adminID
	if req.Global {
		scope = nil
	}
	if err := h.settingsService.UpsertSettings(r.Context(), scope, settings); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "task settings saved")
}

// CreateReferralCode godoc
//
//	@Summary		Mint a referral code
//	@Description	Creates a referral code owned by the calling admin; sellers signing up with it inherit the admin's task-settings overrides.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ReferralCodeResponseDTO	"Referral code"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		403	{object}	utils.Response				"Admin access required"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/referral-codes [post]
func (h *AdminHandler) CreateReferralCode(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	code, err := h.referralService.CreateReferralCode(r.Context(), adminID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReferralCodeResponseDTO{
		Code:      code.Code,
		CreatedAt: code.CreatedAt,
	})
}
