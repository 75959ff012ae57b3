package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskmart/taskmart/internal/domain"
	"github.com/taskmart/taskmart/internal/dto"
	"github.com/taskmart/taskmart/internal/service/withdrawalservice"
	"github.com/taskmart/taskmart/pkg/auth"
	"github.com/taskmart/taskmart/pkg/utils"
)

type LedgerService interface {
	GetSale(ctx context.Context, userID int) (*domain.Sale, error)
	AvailableFunds(sale *domain.Sale) float64
}

type WithdrawalService interface {
	Request(ctx context.Context, userID int, amount float64) (*domain.Withdrawal, error)
	GetWithdrawals(ctx context.Context, userID int) ([]domain.Withdrawal, error)
}

type BalanceHandler struct {
	ledgerService     LedgerService
	withdrawalService WithdrawalService
}

func New(ledgerService LedgerService, withdrawalService WithdrawalService) *BalanceHandler {
	return &BalanceHandler{
		ledgerService:     ledgerService,
		withdrawalService: withdrawalService,
	}
}

// GetBalance godoc
//
//	@Summary		Get the balance ledger
//	@Description	Returns the ledger after daily-bonus expiry: a stale today-bonus reads as 0 while balance and total earning are untouched.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Ledger state"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	sale, err := h.ledgerService.GetSale(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance:        sale.Balance,
		TrialBonus:     sale.TrialBonus,
		TodayBonus:     sale.TodayBonus,
		TotalEarning:   sale.TotalEarning,
		NumberOfRating: sale.NumberOfRating,
		Available:      h.ledgerService.AvailableFunds(sale),
	})
}

// Withdraw godoc
//
//	@Summary		Request a withdrawal
//	@Description	Opens a pending withdrawal for the given sum. Rejected while another request is pending, for non-positive sums, or when the sum exceeds the balance.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BalanceWithdrawRequestDTO	true	"Withdrawal request payload"
//	@Success		200		{object}	dto.GetWithdrawalsResponseDTO	"Created withdrawal"
//	@Failure		400		{object}	utils.Response					"Non-positive sum"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		402		{object}	utils.Response					"Insufficient balance"
//	@Failure		409		{object}	utils.Response					"Pending withdrawal exists"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/user/balance/withdraw [post]
func (h *BalanceHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.BalanceWithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	withdrawal, err := h.withdrawalService.Request(r.Context(), userID, req.Sum)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, withdrawalservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, withdrawalservice.ErrPendingExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GetWithdrawalsResponseDTO{
		ID:          withdrawal.ID,
		Sum:         withdrawal.Amount,
		Status:      withdrawal.Status.String(),
		RequestedAt: withdrawal.RequestedAt,
	})
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawal history
//	@Description	Returns the user's withdrawal requests, newest first.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetWithdrawalsResponseDTO	"Withdrawals history"
//	@Success		204	{object}	utils.Response					"Withdrawals not found"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/user/withdrawals [get]
func (h *BalanceHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	withdrawals, err := h.withdrawalService.GetWithdrawals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.GetWithdrawalsResponseDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = dto.GetWithdrawalsResponseDTO{
			ID:          wd.ID,
			Sum:         wd.Amount,
			Status:      wd.Status.String(),
			RequestedAt: wd.RequestedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
