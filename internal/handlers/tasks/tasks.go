package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskmart/taskmart/internal/domain"
	"github.com/taskmart/taskmart/internal/dto"
	"github.com/taskmart/taskmart/internal/service/purchaseservice"
	"github.com/taskmart/taskmart/internal/service/taskservice"
	"github.com/taskmart/taskmart/pkg/auth"
	"github.com/taskmart/taskmart/pkg/utils"
)

type TaskService interface {
	Overview(ctx context.Context, userID int) ([]taskservice.TaskState, int, *domain.TaskProgress, error)
	ResetProgress(ctx context.Context, userID int) error
	SetAutoReset(ctx context.Context, userID int, allow bool) error
}

type PurchaseService interface {
	Complete(ctx context.Context, userID int, taskKey string, quantity int) (*purchaseservice.Result, error)
	Requirement(ctx context.Context, userID int, taskKey string) (*domain.TaskSetting, error)
	RequirementMet(ctx context.Context, userID int, taskKey string) (bool, error)
	Orders(ctx context.Context, userID int) ([]domain.Order, error)
}

type TaskHandler struct {
	taskService     TaskService
	purchaseService PurchaseService
}

func New(taskService TaskService, purchaseService PurchaseService) *TaskHandler {
	return &TaskHandler{
		taskService:     taskService,
		purchaseService: purchaseService,
	}
}

// GetTasks godoc
//
//	@Summary		Get the task checklist
//	@Description	Returns the user's checklist with per-task availability, purchase requirements and completion percentage.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.TaskListResponseDTO	"Checklist state"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/tasks [get]
func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	states, percentage, tp, err := h.taskService.Overview(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.TaskListResponseDTO{
		Tasks:      make([]dto.TaskStateDTO, 0, len(states)),
		Percentage: percentage,
		LastEdit:   tp.LastEdit,
		AutoReset:  tp.AllowSystemReset,
	}
	for _, state := range states {
		item := dto.TaskStateDTO{
			Key:       state.Key,
			Done:      state.Done,
			Available: state.Available,
			Paywall:   state.Paywall,
		}
		if !state.Paywall {
			setting, err := h.purchaseService.Requirement(r.Context(), userID, state.Key)
			if err == nil && setting != nil && setting.ProductID != "" {
				met, _ := h.purchaseService.RequirementMet(r.Context(), userID, state.Key)
				item.Required = &dto.TaskRequirementDTO{
					ProductID: setting.ProductID,
					Amount:    setting.Amount,
					Met:       met,
				}
			}
		}
		resp.Tasks = append(resp.Tasks, item)
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Complete godoc
//
//	@Summary		Complete a task
//	@Description	Runs the purchase/completion transaction for one task: validates availability and quantity, checks funds, decrements stock, records the order, credits 3% cashback and marks the task done.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			key		path		string						true	"Task key"
//	@Param			request	body		dto.CompleteTaskRequestDTO	true	"Purchase quantity"
//	@Success		200		{object}	dto.CompleteTaskResponseDTO	"Completion result"
//	@Failure		400		{object}	utils.Response				"Validation failure"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient funds"
//	@Failure		404		{object}	utils.Response				"Unknown task or product"
//	@Failure		409		{object}	utils.Response				"Task locked or out of stock"
//	@Failure		500		{object}	utils.Response				"Internal or partial failure"
//	@Router			/api/user/tasks/{key}/complete [post]
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	taskKey := chi.URLParam(r, "key")

	var req dto.CompleteTaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.purchaseService.Complete(r.Context(), userID, taskKey, req.Quantity)
	if err != nil {
		respondCompleteError(w, err)
		return
	}

	resp := dto.CompleteTaskResponseDTO{
		Task:        result.TaskKey,
		AlreadyDone: result.AlreadyDone,
		Purchased:   result.Purchased,
		Cashback:    result.Cashback,
	}
	if result.Order != nil {
		resp.OrderID = result.Order.ID
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// respondCompleteError maps the purchase error taxonomy onto specific HTTP
// statuses and messages; partial failures name the committed steps.
func respondCompleteError(w http.ResponseWriter, err error) {
	var partial *domain.PartialError
	switch {
	case errors.As(err, &partial):
		utils.RespondWithError(w, http.StatusInternalServerError, partial.Error())
	case errors.Is(err, purchaseservice.ErrUnknownTask):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, purchaseservice.ErrProductNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, purchaseservice.ErrTaskLocked):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, purchaseservice.ErrOutOfStock):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, purchaseservice.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, purchaseservice.ErrQuantityMismatch),
		errors.Is(err, purchaseservice.ErrInvalidQuantity):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Reset godoc
//
//	@Summary		Reset progress
//	@Description	Explicitly clears every task flag back to incomplete.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{string}	string			"Progress reset"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/tasks/reset [post]
func (h *TaskHandler) Reset(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	if err := h.taskService.ResetProgress(r.Context(), userID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "progress reset")
}

// AutoReset godoc
//
//	@Summary		Toggle nightly auto-reset
//	@Description	Controls whether the nightly sweep may clear this user's progress.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AutoResetRequestDTO	true	"Auto-reset flag"
//	@Success		200		{string}	string					"Flag updated"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/tasks/auto-reset [post]
func (h *TaskHandler) AutoReset(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AutoResetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.taskService.SetAutoReset(r.Context(), userID, req.Allow); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "auto-reset updated")
}

// GetOrders godoc
//
//	@Summary		Get purchase history
//	@Description	Returns the user's orders, newest first.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.OrderResponseDTO	"Orders"
//	@Success		204	{object}	utils.Response			"No orders"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/orders [get]
func (h *TaskHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	orders, err := h.purchaseService.Orders(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Orders not found")
		return
	}

	resp := make([]dto.OrderResponseDTO, len(orders))
	for i, order := range orders {
		resp[i] = dto.OrderResponseDTO{
			ID:             order.ID,
			ProductID:      order.ProductID,
			Amount:         order.Amount,
			OrderedAt:      order.OrderedAt,
			ShipmentStatus: order.ShipmentStatus,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
