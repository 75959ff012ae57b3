package shipment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/taskmart/taskmart/internal/config"
	"github.com/taskmart/taskmart/internal/domain"
	"github.com/taskmart/taskmart/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingOrders sync.Map

type OrderRepo interface {
	FindDueForShipment(ctx context.Context, now time.Time, limit uint32) ([]domain.Order, error)
	UpdateShipment(ctx context.Context, orderID string, status string, now time.Time) error
	GetAutomation(ctx context.Context, id string) (*domain.ShipmentAutomation, error)
}

// automationResponse is the registry wire format for one automation.
type automationResponse struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Statuses            []string `json:"statuses"`
	StepIntervalSeconds int64    `json:"step_interval_seconds"`
}

// Service advances orders through their shipment automation's status
// sequence. Definitions come from the local table first, then from the
// automation registry when configured; either way they are cached for the
// life of the process since definitions are immutable.
type Service struct {
	url          string
	orderRepo    OrderRepo
	client       clients.HTTPClientI
	limit        uint32
	workerPool   WorkerPoolI
	pollInterval time.Duration

	automations sync.Map

	now func() time.Time
}

func New(cfg *config.Config, orderRepo OrderRepo, client clients.HTTPClientI) *Service {
	return &Service{
		url:          cfg.AutomationAddress,
		orderRepo:    orderRepo,
		client:       client,
		limit:        1000,
		workerPool:   NewWorkerPool(10),
		pollInterval: cfg.ShipmentInterval,
		now:          time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Shipment service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping shipment service")
			return
		case <-ticker.C:
			s.processOrders(ctx)
		}
	}
}

func (s *Service) processOrders(ctx context.Context) {
	orders, err := s.orderRepo.FindDueForShipment(ctx, s.now(), atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch orders due for shipment", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, order := range orders {
		order := order

		if _, loaded := processingOrders.LoadOrStore(order.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingOrders.Delete(order.ID)
				return s.handleOrder(ctx, order)
			})
			if err != nil {
				processingOrders.Delete(order.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error advancing shipments", zap.Error(err))
	}
}

func (s *Service) handleOrder(ctx context.Context, order domain.Order) error {
	if order.ShipmentAutomationID == nil {
		return nil
	}

	automation, err := s.automation(ctx, *order.ShipmentAutomationID)
	if err != nil {
		return err
	}
	if automation == nil || len(automation.Statuses) == 0 {
		zap.L().Warn("Order references unknown automation",
			zap.String("orderID", order.ID),
			zap.String("automationID", *order.ShipmentAutomationID),
		)
		return nil
	}

	next, ok := nextStatus(automation.Statuses, order.ShipmentStatus)
	if !ok {
		return nil
	}

	if err := s.orderRepo.UpdateShipment(ctx, order.ID, next, s.now()); err != nil {
		return fmt.Errorf("failed to advance shipment for order %s: %w", order.ID, err)
	}
	zap.L().Info("Shipment status advanced",
		zap.String("orderID", order.ID),
		zap.String("status", next),
	)
	return nil
}

// nextStatus returns the step after current. An order whose status is not in
// the sequence yet enters at the first step; the final step is terminal.
func nextStatus(statuses []string, current string) (string, bool) {
	for i, st := range statuses {
		if st != current {
			continue
		}
		if i == len(statuses)-1 {
			return "", false
		}
		return statuses[i+1], true
	}
	return statuses[0], true
}

func (s *Service) automation(ctx context.Context, id string) (*domain.ShipmentAutomation, error) {
	if cached, ok := s.automations.Load(id); ok {
		return cached.(*domain.ShipmentAutomation), nil
	}

	automation, err := s.orderRepo.GetAutomation(ctx, id)
	if err != nil {
		return nil, err
	}
	if automation == nil && s.url != "" {
		automation, err = s.fetchAutomation(ctx, id)
		if err != nil {
			return nil, err
		}
	}
	if automation != nil {
		s.automations.Store(id, automation)
	}
	return automation, nil
}

// fetchAutomation pulls a definition from the automation registry. The read
// is idempotent so it retries with backoff and honors Retry-After.
func (s *Service) fetchAutomation(ctx context.Context, id string) (*domain.ShipmentAutomation, error) {
	url := s.url + "/api/automations/" + id

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		statusCode, respBody, respHeaders, err := s.client.Get(url, nil)
		if err != nil {
			if attempt < maxRetries {
				time.Sleep(retryInterval * time.Duration(attempt))
				continue
			}
			return nil, fmt.Errorf("failed to fetch automation %s after %d retries: %w", id, maxRetries, err)
		}

		switch statusCode {
		case http.StatusOK:
			var resp automationResponse
			if err := json.Unmarshal(respBody, &resp); err != nil {
				return nil, fmt.Errorf("failed to parse automation response: %w", err)
			}
			if resp.ID != id {
				return nil, fmt.Errorf("automation id mismatch: expected %s, got %s", id, resp.ID)
			}
			return &domain.ShipmentAutomation{
				ID:           resp.ID,
				Name:         resp.Name,
				Statuses:     resp.Statuses,
				StepInterval: time.Duration(resp.StepIntervalSeconds) * time.Second,
			}, nil
		case http.StatusNoContent, http.StatusNotFound:
			zap.L().Warn("Automation not found in registry", zap.String("automationID", id))
			return nil, nil
		case http.StatusTooManyRequests:
			s.waitRateLimit(id, respHeaders, attempt)
		default:
			zap.L().Error("Unexpected status code from automation registry",
				zap.Int("status", statusCode),
				zap.String("automationID", id),
			)
			return nil, fmt.Errorf("unexpected status code %d", statusCode)
		}
	}
	return nil, fmt.Errorf("failed to fetch automation %s after %d retries", id, maxRetries)
}

func (s *Service) waitRateLimit(id string, respHeaders http.Header, attempt int) {
	retryAfter := retryInterval * time.Duration(attempt)

	if header := respHeaders.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.String("automationID", id),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
}
