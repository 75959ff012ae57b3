package orderrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/taskmart/taskmart/internal/domain"
	"github.com/taskmart/taskmart/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const orderColumns = `id, user_id, product_id, amount, ordered_at, shipment_automation_id, shipment_status, shipment_updated_at`

func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (id, user_id, product_id, amount, ordered_at, shipment_automation_id, shipment_status, shipment_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query,
		order.ID, order.UserID, order.ProductID, order.Amount,
		order.OrderedAt, order.ShipmentAutomationID, order.ShipmentStatus, order.ShipmentUpdatedAt,
	)
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindOrdersByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE user_id = $1
        ORDER BY ordered_at DESC
    `
	return r.findOrders(ctx, query, userID)
}

// FindUserOrdersOnDay returns the user's orders placed on the calendar day
// containing t. Requirement checks only count same-day orders.
func (r *Repository) FindUserOrdersOnDay(ctx context.Context, userID int, t time.Time) ([]domain.Order, error) {
	start, end := domain.DayBounds(t)
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE user_id = $1 AND ordered_at >= $2 AND ordered_at < $3
        ORDER BY ordered_at DESC
    `
	return r.findOrders(ctx, query, userID, start, end)
}

// FindDueForShipment returns orders assigned to an automation whose next
// status step is due.
func (r *Repository) FindDueForShipment(ctx context.Context, now time.Time, limit uint32) ([]domain.Order, error) {
	query := `
        SELECT o.id, o.user_id, o.product_id, o.amount, o.ordered_at, o.shipment_automation_id, o.shipment_status, o.shipment_updated_at
        FROM orders o
        JOIN shipment_automations a ON a.id = o.shipment_automation_id
        WHERE o.shipment_automation_id IS NOT NULL
          AND o.shipment_status <> a.statuses[array_length(a.statuses, 1)]
          AND o.shipment_updated_at + make_interval(secs => a.step_interval_seconds) <= $1
        ORDER BY o.shipment_updated_at
        LIMIT $2
    `
	return r.findOrders(ctx, query, now, limit)
}

func (r *Repository) findOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		err := rows.Scan(
			&o.ID, &o.UserID, &o.ProductID, &o.Amount,
			&o.OrderedAt, &o.ShipmentAutomationID, &o.ShipmentStatus, &o.ShipmentUpdatedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *Repository) UpdateShipment(ctx context.Context, orderID string, status string, now time.Time) error {
	query := `
        UPDATE orders
        SET shipment_status = $2, shipment_updated_at = $3
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, orderID, status, now); err != nil {
		zap.L().Error("failed to update shipment status", zap.Error(err))
		return err
	}
	return nil
}

// GetAutomation loads a shipment automation definition. Automations are only
// ever read in service of orders, so they live with the order repository.
func (r *Repository) GetAutomation(ctx context.Context, id string) (*domain.ShipmentAutomation, error) {
	query := `
        SELECT id, name, statuses, step_interval_seconds
        FROM shipment_automations
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var a domain.ShipmentAutomation
	var intervalSeconds int64
	if err := row.Scan(&a.ID, &a.Name, &a.Statuses, &intervalSeconds); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get shipment automation", zap.Error(err))
		return nil, err
	}
	a.StepInterval = time.Duration(intervalSeconds) * time.Second
	return &a, nil
}
