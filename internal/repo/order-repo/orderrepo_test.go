package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/taskmart/taskmart/internal/domain"
	"github.com/taskmart/taskmart/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB
}

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)

func orderRows() *pgxmock.Rows {
	automationID := "auto-1"
	return pgxmock.NewRows([]string{
		"id", "user_id", "product_id", "amount", "ordered_at",
		"shipment_automation_id", "shipment_status", "shipment_updated_at",
	}).AddRow("order-1", 1, "p-1", 2, testNow, &automationID, "NEW", testNow)
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`INSERT INTO orders (id, user_id, product_id, amount, ordered_at, shipment_automation_id, shipment_status, shipment_updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)

	order := &domain.Order{
		ID:                "order-1",
		UserID:            1,
		ProductID:         "p-1",
		Amount:            2,
		OrderedAt:         testNow,
		ShipmentStatus:    "NEW",
		ShipmentUpdatedAt: testNow,
	}

	mock.ExpectExec(query).
		WithArgs("order-1", 1, "p-1", 2, testNow, (*string)(nil), "NEW", testNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.Save(context.Background(), order))

	mock.ExpectExec(query).
		WithArgs("order-1", 1, "p-1", 2, testNow, (*string)(nil), "NEW", testNow).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Save(context.Background(), order))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindOrdersByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, user_id, product_id, amount, ordered_at, shipment_automation_id, shipment_status, shipment_updated_at FROM orders WHERE user_id = $1 ORDER BY ordered_at DESC`)

	mock.ExpectQuery(query).WithArgs(1).WillReturnRows(orderRows())

	orders, err := repo.FindOrdersByUserID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, "order-1", orders[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindUserOrdersOnDay(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, user_id, product_id, amount, ordered_at, shipment_automation_id, shipment_status, shipment_updated_at FROM orders WHERE user_id = $1 AND ordered_at >= $2 AND ordered_at < $3 ORDER BY ordered_at DESC`)

	start, end := domain.DayBounds(testNow)
	mock.ExpectQuery(query).WithArgs(1, start, end).WillReturnRows(orderRows())

	orders, err := repo.FindUserOrdersOnDay(context.Background(), 1, testNow)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindDueForShipment(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT o.id, o.user_id, o.product_id, o.amount, o.ordered_at, o.shipment_automation_id, o.shipment_status, o.shipment_updated_at FROM orders o JOIN shipment_automations a ON a.id = o.shipment_automation_id WHERE o.shipment_automation_id IS NOT NULL AND o.shipment_status <> a.statuses[array_length(a.statuses, 1)] AND o.shipment_updated_at + make_interval(secs => a.step_interval_seconds) <= $1 ORDER BY o.shipment_updated_at LIMIT $2`)

	t.Run("Due orders are returned", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(testNow, uint32(100)).WillReturnRows(orderRows())

		orders, err := repo.FindDueForShipment(context.Background(), testNow, 100)
		assert.NoError(t, err)
		assert.Len(t, orders, 1)
		assert.NotNil(t, orders[0].ShipmentAutomationID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(testNow, uint32(100)).WillReturnError(errors.New("database error"))

		_, err := repo.FindDueForShipment(context.Background(), testNow, 100)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_UpdateShipment(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`UPDATE orders SET shipment_status = $2, shipment_updated_at = $3 WHERE id = $1`)

	mock.ExpectExec(query).WithArgs("order-1", "IN_TRANSIT", testNow).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.UpdateShipment(context.Background(), "order-1", "IN_TRANSIT", testNow))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAutomation(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, name, statuses, step_interval_seconds FROM shipment_automations WHERE id = $1`)

	t.Run("Existing automation", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "name", "statuses", "step_interval_seconds"}).
			AddRow("auto-1", "standard", []string{"NEW", "IN_TRANSIT", "DELIVERED"}, int64(3600))
		mock.ExpectQuery(query).WithArgs("auto-1").WillReturnRows(rows)

		automation, err := repo.GetAutomation(context.Background(), "auto-1")
		assert.NoError(t, err)
		assert.Equal(t, []string{"NEW", "IN_TRANSIT", "DELIVERED"}, automation.Statuses)
		assert.Equal(t, time.Hour, automation.StepInterval)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing automation returns nil", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("missing").WillReturnError(pgx.ErrNoRows)

		automation, err := repo.GetAutomation(context.Background(), "missing")
		assert.NoError(t, err)
		assert.Nil(t, automation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
