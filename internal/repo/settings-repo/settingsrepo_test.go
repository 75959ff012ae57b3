package settingsrepo

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/taskmart/taskmart/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func TestRepository_GetDefault(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT settings FROM task_settings WHERE admin_id IS NULL`)

	t.Run("Global table is returned", func(t *testing.T) {
		raw := []byte(`{"task1":{"product_id":"p-1","amount":"2"}}`)
		mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows([]string{"settings"}).AddRow(raw))

		settings, err := repo.GetDefault(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "p-1", settings["task1"].ProductID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No global table yet", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(pgx.ErrNoRows)

		settings, err := repo.GetDefault(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, settings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Malformed stored json reads as no settings", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows([]string{"settings"}).AddRow([]byte(`{"task1":`)))

		settings, err := repo.GetDefault(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, settings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(errors.New("database error"))

		_, err := repo.GetDefault(context.Background())
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetByAdminID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT settings FROM task_settings WHERE admin_id = $1`)

	t.Run("Override table is returned", func(t *testing.T) {
		raw := []byte(`{"task2":{"product_id":"p-9","amount":"","user_id":[1,7]}}`)
		mock.ExpectQuery(query).WithArgs(42).WillReturnRows(pgxmock.NewRows([]string{"settings"}).AddRow(raw))

		settings, err := repo.GetByAdminID(context.Background(), 42)
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 7}, settings["task2"].UserIDs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Admin has no overrides", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(42).WillReturnError(pgx.ErrNoRows)

		settings, err := repo.GetByAdminID(context.Background(), 42)
		assert.NoError(t, err)
		assert.Nil(t, settings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`INSERT INTO task_settings (admin_id, settings) VALUES ($1, $2) ON CONFLICT (COALESCE(admin_id, 0)) DO UPDATE SET settings = EXCLUDED.settings`)

	settings := domain.TaskSettings{"task1": {ProductID: "p-1", Amount: "2"}}
	raw, err := json.Marshal(settings)
	assert.NoError(t, err)

	adminID := 42
	mock.ExpectExec(query).WithArgs(&adminID, raw).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.Upsert(context.Background(), &adminID, settings))

	mock.ExpectExec(query).WithArgs((*int)(nil), raw).WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Upsert(context.Background(), nil, settings))
	assert.NoError(t, mock.ExpectationsWereMet())
}
