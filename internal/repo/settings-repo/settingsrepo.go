package settingsrepo

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/taskmart/taskmart/internal/domain"
	"github.com/taskmart/taskmart/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// GetDefault returns the global requirement table (the row with no admin).
func (r *Repository) GetDefault(ctx context.Context) (domain.TaskSettings, error) {
	query := `
        SELECT settings
        FROM task_settings
        WHERE admin_id IS NULL
    `
	return r.getSettings(ctx, query)
}

// GetByAdminID returns an admin's override table, or nil when the admin has
// no overrides.
func (r *Repository) GetByAdminID(ctx context.Context, adminID int) (domain.TaskSettings, error) {
	query := `
        SELECT settings
        FROM task_settings
        WHERE admin_id = $1
    `
	return r.getSettings(ctx, query, adminID)
}

func (r *Repository) getSettings(ctx context.Context, query string, args ...any) (domain.TaskSettings, error) {
	row := r.db.QueryRow(ctx, query, args...)
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get task settings", zap.Error(err))
		return nil, err
	}
	var settings domain.TaskSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		zap.L().Error("malformed task settings json", zap.Error(err))
		return nil, nil
	}
	return settings, nil
}

// Upsert replaces the settings table for one scope. adminID nil targets the
// global default table.
func (r *Repository) Upsert(ctx context.Context, adminID *int, settings domain.TaskSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO task_settings (admin_id, settings)
        VALUES ($1, $2)
        ON CONFLICT (COALESCE(admin_id, 0)) DO UPDATE SET settings = EXCLUDED.settings
    `
	if _, err := r.db.Exec(ctx, query, adminID, raw); err != nil {
		zap.L().Error("failed to upsert task settings", zap.Error(err))
		return err
	}
	return nil
}
