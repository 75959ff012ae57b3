package progressrepo

import (
	"context"
	"encoding/json"
	"time"

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

// scanProgress absorbs malformed stored JSON: the row still loads, with an
// empty checklist, and the corruption is logged instead of failing the read.
func scanProgress(raw []byte, tp *domain.TaskProgress) {
	if err := json.Unmarshal(raw, &tp.Progress); err != nil {
		zap.L().Error("malformed progress json, treating as empty",
			zap.Int("userID", tp.UserID), zap.Error(err))
		tp.Progress = domain.NewProgress()
	}
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.TaskProgress, error) {
	query := `
        SELECT id, user_id, progress, last_edit, allow_system_reset
        FROM task_progress
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var tp domain.TaskProgress
	var raw []byte
	err := row.Scan(&tp.ID, &tp.UserID, &raw, &tp.LastEdit, &tp.AllowSystemReset)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get task progress", zap.Error(err))
		return nil, err
	}
	scanProgress(raw, &tp)
	return &tp, nil
}

func (r *Repository) Create(ctx context.Context, userID int, progress domain.Progress, now time.Time) (*domain.TaskProgress, error) {
	raw, err := json.Marshal(progress)
	if err != nil {
		return nil, err
	}
	query := `
        INSERT INTO task_progress (user_id, progress, last_edit, allow_system_reset)
        VALUES ($1, $2, $3, TRUE)
        RETURNING id, user_id, progress, last_edit, allow_system_reset
    `
	row := r.db.QueryRow(ctx, query, userID, raw, now)
	var tp domain.TaskProgress
	var stored []byte
	if err := row.Scan(&tp.ID, &tp.UserID, &stored, &tp.LastEdit, &tp.AllowSystemReset); err != nil {
		zap.L().Error("failed to create task progress", zap.Error(err))
		return nil, err
	}
	scanProgress(stored, &tp)
	return &tp, nil
}

func (r *Repository) UpdateProgress(ctx context.Context, userID int, progress domain.Progress, now time.Time) error {
	raw, err := json.Marshal(progress)
	if err != nil {
		return err
	}
	query := `
        UPDATE task_progress
        SET progress = $2, last_edit = $3
        WHERE user_id = $1
    `
	if _, err := r.db.Exec(ctx, query, userID, raw, now); err != nil {
		zap.L().Error("failed to update task progress", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetAllowSystemReset(ctx context.Context, userID int, allow bool) error {
	query := `
        UPDATE task_progress
        SET allow_system_reset = $2
        WHERE user_id = $1
    `
	if _, err := r.db.Exec(ctx, query, userID, allow); err != nil {
		zap.L().Error("failed to set allow_system_reset", zap.Error(err))
		return err
	}
	return nil
}

// ListResettable returns every progress row the nightly sweep may clear.
func (r *Repository) ListResettable(ctx context.Context) ([]domain.TaskProgress, error) {
	query := `
        SELECT id, user_id, progress, last_edit, allow_system_reset
        FROM task_progress
        WHERE allow_system_reset = TRUE
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list resettable progress", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.TaskProgress
	for rows.Next() {
		var tp domain.TaskProgress
		var raw []byte
		if err := rows.Scan(&tp.ID, &tp.UserID, &raw, &tp.LastEdit, &tp.AllowSystemReset); err != nil {
			zap.L().Error("failed to scan progress row", zap.Error(err))
			return nil, err
		}
		scanProgress(raw, &tp)
		result = append(result, tp)
	}
	return result, rows.Err()
}
