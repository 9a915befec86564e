package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bigkaa/tabel/report-module/internal/domain/model"
)

// UserRepository — интерфейс доступа к сотрудникам.
// Report Module читает только имя для подстановки в отчёты;
// управление сотрудниками — забота внешней системы.
type UserRepository interface {
	// GetByID возвращает сотрудника по идентификатору.
	// Для отсутствующих и soft-deleted сотрудников — ErrNotFound.
	GetByID(ctx context.Context, userID int64) (*model.User, error)
}

// userRepo — реализация UserRepository через pgx.
type userRepo struct {
	db DBTX
}

// NewUserRepository создаёт репозиторий сотрудников.
func NewUserRepository(db DBTX) UserRepository {
	return &userRepo{db: db}
}

// GetByID возвращает сотрудника по идентификатору или ErrNotFound.
func (r *userRepo) GetByID(ctx context.Context, userID int64) (*model.User, error) {
	query := `SELECT id, username, deleted_at FROM users WHERE id = $1 AND deleted_at IS NULL`

	u := &model.User{}
	err := r.db.QueryRow(ctx, query, userID).Scan(&u.ID, &u.Username, &u.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения сотрудника: %w", err)
	}
	return u, nil
}
