package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bigkaa/tabel/report-module/internal/domain/model"
)

// eventColumns — список столбцов таблицы attendance_events для SELECT-запросов.
// DRY: одно место для всех SELECT'ов.
const eventColumns = `event_id, user_id, device_id, event_time,
	server_received_at, created_at, deleted_at`

// WorkDayKey — группа отчёта: один сотрудник в один календарный день
// бизнес-зоны.
type WorkDayKey struct {
	// UserID — идентификатор сотрудника
	UserID int64
	// Date — календарный день (полночь, без времени)
	Date time.Time
}

// EventListFilters — фильтры для списка событий.
// Все поля — указатели, nil = фильтр не применяется.
type EventListFilters struct {
	// UserID — фильтр по сотруднику
	UserID *int64
	// From — события не раньше указанного момента
	From *time.Time
	// To — события не позже указанного момента
	To *time.Time
}

// EventRepository — интерфейс доступа к событиям проходной.
// Отчётные запросы (ListWorkDays, ListForUserDay, ListRange) возвращают
// события по возрастанию времени и всегда исключают soft-deleted записи.
type EventRepository interface {
	// Create сохраняет новое событие.
	Create(ctx context.Context, e *model.AttendanceEvent) error
	// GetByID возвращает событие по UUID.
	GetByID(ctx context.Context, eventID string) (*model.AttendanceEvent, error)
	// List возвращает события по фильтрам с пагинацией и общее количество.
	List(ctx context.Context, filters EventListFilters, limit, offset int) ([]*model.AttendanceEvent, int, error)
	// SoftDelete помечает событие удалённым.
	SoftDelete(ctx context.Context, eventID string) error

	// ListWorkDays возвращает страницу групп (сотрудник, день) по убыванию
	// дня и общее количество групп.
	ListWorkDays(ctx context.Context, limit, offset int) ([]WorkDayKey, int, error)
	// ListForUserDay возвращает события одного сотрудника за один день
	// по возрастанию времени.
	ListForUserDay(ctx context.Context, userID int64, day time.Time) ([]*model.AttendanceEvent, error)
	// ListRange возвращает события всех сотрудников за диапазон дней
	// (включительно) по возрастанию (сотрудник, время).
	ListRange(ctx context.Context, from, to time.Time) ([]*model.AttendanceEvent, error)
}

// eventRepo — реализация EventRepository через pgx.
// tz — имя бизнес-зоны для вычисления границы дня в SQL.
type eventRepo struct {
	db DBTX
	tz string
}

// NewEventRepository создаёт репозиторий событий.
// tz — имя бизнес-зоны (например "Asia/Tashkent").
func NewEventRepository(db DBTX, tz string) EventRepository {
	return &eventRepo{db: db, tz: tz}
}

// Create сохраняет новое событие.
func (r *eventRepo) Create(ctx context.Context, e *model.AttendanceEvent) error {
	query := `
		INSERT INTO attendance_events (event_id, user_id, device_id, event_time, server_received_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err := r.db.QueryRow(ctx, query,
		e.EventID, e.UserID, e.DeviceID, e.EventTime, e.ServerReceivedAt,
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка сохранения события: %w", err)
	}
	return nil
}

// GetByID возвращает событие по UUID или ErrNotFound.
// Soft-deleted события не возвращаются.
func (r *eventRepo) GetByID(ctx context.Context, eventID string) (*model.AttendanceEvent, error) {
	query := fmt.Sprintf(`SELECT %s FROM attendance_events WHERE event_id = $1 AND deleted_at IS NULL`, eventColumns)

	e := &model.AttendanceEvent{}
	err := r.db.QueryRow(ctx, query, eventID).Scan(
		&e.EventID, &e.UserID, &e.DeviceID, &e.EventTime,
		&e.ServerReceivedAt, &e.CreatedAt, &e.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения события: %w", err)
	}
	return e, nil
}

// List возвращает события по фильтрам с пагинацией и общее количество.
func (r *eventRepo) List(ctx context.Context, filters EventListFilters, limit, offset int) ([]*model.AttendanceEvent, int, error) {
	where, args := buildEventWhere(filters)
	argNum := len(args) + 1

	dataQuery := fmt.Sprintf(
		`SELECT %s FROM attendance_events %s ORDER BY event_time DESC LIMIT $%d OFFSET $%d`,
		eventColumns, where, argNum, argNum+1,
	)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка выборки событий: %w", err)
	}
	defer rows.Close()

	events, err := scanEvents(rows)
	if err != nil {
		return nil, 0, err
	}

	// Запрос общего количества (с теми же фильтрами, без LIMIT/OFFSET)
	countWhere, countArgs := buildEventWhere(filters)
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM attendance_events %s`, countWhere)

	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчёта событий: %w", err)
	}

	return events, total, nil
}

// SoftDelete помечает событие удалённым.
func (r *eventRepo) SoftDelete(ctx context.Context, eventID string) error {
	query := `
		UPDATE attendance_events
		SET deleted_at = now()
		WHERE event_id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query, eventID)
	if err != nil {
		return fmt.Errorf("ошибка удаления события: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListWorkDays возвращает страницу групп (сотрудник, день) по убыванию дня.
// День вычисляется в бизнес-зоне репозитория.
func (r *eventRepo) ListWorkDays(ctx context.Context, limit, offset int) ([]WorkDayKey, int, error) {
	query := `
		SELECT user_id, (event_time AT TIME ZONE $1)::date AS day
		FROM attendance_events
		WHERE deleted_at IS NULL
		GROUP BY user_id, day
		ORDER BY day DESC, user_id ASC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, r.tz, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка выборки рабочих дней: %w", err)
	}
	defer rows.Close()

	var keys []WorkDayKey
	for rows.Next() {
		var k WorkDayKey
		if err := rows.Scan(&k.UserID, &k.Date); err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования рабочего дня: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ошибка итерации рабочих дней: %w", err)
	}

	countQuery := `
		SELECT COUNT(*)
		FROM (
			SELECT 1
			FROM attendance_events
			WHERE deleted_at IS NULL
			GROUP BY user_id, (event_time AT TIME ZONE $1)::date
		) AS g`

	var total int
	if err := r.db.QueryRow(ctx, countQuery, r.tz).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчёта рабочих дней: %w", err)
	}

	return keys, total, nil
}

// ListForUserDay возвращает события одного сотрудника за один день
// по возрастанию времени.
func (r *eventRepo) ListForUserDay(ctx context.Context, userID int64, day time.Time) ([]*model.AttendanceEvent, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_events
		WHERE deleted_at IS NULL
		  AND user_id = $2
		  AND (event_time AT TIME ZONE $1)::date = $3::date
		ORDER BY event_time ASC`, eventColumns)

	rows, err := r.db.Query(ctx, query, r.tz, userID, day.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки событий за день: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListRange возвращает события всех сотрудников за диапазон дней
// (включительно) по возрастанию (сотрудник, время).
func (r *eventRepo) ListRange(ctx context.Context, from, to time.Time) ([]*model.AttendanceEvent, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_events
		WHERE deleted_at IS NULL
		  AND (event_time AT TIME ZONE $1)::date BETWEEN $2::date AND $3::date
		ORDER BY user_id ASC, event_time ASC`, eventColumns)

	rows, err := r.db.Query(ctx, query, r.tz, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки событий за диапазон: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// scanEvents читает все строки результата в срез событий.
func scanEvents(rows pgx.Rows) ([]*model.AttendanceEvent, error) {
	var events []*model.AttendanceEvent
	for rows.Next() {
		e := &model.AttendanceEvent{}
		if err := rows.Scan(
			&e.EventID, &e.UserID, &e.DeviceID, &e.EventTime,
			&e.ServerReceivedAt, &e.CreatedAt, &e.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования события: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации событий: %w", err)
	}
	return events, nil
}

// buildEventWhere строит WHERE-условие и аргументы для списка событий.
// Soft-deleted записи всегда исключаются.
func buildEventWhere(filters EventListFilters) (whereClause string, args []any) {
	conditions := []string{"deleted_at IS NULL"}
	argNum := 1

	if filters.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argNum))
		args = append(args, *filters.UserID)
		argNum++
	}
	if filters.From != nil {
		conditions = append(conditions, fmt.Sprintf("event_time >= $%d", argNum))
		args = append(args, *filters.From)
		argNum++
	}
	if filters.To != nil {
		conditions = append(conditions, fmt.Sprintf("event_time <= $%d", argNum))
		args = append(args, *filters.To)
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}
