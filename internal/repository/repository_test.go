package repository

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/bigkaa/tabel/report-module/internal/config"
	"github.com/bigkaa/tabel/report-module/internal/database"
	"github.com/bigkaa/tabel/report-module/internal/domain/model"
)

const testTZ = "Asia/Tashkent"

// setupTestDB запускает PostgreSQL контейнер, применяет миграции.
// Возвращает pgxpool.Pool; контейнер и пул закрываются через t.Cleanup.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("Пропуск интеграционного теста: TEST_INTEGRATION не установлена")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"docker.io/postgres:17-alpine",
		postgres.WithDatabase("tabel_test"),
		postgres.WithUsername("tabel"),
		postgres.WithPassword("test-password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Не удалось запустить PostgreSQL контейнер: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Ошибка остановки контейнера: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Не удалось получить host контейнера: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Не удалось получить port контейнера: %v", err)
	}

	// Настраиваем env для config.Load()
	t.Setenv("RM_DB_HOST", host)
	t.Setenv("RM_DB_PORT", port.Port())
	t.Setenv("RM_DB_NAME", "tabel_test")
	t.Setenv("RM_DB_USER", "tabel")
	t.Setenv("RM_DB_PASSWORD", "test-password")
	t.Setenv("RM_DB_SSL_MODE", "disable")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// Применяем миграции
	if err := database.Migrate(cfg, logger); err != nil {
		t.Fatalf("Ошибка миграций: %v", err)
	}

	// Подключаемся
	pool, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		t.Fatalf("Ошибка подключения: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	return pool
}

// insertEvent создаёт событие через репозиторий.
func insertEvent(t *testing.T, repo EventRepository, userID int64, device int, ts time.Time) *model.AttendanceEvent {
	t.Helper()
	e := &model.AttendanceEvent{
		EventID:          uuid.New().String(),
		UserID:           userID,
		DeviceID:         device,
		EventTime:        ts,
		ServerReceivedAt: time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("Create() ошибка: %v", err)
	}
	return e
}

// tashkent возвращает момент времени в бизнес-зоне тестов.
func tashkent(t *testing.T, value string) time.Time {
	t.Helper()
	loc, err := time.LoadLocation(testTZ)
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, loc)
	if err != nil {
		t.Fatalf("некорректное время %q: %v", value, err)
	}
	return ts
}

// --- Тесты EventRepository ---

func TestEventRepository_CreateAndGet(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewEventRepository(pool, testTZ)

	e := insertEvent(t, repo, 1, model.DeviceIn, tashkent(t, "2026-03-02 08:00"))
	if e.CreatedAt.IsZero() {
		t.Error("CreatedAt не установлен")
	}

	got, err := repo.GetByID(ctx, e.EventID)
	if err != nil {
		t.Fatalf("GetByID() ошибка: %v", err)
	}
	if got.UserID != 1 || got.DeviceID != model.DeviceIn {
		t.Errorf("GetByID() = user %d device %d, ожидалось user 1 device 1", got.UserID, got.DeviceID)
	}
	if !got.EventTime.Equal(e.EventTime) {
		t.Errorf("EventTime = %v, ожидалось %v", got.EventTime, e.EventTime)
	}

	if _, err := repo.GetByID(ctx, uuid.New().String()); err != ErrNotFound {
		t.Errorf("GetByID(несуществующий) = %v, ожидался ErrNotFound", err)
	}
}

func TestEventRepository_SoftDelete(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewEventRepository(pool, testTZ)

	e := insertEvent(t, repo, 2, model.DeviceIn, tashkent(t, "2026-03-02 09:00"))

	if err := repo.SoftDelete(ctx, e.EventID); err != nil {
		t.Fatalf("SoftDelete() ошибка: %v", err)
	}

	// Удалённое событие не видно ни в GetByID, ни в отчётных выборках
	if _, err := repo.GetByID(ctx, e.EventID); err != ErrNotFound {
		t.Errorf("GetByID(удалённый) = %v, ожидался ErrNotFound", err)
	}
	events, err := repo.ListForUserDay(ctx, 2, tashkent(t, "2026-03-02 00:00"))
	if err != nil {
		t.Fatalf("ListForUserDay() ошибка: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("ListForUserDay() вернул %d событий, ожидалось 0", len(events))
	}

	// Повторное удаление — ErrNotFound
	if err := repo.SoftDelete(ctx, e.EventID); err != ErrNotFound {
		t.Errorf("повторный SoftDelete() = %v, ожидался ErrNotFound", err)
	}
}

func TestEventRepository_WorkDays(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewEventRepository(pool, testTZ)

	// Два сотрудника, два дня
	insertEvent(t, repo, 1, model.DeviceIn, tashkent(t, "2026-03-02 08:00"))
	insertEvent(t, repo, 1, model.DeviceOut, tashkent(t, "2026-03-02 17:00"))
	insertEvent(t, repo, 2, model.DeviceIn, tashkent(t, "2026-03-02 08:30"))
	insertEvent(t, repo, 1, model.DeviceIn, tashkent(t, "2026-03-03 08:05"))

	keys, total, err := repo.ListWorkDays(ctx, 10, 0)
	if err != nil {
		t.Fatalf("ListWorkDays() ошибка: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, ожидалось 3 группы", total)
	}
	if len(keys) != 3 {
		t.Fatalf("len(keys) = %d, ожидалось 3", len(keys))
	}
	// Дни по убыванию, внутри дня сотрудники по возрастанию
	if keys[0].Date.Format("2006-01-02") != "2026-03-03" || keys[0].UserID != 1 {
		t.Errorf("keys[0] = %+v, ожидался (1, 2026-03-03)", keys[0])
	}
	if keys[1].UserID != 1 || keys[2].UserID != 2 {
		t.Errorf("порядок сотрудников внутри дня: %+v, %+v", keys[1], keys[2])
	}

	// События одного дня — по возрастанию времени
	events, err := repo.ListForUserDay(ctx, 1, keys[1].Date)
	if err != nil {
		t.Fatalf("ListForUserDay() ошибка: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, ожидалось 2", len(events))
	}
	if !events[0].EventTime.Before(events[1].EventTime) {
		t.Error("события не упорядочены по возрастанию времени")
	}
}

// TestEventRepository_DayBoundary: граница дня — локальная полночь
// бизнес-зоны, а не UTC. 01:00 3 марта в Ташкенте — это 20:00 2 марта UTC;
// событие обязано попасть в 3 марта.
func TestEventRepository_DayBoundary(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewEventRepository(pool, testTZ)

	insertEvent(t, repo, 5, model.DeviceIn, tashkent(t, "2026-03-03 01:00"))

	keys, _, err := repo.ListWorkDays(ctx, 10, 0)
	if err != nil {
		t.Fatalf("ListWorkDays() ошибка: %v", err)
	}
	if len(keys) != 1 {
		t.Fatalf("len(keys) = %d, ожидалось 1", len(keys))
	}
	if got := keys[0].Date.Format("2006-01-02"); got != "2026-03-03" {
		t.Errorf("день = %s, ожидался 2026-03-03 (локальная граница дня)", got)
	}
}

func TestEventRepository_ListRange(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewEventRepository(pool, testTZ)

	insertEvent(t, repo, 1, model.DeviceIn, tashkent(t, "2026-03-01 08:00"))
	insertEvent(t, repo, 1, model.DeviceIn, tashkent(t, "2026-03-05 08:00"))
	insertEvent(t, repo, 2, model.DeviceIn, tashkent(t, "2026-03-03 08:00"))
	// Вне диапазона
	insertEvent(t, repo, 1, model.DeviceIn, tashkent(t, "2026-04-01 08:00"))

	events, err := repo.ListRange(ctx,
		tashkent(t, "2026-03-01 00:00"), tashkent(t, "2026-03-31 00:00"))
	if err != nil {
		t.Fatalf("ListRange() ошибка: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, ожидалось 3", len(events))
	}
	// Порядок: сотрудник, затем время
	if events[0].UserID != 1 || events[2].UserID != 2 {
		t.Errorf("порядок событий по сотрудникам нарушен: %d, %d, %d",
			events[0].UserID, events[1].UserID, events[2].UserID)
	}
}

func TestEventRepository_ListFilters(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewEventRepository(pool, testTZ)

	insertEvent(t, repo, 1, model.DeviceIn, tashkent(t, "2026-03-02 08:00"))
	insertEvent(t, repo, 1, model.DeviceOut, tashkent(t, "2026-03-02 17:00"))
	insertEvent(t, repo, 2, model.DeviceIn, tashkent(t, "2026-03-02 08:30"))

	userID := int64(1)
	events, total, err := repo.List(ctx, EventListFilters{UserID: &userID}, 10, 0)
	if err != nil {
		t.Fatalf("List() ошибка: %v", err)
	}
	if total != 2 || len(events) != 2 {
		t.Errorf("List(user=1) = %d событий (total %d), ожидалось 2", len(events), total)
	}

	from := tashkent(t, "2026-03-02 12:00")
	events, total, err = repo.List(ctx, EventListFilters{From: &from}, 10, 0)
	if err != nil {
		t.Fatalf("List() ошибка: %v", err)
	}
	if total != 1 || len(events) != 1 {
		t.Errorf("List(from=12:00) = %d событий (total %d), ожидалось 1", len(events), total)
	}
}

// --- Тесты UserRepository ---

func TestUserRepository_GetByID(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(pool)

	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO users (username) VALUES ($1) RETURNING id`, "a.karimov").Scan(&id)
	if err != nil {
		t.Fatalf("не удалось создать сотрудника: %v", err)
	}

	u, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID() ошибка: %v", err)
	}
	if u.Username != "a.karimov" {
		t.Errorf("Username = %q, ожидалось a.karimov", u.Username)
	}

	// Неизвестный сотрудник
	if _, err := repo.GetByID(ctx, id+1000); err != ErrNotFound {
		t.Errorf("GetByID(неизвестный) = %v, ожидался ErrNotFound", err)
	}

	// Soft-deleted сотрудник невидим
	if _, err := pool.Exec(ctx, `UPDATE users SET deleted_at = now() WHERE id = $1`, id); err != nil {
		t.Fatalf("не удалось пометить сотрудника удалённым: %v", err)
	}
	if _, err := repo.GetByID(ctx, id); err != ErrNotFound {
		t.Errorf("GetByID(удалённый) = %v, ожидался ErrNotFound", err)
	}
}
