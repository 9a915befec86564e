package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/bigkaa/tabel/report-module/internal/domain/model"
	"github.com/bigkaa/tabel/report-module/internal/repository"
)

// TestEventService_Create проверяет приём события: UUID, время получения,
// инвалидация кэша.
func TestEventService_Create(t *testing.T) {
	var saved *model.AttendanceEvent
	eventRepo := &mockEventRepo{
		createFn: func(_ context.Context, e *model.AttendanceEvent) error {
			saved = e
			return nil
		},
	}
	cache := NewReportCache(100, time.Minute)
	svc := NewEventService(eventRepo, cache, slog.Default())

	keyBefore := cache.Key(ReportKindSummary, 25, 1)
	eventTime := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	e, err := svc.Create(context.Background(), 1, model.DeviceIn, eventTime)
	if err != nil {
		t.Fatalf("Create ошибка: %v", err)
	}

	if saved == nil {
		t.Fatal("событие не дошло до репозитория")
	}
	if e.EventID == "" {
		t.Error("EventID не присвоен")
	}
	if e.ServerReceivedAt.IsZero() {
		t.Error("ServerReceivedAt не зафиксирован")
	}
	if !e.EventTime.Equal(eventTime) {
		t.Errorf("EventTime = %v, ожидалось %v", e.EventTime, eventTime)
	}

	// Создание инвалидирует кэш отчётов
	if cache.Key(ReportKindSummary, 25, 1) == keyBefore {
		t.Error("кэш не инвалидирован после создания события")
	}
}

// TestEventService_Create_InvalidDevice проверяет отклонение
// неизвестного кода устройства.
func TestEventService_Create_InvalidDevice(t *testing.T) {
	cache := NewReportCache(100, time.Minute)
	svc := NewEventService(&mockEventRepo{}, cache, slog.Default())

	keyBefore := cache.Key(ReportKindSummary, 25, 1)

	_, err := svc.Create(context.Background(), 1, 99, time.Now())
	if !errors.Is(err, ErrInvalidDevice) {
		t.Fatalf("ошибка = %v, ожидалась ErrInvalidDevice", err)
	}

	// Отклонённое событие кэш не трогает
	if cache.Key(ReportKindSummary, 25, 1) != keyBefore {
		t.Error("кэш инвалидирован при отклонённом событии")
	}
}

// TestEventService_Delete проверяет soft delete и инвалидацию кэша.
func TestEventService_Delete(t *testing.T) {
	deleted := ""
	eventRepo := &mockEventRepo{
		softDeleteFn: func(_ context.Context, eventID string) error {
			deleted = eventID
			return nil
		},
	}
	cache := NewReportCache(100, time.Minute)
	svc := NewEventService(eventRepo, cache, slog.Default())

	keyBefore := cache.Key(ReportKindDetail, 25, 1)

	if err := svc.Delete(context.Background(), "ev-1"); err != nil {
		t.Fatalf("Delete ошибка: %v", err)
	}
	if deleted != "ev-1" {
		t.Errorf("удалён %q, ожидался ev-1", deleted)
	}
	if cache.Key(ReportKindDetail, 25, 1) == keyBefore {
		t.Error("кэш не инвалидирован после удаления события")
	}
}

// TestEventService_Delete_NotFound проверяет ErrNotFound
// без инвалидации кэша.
func TestEventService_Delete_NotFound(t *testing.T) {
	eventRepo := &mockEventRepo{
		softDeleteFn: func(_ context.Context, _ string) error {
			return repository.ErrNotFound
		},
	}
	cache := NewReportCache(100, time.Minute)
	svc := NewEventService(eventRepo, cache, slog.Default())

	keyBefore := cache.Key(ReportKindSummary, 25, 1)

	err := svc.Delete(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("ошибка = %v, ожидалась ErrNotFound", err)
	}
	if cache.Key(ReportKindSummary, 25, 1) != keyBefore {
		t.Error("кэш инвалидирован при отсутствующем событии")
	}
}

// TestEventService_Get проверяет получение события и ErrNotFound.
func TestEventService_Get(t *testing.T) {
	eventRepo := &mockEventRepo{
		getByIDFn: func(_ context.Context, eventID string) (*model.AttendanceEvent, error) {
			if eventID == "ev-1" {
				return &model.AttendanceEvent{EventID: "ev-1", UserID: 5}, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	svc := NewEventService(eventRepo, NewReportCache(100, time.Minute), slog.Default())

	e, err := svc.Get(context.Background(), "ev-1")
	if err != nil {
		t.Fatalf("Get ошибка: %v", err)
	}
	if e.UserID != 5 {
		t.Errorf("UserID = %d, ожидалось 5", e.UserID)
	}

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ошибка = %v, ожидалась ErrNotFound", err)
	}
}

// TestEventService_List проверяет пагинацию списка событий.
func TestEventService_List(t *testing.T) {
	eventRepo := &mockEventRepo{
		listFn: func(_ context.Context, _ repository.EventListFilters, limit, offset int) ([]*model.AttendanceEvent, int, error) {
			if limit != 25 || offset != 25 {
				t.Errorf("limit/offset = %d/%d, ожидалось 25/25", limit, offset)
			}
			return []*model.AttendanceEvent{{EventID: "ev-1"}}, 26, nil
		},
	}
	svc := NewEventService(eventRepo, NewReportCache(100, time.Minute), slog.Default())

	events, total, err := svc.List(context.Background(), repository.EventListFilters{}, 2, 25)
	if err != nil {
		t.Fatalf("List ошибка: %v", err)
	}
	if total != 26 || len(events) != 1 {
		t.Errorf("total/len = %d/%d, ожидалось 26/1", total, len(events))
	}
}
