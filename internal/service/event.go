// event.go — сервис журнала событий проходной.
// Приём событий от контроллеров, просмотр и soft delete.
// Любое изменение журнала инвалидирует кэш отчётов.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bigkaa/tabel/report-module/internal/domain/model"
	"github.com/bigkaa/tabel/report-module/internal/repository"
)

// ErrInvalidDevice — неизвестный код устройства.
var ErrInvalidDevice = errors.New("неизвестный код устройства")

// Prometheus-метрики журнала событий.
var (
	eventsIngestedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rm_events_ingested_total",
		Help: "Общее количество принятых событий проходной по устройствам.",
	}, []string{"device"})
	eventsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rm_events_deleted_total",
		Help: "Общее количество soft-deleted событий проходной.",
	})
)

// EventService — сервис журнала событий проходной.
type EventService struct {
	eventRepo repository.EventRepository
	cache     *ReportCache
	logger    *slog.Logger
}

// NewEventService создаёт сервис журнала событий.
func NewEventService(
	eventRepo repository.EventRepository,
	cache *ReportCache,
	logger *slog.Logger,
) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		cache:     cache,
		logger:    logger.With(slog.String("component", "event_service")),
	}
}

// Create принимает событие проходной: присваивает UUID, фиксирует время
// получения сервером, сохраняет и инвалидирует кэш отчётов.
func (s *EventService) Create(ctx context.Context, userID int64, deviceID int, eventTime time.Time) (*model.AttendanceEvent, error) {
	if deviceID != model.DeviceIn && deviceID != model.DeviceOut {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDevice, deviceID)
	}

	e := &model.AttendanceEvent{
		EventID:          uuid.New().String(),
		UserID:           userID,
		DeviceID:         deviceID,
		EventTime:        eventTime,
		ServerReceivedAt: time.Now().UTC(),
	}

	if err := s.eventRepo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("сохранение события: %w", err)
	}

	s.cache.Invalidate()
	eventsIngestedTotal.WithLabelValues(deviceLabel(deviceID)).Inc()

	s.logger.Info("Событие принято",
		slog.String("event_id", e.EventID),
		slog.Int64("user_id", userID),
		slog.Int("device_id", deviceID),
		slog.Time("event_time", eventTime),
	)

	return e, nil
}

// Get возвращает событие по UUID.
func (s *EventService) Get(ctx context.Context, eventID string) (*model.AttendanceEvent, error) {
	e, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("получение события: %w", err)
	}
	return e, nil
}

// List возвращает события по фильтрам с пагинацией и общее количество.
func (s *EventService) List(ctx context.Context, filters repository.EventListFilters, page, perPage int) ([]*model.AttendanceEvent, int, error) {
	page, perPage = normalizePage(page, perPage)

	events, total, err := s.eventRepo.List(ctx, filters, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("выборка событий: %w", err)
	}
	return events, total, nil
}

// Delete помечает событие удалённым и инвалидирует кэш отчётов.
// Журнал append-only: записи никогда не удаляются физически.
func (s *EventService) Delete(ctx context.Context, eventID string) error {
	if err := s.eventRepo.SoftDelete(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("удаление события: %w", err)
	}

	s.cache.Invalidate()
	eventsDeletedTotal.Inc()

	s.logger.Info("Событие удалено", slog.String("event_id", eventID))
	return nil
}

// deviceLabel — значение лейбла device для метрик.
func deviceLabel(deviceID int) string {
	switch deviceID {
	case model.DeviceIn:
		return "in"
	case model.DeviceOut:
		return "out"
	default:
		return "unknown"
	}
}
