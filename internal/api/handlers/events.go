// events.go — обработчики журнала событий проходной.
// POST /api/v1/events — приём, GET — список, GET/DELETE /{eventId} — по одному.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	apierrors "github.com/bigkaa/tabel/report-module/internal/api/errors"
	"github.com/bigkaa/tabel/report-module/internal/api/generated"
	"github.com/bigkaa/tabel/report-module/internal/domain/model"
	"github.com/bigkaa/tabel/report-module/internal/repository"
	"github.com/bigkaa/tabel/report-module/internal/service"
)

// CreateEvent — реализация POST /api/v1/events.
func (h *APIHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req generated.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.ValidationError(w, "Некорректный JSON в теле запроса")
		return
	}

	if req.UserId <= 0 {
		apierrors.ValidationError(w, "user_id должен быть положительным")
		return
	}
	if req.EventTime.IsZero() {
		apierrors.ValidationError(w, "event_time обязателен")
		return
	}

	event, err := h.eventService.Create(r.Context(), req.UserId, int(req.DeviceId), req.EventTime)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDevice) {
			apierrors.ValidationError(w, "device_id должен быть 1 (вход) или 2 (выход)")
			return
		}
		h.logger.Error("Ошибка приёма события",
			slog.String("error", err.Error()),
		)
		apierrors.InternalError(w, "Внутренняя ошибка при приёме события")
		return
	}

	writeJSON(w, http.StatusCreated, eventToAPI(event))
}

// ListEvents — реализация GET /api/v1/events.
func (h *APIHandler) ListEvents(w http.ResponseWriter, r *http.Request, params generated.ListEventsParams) {
	if params.From != nil && params.To != nil && params.From.After(*params.To) {
		apierrors.ValidationError(w, "Параметр from не может быть позже to")
		return
	}

	page, perPage := paginationDefaults(params.Page, params.PerPage)

	filters := repository.EventListFilters{
		UserID: params.UserId,
		From:   params.From,
		To:     params.To,
	}

	events, total, err := h.eventService.List(r.Context(), filters, page, perPage)
	if err != nil {
		h.logger.Error("Ошибка выборки событий",
			slog.String("error", err.Error()),
		)
		apierrors.InternalError(w, "Внутренняя ошибка при выборке событий")
		return
	}

	data := make([]generated.AttendanceEvent, 0, len(events))
	for _, e := range events {
		data = append(data, eventToAPI(e))
	}

	writeJSON(w, http.StatusOK, generated.EventPage{
		Data:       data,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	})
}

// GetEvent — реализация GET /api/v1/events/{eventId}.
func (h *APIHandler) GetEvent(w http.ResponseWriter, r *http.Request, eventId generated.EventId) {
	event, err := h.eventService.Get(r.Context(), eventId.String())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.NotFound(w, "Событие не найдено")
			return
		}
		h.logger.Error("Ошибка получения события",
			slog.String("event_id", eventId.String()),
			slog.String("error", err.Error()),
		)
		apierrors.InternalError(w, "Внутренняя ошибка при получении события")
		return
	}

	writeJSON(w, http.StatusOK, eventToAPI(event))
}

// DeleteEvent — реализация DELETE /api/v1/events/{eventId}.
func (h *APIHandler) DeleteEvent(w http.ResponseWriter, r *http.Request, eventId generated.EventId) {
	if err := h.eventService.Delete(r.Context(), eventId.String()); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.NotFound(w, "Событие не найдено")
			return
		}
		h.logger.Error("Ошибка удаления события",
			slog.String("event_id", eventId.String()),
			slog.String("error", err.Error()),
		)
		apierrors.InternalError(w, "Внутренняя ошибка при удалении события")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// eventToAPI конвертирует domain-событие в API AttendanceEvent.
func eventToAPI(e *model.AttendanceEvent) generated.AttendanceEvent {
	return generated.AttendanceEvent{
		EventId:          parseUUID(e.EventID),
		UserId:           e.UserID,
		DeviceId:         e.DeviceID,
		EventTime:        e.EventTime,
		ServerReceivedAt: e.ServerReceivedAt,
		CreatedAt:        e.CreatedAt,
	}
}

// parseUUID парсит строковый UUID из domain-модели.
// Некорректный UUID из БД даёт нулевой UUID, а не панику.
func parseUUID(s string) uuid.UUID {
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}
	}
	return u
}
