// handler.go — основной обработчик API, реализующий generated.ServerInterface.
// Объединяет health и бизнес-обработчики, делегируя запросы в сервисный слой.
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bigkaa/tabel/report-module/internal/service"
	"github.com/bigkaa/tabel/report-module/internal/workday"
)

// APIHandler — основной обработчик API Report Module.
// Реализует generated.ServerInterface.
type APIHandler struct {
	health        *HealthHandler
	reportService *service.ReportService
	eventService  *service.EventService
	window        workday.Window
	logger        *slog.Logger
}

// NewAPIHandler создаёт основной обработчик API.
// window нужно для форматирования времени в бизнес-зоне
// и для диапазона матрицы по умолчанию (текущий месяц).
func NewAPIHandler(
	health *HealthHandler,
	reportService *service.ReportService,
	eventService *service.EventService,
	window workday.Window,
	logger *slog.Logger,
) *APIHandler {
	return &APIHandler{
		health:        health,
		reportService: reportService,
		eventService:  eventService,
		window:        window,
		logger:        logger.With(slog.String("component", "api_handler")),
	}
}

// --- Health endpoints (делегируются в HealthHandler) ---

// HealthLive — liveness probe.
func (h *APIHandler) HealthLive(w http.ResponseWriter, r *http.Request) {
	h.health.HealthLive(w, r)
}

// HealthReady — readiness probe.
func (h *APIHandler) HealthReady(w http.ResponseWriter, r *http.Request) {
	h.health.HealthReady(w, r)
}

// GetMetrics — Prometheus метрики.
func (h *APIHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	h.health.GetMetrics(w, r)
}

// --- Вспомогательные функции ---

// writeJSON записывает JSON-ответ с указанным статусом.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// paginationDefaults нормализует параметры пагинации.
func paginationDefaults(page, perPage *int) (pageVal, perPageVal int) {
	p := 1
	pp := 25

	if page != nil && *page > 0 {
		p = *page
	}
	if perPage != nil && *perPage > 0 && *perPage <= 100 {
		pp = *perPage
	}

	return p, pp
}

// clockTime форматирует момент времени как HH:MM:SS в бизнес-зоне.
func (h *APIHandler) clockTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.In(h.window.Location).Format("15:04:05")
	return &s
}

// formatDuration форматирует длительность как HH:MM:SS.
func formatDuration(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
