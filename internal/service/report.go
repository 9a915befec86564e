// report.go — сервис построения отчётов рабочего времени.
// Координирует repository, ядро workday, LRU-кэш страниц
// и Prometheus-метрики.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bigkaa/tabel/report-module/internal/domain/model"
	"github.com/bigkaa/tabel/report-module/internal/repository"
	"github.com/bigkaa/tabel/report-module/internal/workday"
)

// Ошибки сервисного слоя.
var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("запись не найдена")
)

// Prometheus-метрики отчётов.
var (
	reportRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rm_report_requests_total",
		Help: "Общее количество запросов отчётов по видам.",
	}, []string{"kind"})
	reportBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rm_report_build_duration_seconds",
		Help:    "Длительность построения страницы отчёта (без учёта кэша).",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})
)

// Границы пагинации отчётов.
const (
	defaultPerPage = 25
	maxPerPage     = 100
)

// ReportService — сервис построения отчётов рабочего времени.
// Summary — сырые интервалы без ограничения окном, Details — зачтённое
// время с итогами и флагом аномалии, Matrix — матрица дата × сотрудник.
type ReportService struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	cache     *ReportCache
	logger    *slog.Logger

	window           workday.Window
	policy           workday.DuplicateInPolicy
	suspectThreshold time.Duration
}

// NewReportService создаёт сервис отчётов.
func NewReportService(
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	cache *ReportCache,
	window workday.Window,
	policy workday.DuplicateInPolicy,
	suspectThreshold time.Duration,
	logger *slog.Logger,
) *ReportService {
	return &ReportService{
		eventRepo:        eventRepo,
		userRepo:         userRepo,
		cache:            cache,
		window:           window,
		policy:           policy,
		suspectThreshold: suspectThreshold,
		logger:           logger.With(slog.String("component", "report_service")),
	}
}

// Summary возвращает страницу summary-отчёта: интервалы вход/выход
// с сырыми длительностями, без итогов и ограничения рабочим окном.
func (s *ReportService) Summary(ctx context.Context, page, perPage int) (*model.WorkReportPage, error) {
	return s.workReport(ctx, ReportKindSummary, page, perPage)
}

// Details возвращает страницу detail-отчёта: зачтённое время каждого
// интервала (окно минус обед), дневной итог и флаг аномалии.
func (s *ReportService) Details(ctx context.Context, page, perPage int) (*model.WorkReportPage, error) {
	return s.workReport(ctx, ReportKindDetail, page, perPage)
}

// workReport — общий путь summary/detail: кэш, страница групп
// (сотрудник, день), построение записей.
func (s *ReportService) workReport(ctx context.Context, kind string, page, perPage int) (*model.WorkReportPage, error) {
	reportRequestsTotal.WithLabelValues(kind).Inc()
	page, perPage = normalizePage(page, perPage)

	// Проверяем кэш
	key := s.cache.Key(kind, perPage, page)
	if cached, ok := s.cache.Get(kind, key); ok {
		s.logger.Debug("Кэш hit для отчёта", slog.String("key", key))
		return cached.(*model.WorkReportPage), nil
	}

	start := time.Now()

	keys, total, err := s.eventRepo.ListWorkDays(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("выборка рабочих дней: %w", err)
	}

	// Имена сотрудников запрашиваются один раз на страницу
	usernames := map[int64]*string{}

	records := make([]*model.DailyWorkRecord, 0, len(keys))
	for _, k := range keys {
		record, err := s.buildDaily(ctx, k, kind == ReportKindDetail, usernames)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	result := &model.WorkReportPage{
		Records:    records,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	}
	s.cache.Set(key, result)

	duration := time.Since(start)
	reportBuildDuration.WithLabelValues(kind).Observe(duration.Seconds())
	s.logger.Debug("Страница отчёта построена",
		slog.String("kind", kind),
		slog.Int("page", page),
		slog.Int("records", len(records)),
		slog.Duration("duration", duration),
	)

	return result, nil
}

// buildDaily строит запись отчёта для одной группы (сотрудник, день).
// detail=true добавляет ограничение рабочим окном, дневной итог
// и флаг аномалии.
func (s *ReportService) buildDaily(ctx context.Context, k repository.WorkDayKey, detail bool, usernames map[int64]*string) (*model.DailyWorkRecord, error) {
	events, err := s.eventRepo.ListForUserDay(ctx, k.UserID, k.Date)
	if err != nil {
		return nil, fmt.Errorf("выборка событий за день: %w", err)
	}

	sessions := workday.Reconstruct(events, s.policy)

	intervals := make([]model.WorkInterval, 0, len(sessions))
	for _, sess := range sessions {
		// Summary показывает только закрытые пары; открытые сессии
		// видны лишь в detail-отчёте (с нулевым зачтённым временем).
		if !detail && !sess.Complete() {
			continue
		}
		come := sess.Come
		interval := model.WorkInterval{Come: &come, Out: sess.Out}
		if detail {
			interval.Duration = s.window.Clamp(sess)
		} else {
			interval.Duration = sess.RawDuration()
		}
		intervals = append(intervals, interval)
	}

	username, err := s.username(ctx, k.UserID, usernames)
	if err != nil {
		return nil, err
	}

	record := &model.DailyWorkRecord{
		UserID:   k.UserID,
		Username: username,
		Date:     k.Date,
		Work:     intervals,
	}
	if detail {
		record.TotalDuration = s.window.Total(sessions)
		record.Suspected = record.TotalDuration > s.suspectThreshold
	}
	return record, nil
}

// Matrix возвращает матричный отчёт дата × сотрудник за диапазон дней
// (включительно). Ячейка дня — первый вход, последний выход
// и зачтённые часы; заголовки — только дни с событиями.
func (s *ReportService) Matrix(ctx context.Context, from, to time.Time) (*model.MatrixReport, error) {
	reportRequestsTotal.WithLabelValues(ReportKindMatrix).Inc()

	fromDay := from.In(s.window.Location).Format("2006-01-02")
	toDay := to.In(s.window.Location).Format("2006-01-02")

	// Проверяем кэш
	key := s.cache.KeyRange(ReportKindMatrix, fromDay, toDay)
	if cached, ok := s.cache.Get(ReportKindMatrix, key); ok {
		s.logger.Debug("Кэш hit для отчёта", slog.String("key", key))
		return cached.(*model.MatrixReport), nil
	}

	start := time.Now()

	events, err := s.eventRepo.ListRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("выборка событий за диапазон: %w", err)
	}

	// События упорядочены по (сотрудник, время) — группируем одним проходом:
	// сначала по сотруднику, внутри — по календарному дню бизнес-зоны.
	type userDays struct {
		userID int64
		days   []string // дни в порядке появления
		events map[string][]*model.AttendanceEvent
	}
	var users []*userDays
	var current *userDays
	for _, e := range events {
		if current == nil || current.userID != e.UserID {
			current = &userDays{
				userID: e.UserID,
				events: map[string][]*model.AttendanceEvent{},
			}
			users = append(users, current)
		}
		day := e.EventTime.In(s.window.Location).Format("2006-01-02")
		if _, ok := current.events[day]; !ok {
			current.days = append(current.days, day)
		}
		current.events[day] = append(current.events[day], e)
	}

	usernames := map[int64]*string{}
	headerSet := map[string]bool{}
	records := make([]*model.UserMatrixRow, 0, len(users))

	for _, u := range users {
		row := &model.UserMatrixRow{
			UserID: u.userID,
			Days:   make(map[string]model.MatrixDay, len(u.days)),
		}
		row.Username, err = s.username(ctx, u.userID, usernames)
		if err != nil {
			return nil, err
		}

		var totalHours float64
		for _, day := range u.days {
			sessions := workday.Reconstruct(u.events[day], s.policy)
			if len(sessions) == 0 {
				// Только отброшенные события (выход без входа) — дня нет
				continue
			}

			cell := model.MatrixDay{}
			come := sessions[0].Come
			cell.Come = &come
			cell.Out = sessions[len(sessions)-1].Out
			cell.DurationHours = roundHours(s.window.Total(sessions))

			row.Days[day] = cell
			headerSet[day] = true
			totalHours += cell.DurationHours
			if cell.DurationHours > 0 {
				row.TotalDays++
			}
		}
		if len(row.Days) == 0 {
			continue
		}
		row.TotalHours = roundHours1(totalHours)
		records = append(records, row)
	}

	headers := make([]string, 0, len(headerSet))
	for day := range headerSet {
		headers = append(headers, day)
	}
	sort.Strings(headers)

	result := &model.MatrixReport{Headers: headers, Records: records}
	s.cache.Set(key, result)

	duration := time.Since(start)
	reportBuildDuration.WithLabelValues(ReportKindMatrix).Observe(duration.Seconds())
	s.logger.Debug("Матричный отчёт построен",
		slog.String("from", fromDay),
		slog.String("to", toDay),
		slog.Int("users", len(records)),
		slog.Int("days", len(headers)),
		slog.Duration("duration", duration),
	)

	return result, nil
}

// username возвращает имя сотрудника с мемоизацией в рамках запроса.
// Неизвестный или удалённый сотрудник — nil (запись отчёта сохраняется).
func (s *ReportService) username(ctx context.Context, userID int64, memo map[int64]*string) (*string, error) {
	if name, ok := memo[userID]; ok {
		return name, nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			memo[userID] = nil
			return nil, nil
		}
		return nil, fmt.Errorf("получение сотрудника: %w", err)
	}

	memo[userID] = &user.Username
	return &user.Username, nil
}

// normalizePage приводит параметры пагинации к допустимым границам.
func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > maxPerPage {
		perPage = defaultPerPage
	}
	return page, perPage
}

// roundHours переводит длительность в часы с округлением
// до одного знака после запятой.
func roundHours(d time.Duration) float64 {
	return roundHours1(d.Hours())
}

// roundHours1 округляет часы до одного знака после запятой.
func roundHours1(h float64) float64 {
	return math.Round(h*10) / 10
}
