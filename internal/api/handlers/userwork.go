// userwork.go — обработчики отчётов рабочего времени.
// GET /api/v1/user-work — summary, GET /api/v1/user-work/actual — detail,
// GET /api/v1/user-work/matrix — матрица дата × сотрудник.
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	apierrors "github.com/bigkaa/tabel/report-module/internal/api/errors"
	"github.com/bigkaa/tabel/report-module/internal/api/generated"
	"github.com/bigkaa/tabel/report-module/internal/domain/model"
)

// GetUserWorkSummary — реализация GET /api/v1/user-work.
func (h *APIHandler) GetUserWorkSummary(w http.ResponseWriter, r *http.Request, params generated.GetUserWorkSummaryParams) {
	page, perPage := paginationDefaults(params.Page, params.PerPage)

	result, err := h.reportService.Summary(r.Context(), page, perPage)
	if err != nil {
		h.logger.Error("Ошибка построения summary-отчёта",
			slog.String("error", err.Error()),
		)
		apierrors.InternalError(w, "Внутренняя ошибка при построении отчёта")
		return
	}

	records := make([]generated.UserWorkRecord, 0, len(result.Records))
	for _, rec := range result.Records {
		records = append(records, h.dailyRecordToAPI(rec))
	}

	writeJSON(w, http.StatusOK, generated.UserWorkPage{
		Data:       records,
		Page:       result.Page,
		PerPage:    result.PerPage,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

// GetUserWorkDetails — реализация GET /api/v1/user-work/actual.
func (h *APIHandler) GetUserWorkDetails(w http.ResponseWriter, r *http.Request, params generated.GetUserWorkDetailsParams) {
	page, perPage := paginationDefaults(params.Page, params.PerPage)

	result, err := h.reportService.Details(r.Context(), page, perPage)
	if err != nil {
		h.logger.Error("Ошибка построения detail-отчёта",
			slog.String("error", err.Error()),
		)
		apierrors.InternalError(w, "Внутренняя ошибка при построении отчёта")
		return
	}

	records := make([]generated.UserWorkDetailRecord, 0, len(result.Records))
	for _, rec := range result.Records {
		base := h.dailyRecordToAPI(rec)
		records = append(records, generated.UserWorkDetailRecord{
			Date:              base.Date,
			UserId:            base.UserId,
			UserName:          base.UserName,
			Work:              base.Work,
			TotalTime:         formatDuration(rec.TotalDuration),
			TotalSeconds:      int64(rec.TotalDuration.Seconds()),
			SuspectedActivity: rec.Suspected,
		})
	}

	writeJSON(w, http.StatusOK, generated.UserWorkDetailPage{
		Data:       records,
		Page:       result.Page,
		PerPage:    result.PerPage,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

// GetUserWorkMatrix — реализация GET /api/v1/user-work/matrix.
// Без параметров from/to отчёт строится за текущий месяц бизнес-зоны.
func (h *APIHandler) GetUserWorkMatrix(w http.ResponseWriter, r *http.Request, params generated.GetUserWorkMatrixParams) {
	from, to := h.matrixRange(params)
	if to.Before(from) {
		apierrors.ValidationError(w, "Параметр from не может быть позже to")
		return
	}

	result, err := h.reportService.Matrix(r.Context(), from, to)
	if err != nil {
		h.logger.Error("Ошибка построения матричного отчёта",
			slog.String("error", err.Error()),
		)
		apierrors.InternalError(w, "Внутренняя ошибка при построении отчёта")
		return
	}

	rows := make([]generated.MatrixRow, 0, len(result.Records))
	for _, rec := range result.Records {
		days := make(map[string]generated.MatrixDay, len(rec.Days))
		for day, cell := range rec.Days {
			days[day] = generated.MatrixDay{
				Come:  h.clockTime(cell.Come),
				Out:   h.clockTime(cell.Out),
				Hours: cell.DurationHours,
			}
		}
		rows = append(rows, generated.MatrixRow{
			UserId:     rec.UserID,
			UserName:   rec.Username,
			Days:       days,
			TotalHours: rec.TotalHours,
			TotalDays:  rec.TotalDays,
		})
	}

	writeJSON(w, http.StatusOK, generated.MatrixReport{
		Headers: result.Headers,
		Data:    rows,
	})
}

// matrixRange возвращает диапазон матрицы из параметров запроса.
// По умолчанию — первый и последний день текущего месяца бизнес-зоны.
// Непарсибельная граница заменяется границей по умолчанию,
// ошибка вызывающему не возвращается.
func (h *APIHandler) matrixRange(params generated.GetUserWorkMatrixParams) (from, to time.Time) {
	now := time.Now().In(h.window.Location)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, h.window.Location)
	monthEnd := monthStart.AddDate(0, 1, -1)

	from = h.parseMatrixBound(params.From, "from", monthStart)
	to = h.parseMatrixBound(params.To, "to", monthEnd)
	return from, to
}

// parseMatrixBound разбирает границу диапазона YYYY-MM-DD.
// Отсутствующее или непарсибельное значение — граница по умолчанию.
func (h *APIHandler) parseMatrixBound(raw *string, name string, fallback time.Time) time.Time {
	if raw == nil {
		return fallback
	}
	t, err := time.ParseInLocation("2006-01-02", *raw, h.window.Location)
	if err != nil {
		h.logger.Warn("Непарсибельная граница диапазона матрицы, используется значение по умолчанию",
			slog.String("param", name),
			slog.String("value", *raw),
		)
		return fallback
	}
	return t
}

// dailyRecordToAPI конвертирует domain-запись дня в API UserWorkRecord.
func (h *APIHandler) dailyRecordToAPI(rec *model.DailyWorkRecord) generated.UserWorkRecord {
	work := make([]generated.WorkInterval, 0, len(rec.Work))
	for _, iv := range rec.Work {
		work = append(work, generated.WorkInterval{
			Come:     h.clockTime(iv.Come),
			Out:      h.clockTime(iv.Out),
			Duration: formatDuration(iv.Duration),
		})
	}
	return generated.UserWorkRecord{
		UserId:   rec.UserID,
		UserName: rec.Username,
		Date:     openapi_types.Date{Time: rec.Date},
		Work:     work,
	}
}
