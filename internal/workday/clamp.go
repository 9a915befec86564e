// clamp.go — ограничение сессии рабочим окном и вычет обеда.
package workday

import (
	"fmt"
	"time"
)

// Window — рабочее окно дня и обеденный перерыв в явной бизнес-зоне.
// Зона задаётся конфигурацией и никогда не берётся из окружения процесса:
// граница дня локальная, не UTC.
type Window struct {
	// Location — бизнес-зона (например Asia/Tashkent)
	Location *time.Location
	// WorkStart — начало рабочего дня
	WorkStart DayTime
	// WorkEnd — конец рабочего дня
	WorkEnd DayTime
	// BreakStart — начало обеда
	BreakStart DayTime
	// BreakEnd — конец обеда
	BreakEnd DayTime
}

// Validate проверяет согласованность окна.
func (w Window) Validate() error {
	if w.Location == nil {
		return fmt.Errorf("не задана бизнес-зона")
	}
	if w.WorkStart.Minutes() >= w.WorkEnd.Minutes() {
		return fmt.Errorf("начало рабочего дня %s не раньше конца %s", w.WorkStart, w.WorkEnd)
	}
	if w.BreakStart.Minutes() > w.BreakEnd.Minutes() {
		return fmt.Errorf("начало обеда %s позже конца %s", w.BreakStart, w.BreakEnd)
	}
	return nil
}

// MaxDuration — максимальная зачтённая длительность за день:
// рабочее окно за вычетом обеда.
func (w Window) MaxDuration() time.Duration {
	work := time.Duration(w.WorkEnd.Minutes()-w.WorkStart.Minutes()) * time.Minute
	br := time.Duration(w.BreakEnd.Minutes()-w.BreakStart.Minutes()) * time.Minute
	return work - br
}

// Clamp возвращает зачтённую длительность сессии:
//  1. вход и выход ограничиваются [WorkStart, WorkEnd] календарного дня входа;
//  2. сессия целиком вне окна даёт 0;
//  3. из остатка вычитается пересечение с [BreakStart, BreakEnd];
//  4. результат не бывает отрицательным.
//
// Открытая сессия (без выхода) даёт 0 — она видна в отчёте,
// но в итоги не входит.
func (w Window) Clamp(s Session) time.Duration {
	if s.Out == nil {
		return 0
	}

	workStart := w.WorkStart.On(s.Come, w.Location)
	workEnd := w.WorkEnd.On(s.Come, w.Location)

	come := s.Come
	if come.Before(workStart) {
		come = workStart
	}
	out := *s.Out
	if out.After(workEnd) {
		out = workEnd
	}

	if !come.Before(out) {
		return 0
	}

	d := out.Sub(come)
	d -= w.breakOverlap(come, out)
	if d < 0 {
		d = 0
	}
	return d
}

// breakOverlap — длина пересечения интервала [come, out]
// с обеденным перерывом того же дня.
func (w Window) breakOverlap(come, out time.Time) time.Duration {
	breakStart := w.BreakStart.On(come, w.Location)
	breakEnd := w.BreakEnd.On(come, w.Location)

	if !come.Before(breakEnd) || !out.After(breakStart) {
		return 0
	}

	start := come
	if start.Before(breakStart) {
		start = breakStart
	}
	end := out
	if end.After(breakEnd) {
		end = breakEnd
	}
	return end.Sub(start)
}

// Total суммирует зачтённые длительности сессий за день.
func (w Window) Total(sessions []Session) time.Duration {
	var total time.Duration
	for _, s := range sessions {
		total += w.Clamp(s)
	}
	return total
}
