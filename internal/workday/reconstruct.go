// Пакет workday — ядро восстановления рабочих сессий.
// Из неупорядоченного потока событий проходной (вход/выход) собираются
// сессии за день, ограничиваются рабочим окном и агрегируются в итоги.
// Пакет чистый: не ходит в БД и не зависит от HTTP-слоя.
package workday

import (
	"time"

	"github.com/bigkaa/tabel/report-module/internal/domain/model"
)

// DuplicateInPolicy — поведение при повторном событии входа
// до закрывающего выхода.
type DuplicateInPolicy int

const (
	// LastInWins — повторный вход перезаписывает ожидающий
	// (поведение исходной системы).
	LastInWins DuplicateInPolicy = iota
	// FirstInWins — повторный вход игнорируется, остаётся первый.
	FirstInWins
)

// Session — восстановленная сессия: пара вход/выход одного сотрудника
// за один день. Сессия без Out — «открытая»: вход без зафиксированного
// выхода. Сессия без Come не существует: выход без входа отбрасывается.
type Session struct {
	// Come — время входа
	Come time.Time
	// Out — время выхода (nil — открытая сессия)
	Out *time.Time
}

// Complete сообщает, закрыта ли сессия.
func (s Session) Complete() bool {
	return s.Out != nil
}

// RawDuration — сырое время между входом и выходом, без ограничения
// рабочим окном. Для открытой сессии — 0.
func (s Session) RawDuration() time.Duration {
	if s.Out == nil {
		return 0
	}
	return s.Out.Sub(s.Come)
}

// Reconstruct восстанавливает сессии из событий одного сотрудника
// за один день. events должны быть упорядочены по времени по возрастанию.
//
// Один проход с состоянием:
//   - вход (device 1): открывает ожидающую сессию; при уже открытой
//     поведение определяет policy;
//   - выход (device 2): при наличии ожидающего входа закрывает сессию,
//     без него — отбрасывается;
//   - прочие коды устройств игнорируются;
//   - оставшийся в конце ожидающий вход даёт открытую сессию (Out == nil).
//
// Ошибок нет: пробелы в данных — не ошибки, а открытые сессии.
func Reconstruct(events []*model.AttendanceEvent, policy DuplicateInPolicy) []Session {
	var sessions []Session
	var pending *time.Time

	for _, e := range events {
		switch e.DeviceID {
		case model.DeviceIn:
			if pending != nil && policy == FirstInWins {
				continue
			}
			t := e.EventTime
			pending = &t
		case model.DeviceOut:
			if pending == nil {
				continue
			}
			out := e.EventTime
			sessions = append(sessions, Session{Come: *pending, Out: &out})
			pending = nil
		}
	}

	if pending != nil {
		sessions = append(sessions, Session{Come: *pending})
	}

	return sessions
}
