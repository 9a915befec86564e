// daytime.go — время суток без даты (границы рабочего дня и обеда).
package workday

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DayTime — время суток в формате HH:MM, без привязки к дате и зоне.
// Используется для границ рабочего окна и обеденного перерыва.
type DayTime struct {
	Hour   int
	Minute int
}

// ParseDayTime разбирает строку вида "08:00" или "17:30".
func ParseDayTime(s string) (DayTime, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return DayTime{}, fmt.Errorf("некорректное время суток: %q (ожидается HH:MM)", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return DayTime{}, fmt.Errorf("некорректный час в %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return DayTime{}, fmt.Errorf("некорректная минута в %q", s)
	}

	return DayTime{Hour: hour, Minute: minute}, nil
}

// On возвращает момент времени: данное время суток в календарный день t
// в зоне loc. Дата берётся из t, пересчитанного в loc.
func (d DayTime) On(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), d.Hour, d.Minute, 0, 0, loc)
}

// Minutes возвращает время суток в минутах от полуночи.
func (d DayTime) Minutes() int {
	return d.Hour*60 + d.Minute
}

// String возвращает каноническую форму HH:MM.
func (d DayTime) String() string {
	return fmt.Sprintf("%02d:%02d", d.Hour, d.Minute)
}
