package workday

import (
	"testing"
	"time"
)

// testWindow — окно исходной системы: 08:00–17:30, обед 12:00–13:00.
func testWindow() Window {
	return Window{
		Location:   testLoc,
		WorkStart:  DayTime{Hour: 8},
		WorkEnd:    DayTime{Hour: 17, Minute: 30},
		BreakStart: DayTime{Hour: 12},
		BreakEnd:   DayTime{Hour: 13},
	}
}

// session строит закрытую сессию по времени входа и выхода.
func session(t *testing.T, come, out string) Session {
	t.Helper()
	o := at(t, out)
	return Session{Come: at(t, come), Out: &o}
}

// TestClamp_Scenarios — сценарии ограничения рабочим окном.
func TestClamp_Scenarios(t *testing.T) {
	w := testWindow()

	tests := []struct {
		name string
		come string
		out  string
		want time.Duration
	}{
		// 08:00–12:30: обед пересекает последние 30 минут
		{name: "morning_overlaps_break", come: "08:00", out: "12:30", want: 4 * time.Hour},
		// 13:00–17:00: после обеда, без пересечения
		{name: "afternoon_no_overlap", come: "13:00", out: "17:00", want: 4 * time.Hour},
		// 07:00–19:00: клиппинг до [08:00, 17:30] минус обед
		{name: "clamped_both_sides", come: "07:00", out: "19:00", want: 8*time.Hour + 30*time.Minute},
		// целиком до рабочего окна
		{name: "before_window", come: "05:00", out: "07:30", want: 0},
		// целиком после рабочего окна
		{name: "after_window", come: "18:00", out: "21:00", want: 0},
		// целиком внутри обеда
		{name: "inside_break", come: "12:10", out: "12:50", want: 0},
		// обед внутри сессии целиком
		{name: "break_inside_session", come: "11:00", out: "14:00", want: 2 * time.Hour},
		// вход и выход совпадают
		{name: "zero_length", come: "10:00", out: "10:00", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.Clamp(session(t, tt.come, tt.out))
			if got != tt.want {
				t.Errorf("Clamp(%s-%s) = %v, ожидалось %v", tt.come, tt.out, got, tt.want)
			}
		})
	}
}

// TestClamp_Bounds: результат всегда в [0, MaxDuration].
func TestClamp_Bounds(t *testing.T) {
	w := testWindow()
	maxDur := w.MaxDuration()

	if maxDur != 8*time.Hour+30*time.Minute {
		t.Fatalf("MaxDuration = %v, ожидалось 8h30m", maxDur)
	}

	pairs := [][2]string{
		{"00:00", "23:59"},
		{"08:00", "17:30"},
		{"06:00", "12:00"},
		{"12:30", "23:00"},
		{"17:30", "18:00"},
	}
	for _, p := range pairs {
		got := w.Clamp(session(t, p[0], p[1]))
		if got < 0 || got > maxDur {
			t.Errorf("Clamp(%s-%s) = %v вне [0, %v]", p[0], p[1], got, maxDur)
		}
	}
}

// TestClamp_OpenSession: открытая сессия даёт 0.
func TestClamp_OpenSession(t *testing.T) {
	w := testWindow()
	if got := w.Clamp(Session{Come: at(t, "09:00")}); got != 0 {
		t.Errorf("Clamp открытой сессии = %v, ожидалось 0", got)
	}
}

// TestTotal — сценарий из двух сессий: (08:00–12:30) + (13:00–17:00) = 8h.
func TestTotal(t *testing.T) {
	w := testWindow()
	sessions := []Session{
		session(t, "08:00", "12:30"),
		session(t, "13:00", "17:00"),
	}
	if got := w.Total(sessions); got != 8*time.Hour {
		t.Errorf("Total = %v, ожидалось 8h", got)
	}
}

// TestWindow_Validate — проверка согласованности окна.
func TestWindow_Validate(t *testing.T) {
	w := testWindow()
	if err := w.Validate(); err != nil {
		t.Errorf("Validate() вернул ошибку для корректного окна: %v", err)
	}

	bad := testWindow()
	bad.WorkStart = DayTime{Hour: 18}
	if err := bad.Validate(); err == nil {
		t.Error("Validate() не заметил начало дня позже конца")
	}

	noLoc := testWindow()
	noLoc.Location = nil
	if err := noLoc.Validate(); err == nil {
		t.Error("Validate() не заметил отсутствие бизнес-зоны")
	}
}

// TestParseDayTime — разбор времени суток.
func TestParseDayTime(t *testing.T) {
	tests := []struct {
		in      string
		want    DayTime
		wantErr bool
	}{
		{in: "08:00", want: DayTime{Hour: 8}},
		{in: "17:30", want: DayTime{Hour: 17, Minute: 30}},
		{in: "0:05", want: DayTime{Minute: 5}},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "12", wantErr: true},
		{in: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseDayTime(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDayTime(%q): ожидалась ошибка", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDayTime(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDayTime(%q) = %+v, ожидалось %+v", tt.in, got, tt.want)
		}
	}
}
