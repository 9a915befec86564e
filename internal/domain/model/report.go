// report.go — производные модели отчётов.
// Все структуры живут в рамках одного запроса отчёта и нигде не персистятся;
// между запросами их разделяет только кэш страниц (сериализованные копии).
package model

import "time"

// WorkInterval — один интервал работы в отчёте (пара вход/выход).
// В summary-отчёте Duration — сырое время между входом и выходом,
// в detail-отчёте — время, ограниченное рабочим окном за вычетом обеда.
type WorkInterval struct {
	// Come — время входа (nil — вход не зафиксирован)
	Come *time.Time
	// Out — время выхода (nil — незакрытая сессия)
	Out *time.Time
	// Duration — зачтённая длительность интервала
	Duration time.Duration
}

// DailyWorkRecord — работа одного сотрудника за один календарный день.
type DailyWorkRecord struct {
	// UserID — идентификатор сотрудника
	UserID int64
	// Username — имя сотрудника (nil — пользователь не найден или удалён)
	Username *string
	// Date — календарный день в бизнес-зоне
	Date time.Time
	// Work — интервалы работы в хронологическом порядке
	Work []WorkInterval
	// TotalDuration — суммарная зачтённая длительность (только detail)
	TotalDuration time.Duration
	// Suspected — итог за день подозрительно велик (только detail)
	Suspected bool
}

// WorkReportPage — страница отчёта summary или detail.
type WorkReportPage struct {
	// Records — записи страницы, дни по убыванию
	Records []*DailyWorkRecord
	// Page — номер страницы (с 1)
	Page int
	// PerPage — размер страницы
	PerPage int
	// Total — общее количество групп (сотрудник, день)
	Total int
	// TotalPages — количество страниц
	TotalPages int
}

// MatrixDay — ячейка матричного отчёта: один день одного сотрудника.
type MatrixDay struct {
	// Come — первый вход за день (nil — входа не было)
	Come *time.Time
	// Out — последний выход за день (nil — незакрытый день)
	Out *time.Time
	// DurationHours — зачтённые часы, округлённые до одного знака
	DurationHours float64
}

// UserMatrixRow — строка матричного отчёта: один сотрудник.
// Days — разреженное отображение: присутствуют только дни,
// в которые у сотрудника было хотя бы одно событие.
type UserMatrixRow struct {
	// UserID — идентификатор сотрудника
	UserID int64
	// Username — имя сотрудника (nil — пользователь не найден или удалён)
	Username *string
	// Days — дата (YYYY-MM-DD) → ячейка дня
	Days map[string]MatrixDay
	// TotalHours — сумма часов за диапазон, один знак после запятой
	TotalHours float64
	// TotalDays — количество дней с ненулевой длительностью
	TotalDays int
}

// MatrixReport — матричный отчёт дата × сотрудник за диапазон дат.
type MatrixReport struct {
	// Headers — отсортированное объединение дат, встречающихся в строках.
	// Дни без событий не включаются даже внутри запрошенного диапазона.
	Headers []string
	// Records — строки по сотрудникам
	Records []*UserMatrixRow
}
