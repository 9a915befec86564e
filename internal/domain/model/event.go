// Пакет model — доменные модели Report Module.
// AttendanceEvent — маппинг таблицы attendance_events (сырые события проходной).
package model

import "time"

// Коды устройств проходной. Другие коды в потоке событий игнорируются.
const (
	// DeviceIn — турникет на вход.
	DeviceIn = 1
	// DeviceOut — турникет на выход.
	DeviceOut = 2
)

// AttendanceEvent — одно событие прохода (скан бейджа).
// Запись неизменяемая: после создания не редактируется, удаление — soft delete.
type AttendanceEvent struct {
	// EventID — UUID события
	EventID string
	// UserID — идентификатор сотрудника
	UserID int64
	// DeviceID — код устройства: 1 = вход, 2 = выход
	DeviceID int
	// EventTime — время прохода (timestamptz)
	EventTime time.Time
	// ServerReceivedAt — время получения события сервером
	ServerReceivedAt time.Time
	// CreatedAt — время создания записи
	CreatedAt time.Time
	// DeletedAt — время soft delete (nil — запись активна)
	DeletedAt *time.Time
}

// User — сотрудник. Report Module читает только id и username
// для подстановки имени в отчёты.
type User struct {
	// ID — идентификатор сотрудника
	ID int64
	// Username — имя для отчётов
	Username string
	// DeletedAt — время soft delete (nil — запись активна)
	DeletedAt *time.Time
}
