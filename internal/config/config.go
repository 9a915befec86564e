// Пакет config — загрузка и валидация конфигурации Report Module
// из переменных окружения.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bigkaa/tabel/report-module/internal/workday"
)

// Версия приложения, задаётся при сборке через -ldflags.
var Version = "dev"

// Config содержит все параметры конфигурации Report Module.
type Config struct {
	// --- Сервер ---

	// Порт HTTP-сервера (диапазон 8040-8049)
	Port int
	// Уровень логирования (debug, info, warn, error)
	LogLevel slog.Level
	// Формат логов (json, text)
	LogFormat string

	// --- HTTP Server Timeouts ---

	// Таймаут чтения HTTP-сервера (по умолчанию 30s)
	HTTPReadTimeout time.Duration
	// Таймаут записи HTTP-сервера (по умолчанию 60s)
	HTTPWriteTimeout time.Duration
	// Таймаут простоя HTTP-сервера (по умолчанию 120s)
	HTTPIdleTimeout time.Duration

	// --- Graceful shutdown ---

	// Таймаут graceful shutdown (по умолчанию 5s)
	ShutdownTimeout time.Duration

	// --- PostgreSQL ---

	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	// --- Бизнес-окно ---

	// Window — рабочее окно, обед и бизнес-зона.
	// Граница дня всегда локальная для этой зоны, не UTC
	// и не зона процесса.
	Window workday.Window
	// TimezoneName — имя бизнес-зоны (для SQL AT TIME ZONE)
	TimezoneName string
	// DuplicateInPolicy — поведение при повторном входе до выхода
	DuplicateInPolicy workday.DuplicateInPolicy
	// SuspectThreshold — порог аномалии дневного итога (строго больше)
	SuspectThreshold time.Duration

	// --- Кэш страниц отчётов ---

	// CacheSize — максимальное количество страниц в LRU-кэше
	CacheSize int
	// CacheTTL — время жизни страницы (по умолчанию 60s)
	CacheTTL time.Duration

	// --- topologymetrics ---

	// DephealthGroup — имя группы в метриках зависимостей
	DephealthGroup string
	// DephealthCheckInterval — интервал проверки зависимостей
	DephealthCheckInterval time.Duration
	// DephealthIsEntry — лейбл isentry=yes для входной точки графа
	DephealthIsEntry bool
}

// Load загружает конфигурацию из переменных окружения.
// Возвращает ошибку, если обязательные переменные не заданы
// или значения некорректны.
func Load() (*Config, error) {
	cfg := &Config{}
	var err error

	// --- Сервер ---

	// RM_PORT — порт HTTP-сервера (по умолчанию 8040)
	cfg.Port, err = getEnvInt("RM_PORT", 8040)
	if err != nil {
		return nil, fmt.Errorf("RM_PORT: %w", err)
	}

	// RM_LOG_LEVEL — уровень логирования (по умолчанию info)
	logLevel := getEnvDefault("RM_LOG_LEVEL", "info")
	cfg.LogLevel, err = parseLogLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("RM_LOG_LEVEL: %w", err)
	}

	// RM_LOG_FORMAT — формат логов (по умолчанию json)
	cfg.LogFormat = getEnvDefault("RM_LOG_FORMAT", "json")
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("RM_LOG_FORMAT: недопустимый формат %q, допустимые: json, text", cfg.LogFormat)
	}

	// --- HTTP Server Timeouts ---

	cfg.HTTPReadTimeout, err = getEnvDuration("RM_HTTP_READ_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("RM_HTTP_READ_TIMEOUT: %w", err)
	}
	cfg.HTTPWriteTimeout, err = getEnvDuration("RM_HTTP_WRITE_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, fmt.Errorf("RM_HTTP_WRITE_TIMEOUT: %w", err)
	}
	cfg.HTTPIdleTimeout, err = getEnvDuration("RM_HTTP_IDLE_TIMEOUT", 120*time.Second)
	if err != nil {
		return nil, fmt.Errorf("RM_HTTP_IDLE_TIMEOUT: %w", err)
	}

	// RM_SHUTDOWN_TIMEOUT — таймаут graceful shutdown (по умолчанию 5s)
	cfg.ShutdownTimeout, err = getEnvDuration("RM_SHUTDOWN_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("RM_SHUTDOWN_TIMEOUT: %w", err)
	}

	// --- PostgreSQL ---

	// RM_DB_HOST — обязательный
	cfg.DBHost, err = getEnvRequired("RM_DB_HOST")
	if err != nil {
		return nil, err
	}

	// RM_DB_PORT — порт PostgreSQL (по умолчанию 5432)
	cfg.DBPort, err = getEnvInt("RM_DB_PORT", 5432)
	if err != nil {
		return nil, fmt.Errorf("RM_DB_PORT: %w", err)
	}

	// RM_DB_NAME — обязательный
	cfg.DBName, err = getEnvRequired("RM_DB_NAME")
	if err != nil {
		return nil, err
	}

	// RM_DB_USER — обязательный
	cfg.DBUser, err = getEnvRequired("RM_DB_USER")
	if err != nil {
		return nil, err
	}

	// RM_DB_PASSWORD — обязательный
	cfg.DBPassword, err = getEnvRequired("RM_DB_PASSWORD")
	if err != nil {
		return nil, err
	}

	// RM_DB_SSL_MODE — режим SSL (по умолчанию disable)
	cfg.DBSSLMode = getEnvDefault("RM_DB_SSL_MODE", "disable")
	switch cfg.DBSSLMode {
	case "disable", "require", "verify-ca", "verify-full":
	default:
		return nil, fmt.Errorf("RM_DB_SSL_MODE: недопустимое значение %q, допустимые: disable, require, verify-ca, verify-full", cfg.DBSSLMode)
	}

	// --- Бизнес-окно ---

	// RM_WORK_TIMEZONE — бизнес-зона (по умолчанию Asia/Tashkent)
	cfg.TimezoneName = getEnvDefault("RM_WORK_TIMEZONE", "Asia/Tashkent")
	loc, err := time.LoadLocation(cfg.TimezoneName)
	if err != nil {
		return nil, fmt.Errorf("RM_WORK_TIMEZONE: неизвестная зона %q: %w", cfg.TimezoneName, err)
	}
	cfg.Window.Location = loc

	// RM_WORK_START / RM_WORK_END — рабочее окно (по умолчанию 08:00–17:30)
	cfg.Window.WorkStart, err = getEnvDayTime("RM_WORK_START", "08:00")
	if err != nil {
		return nil, err
	}
	cfg.Window.WorkEnd, err = getEnvDayTime("RM_WORK_END", "17:30")
	if err != nil {
		return nil, err
	}

	// RM_BREAK_START / RM_BREAK_END — обед (по умолчанию 12:00–13:00)
	cfg.Window.BreakStart, err = getEnvDayTime("RM_BREAK_START", "12:00")
	if err != nil {
		return nil, err
	}
	cfg.Window.BreakEnd, err = getEnvDayTime("RM_BREAK_END", "13:00")
	if err != nil {
		return nil, err
	}

	if err := cfg.Window.Validate(); err != nil {
		return nil, fmt.Errorf("некорректное рабочее окно: %w", err)
	}

	// RM_DUPLICATE_IN_POLICY — поведение при повторном входе (last | first).
	// last — повторный вход перезаписывает ожидающий (поведение исходной системы).
	switch policy := getEnvDefault("RM_DUPLICATE_IN_POLICY", "last"); policy {
	case "last":
		cfg.DuplicateInPolicy = workday.LastInWins
	case "first":
		cfg.DuplicateInPolicy = workday.FirstInWins
	default:
		return nil, fmt.Errorf("RM_DUPLICATE_IN_POLICY: недопустимое значение %q, допустимые: last, first", policy)
	}

	// RM_SUSPECT_THRESHOLD — порог аномалии дневного итога (по умолчанию 12h)
	cfg.SuspectThreshold, err = getEnvDuration("RM_SUSPECT_THRESHOLD", 12*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("RM_SUSPECT_THRESHOLD: %w", err)
	}

	// --- Кэш страниц отчётов ---

	// RM_CACHE_SIZE — максимум страниц в кэше (по умолчанию 1024)
	cfg.CacheSize, err = getEnvInt("RM_CACHE_SIZE", 1024)
	if err != nil {
		return nil, fmt.Errorf("RM_CACHE_SIZE: %w", err)
	}
	if cfg.CacheSize < 1 {
		return nil, fmt.Errorf("RM_CACHE_SIZE: значение должно быть > 0")
	}

	// RM_CACHE_TTL — время жизни страницы (по умолчанию 60s)
	cfg.CacheTTL, err = getEnvDuration("RM_CACHE_TTL", 60*time.Second)
	if err != nil {
		return nil, fmt.Errorf("RM_CACHE_TTL: %w", err)
	}

	// --- topologymetrics ---

	cfg.DephealthGroup = getEnvDefault("RM_DEPHEALTH_GROUP", "tabel")
	cfg.DephealthCheckInterval, err = getEnvDuration("RM_DEPHEALTH_CHECK_INTERVAL", 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("RM_DEPHEALTH_CHECK_INTERVAL: %w", err)
	}
	cfg.DephealthIsEntry, err = getEnvBool("DEPHEALTH_ISENTRY", false)
	if err != nil {
		return nil, fmt.Errorf("DEPHEALTH_ISENTRY: %w", err)
	}

	return cfg, nil
}

// SetupLogger настраивает глобальный slog-логгер на основе конфигурации.
func SetupLogger(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// DatabaseDSN возвращает строку подключения к PostgreSQL в формате key=value.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBName, c.DBUser, c.DBPassword, c.DBSSLMode,
	)
}

// DatabaseURL возвращает URL подключения к PostgreSQL
// (для golang-migrate и topologymetrics).
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

// --- Вспомогательные функции ---

// getEnvRequired возвращает значение переменной окружения или ошибку, если она не задана.
func getEnvRequired(key string) (string, error) {
	val := os.Getenv(key)
	if val == "" {
		return "", fmt.Errorf("%s: обязательная переменная окружения не задана", key)
	}
	return val, nil
}

// getEnvDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getEnvInt возвращает целочисленное значение переменной окружения или значение по умолчанию.
func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("некорректное целое число: %q", val)
	}
	return n, nil
}

// getEnvDuration возвращает time.Duration из переменной окружения или значение по умолчанию.
func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("некорректная длительность: %q (используйте формат Go: 30s, 1h, 15m)", val)
	}
	return d, nil
}

// getEnvBool возвращает булево значение переменной окружения или значение по умолчанию.
func getEnvBool(key string, defaultVal bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("некорректное булево значение: %q (допустимые: true, false, 1, 0)", val)
	}
	return b, nil
}

// getEnvDayTime возвращает время суток HH:MM из переменной окружения
// или значение по умолчанию.
func getEnvDayTime(key, defaultVal string) (workday.DayTime, error) {
	val := os.Getenv(key)
	if val == "" {
		val = defaultVal
	}
	dt, err := workday.ParseDayTime(val)
	if err != nil {
		return workday.DayTime{}, fmt.Errorf("%s: %w", key, err)
	}
	return dt, nil
}

// parseLogLevel преобразует строку уровня логирования в slog.Level.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("недопустимый уровень %q, допустимые: debug, info, warn, error", level)
	}
}
