// Точка входа Report Module — модуль отчётов рабочего времени системы Tabel.
// Загружает конфигурацию, подключается к PostgreSQL, применяет миграции,
// создаёт сервисный слой и API handlers, запускает topologymetrics,
// HTTP-сервер с middleware и graceful shutdown.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/bigkaa/tabel/report-module/internal/api/handlers"
	"github.com/bigkaa/tabel/report-module/internal/api/middleware"
	"github.com/bigkaa/tabel/report-module/internal/config"
	"github.com/bigkaa/tabel/report-module/internal/database"
	"github.com/bigkaa/tabel/report-module/internal/repository"
	"github.com/bigkaa/tabel/report-module/internal/server"
	"github.com/bigkaa/tabel/report-module/internal/service"
)

func main() {
	// 1. Загрузка конфигурации из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Ошибка загрузки конфигурации", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 2. Настройка логирования
	logger := config.SetupLogger(cfg)
	logger.Info("Report Module запускается",
		slog.String("version", config.Version),
		slog.Int("port", cfg.Port),
		slog.String("timezone", cfg.TimezoneName),
	)

	// Предупреждения о дефолтных значениях topologymetrics
	if os.Getenv("RM_DEPHEALTH_GROUP") == "" {
		logger.Warn("RM_DEPHEALTH_GROUP не задана, используется значение по умолчанию",
			slog.String("default", cfg.DephealthGroup),
		)
	}

	// 3. Применение миграций БД
	logger.Info("Применение миграций БД...")
	if err := database.Migrate(cfg, logger); err != nil {
		logger.Error("Ошибка миграций БД", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 4. Подключение к PostgreSQL (pgxpool)
	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Error("Ошибка подключения к PostgreSQL", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	// 4.1 Адаптер pgxpool → *sql.DB для topologymetrics (connection pool mode).
	// Проверка здоровья PostgreSQL будет идти через существующий пул соединений,
	// что позволяет обнаружить его исчерпание.
	pgDB := stdlib.OpenDBFromPool(pool)
	defer pgDB.Close()

	// 5. Repositories
	eventRepo := repository.NewEventRepository(pool, cfg.TimezoneName)
	userRepo := repository.NewUserRepository(pool)

	// 6. LRU-кэш страниц отчётов
	reportCache := service.NewReportCache(cfg.CacheSize, cfg.CacheTTL)
	logger.Info("Кэш отчётов инициализирован",
		slog.Int("size", cfg.CacheSize),
		slog.String("ttl", cfg.CacheTTL.String()),
	)

	// 7. Services
	reportSvc := service.NewReportService(
		eventRepo, userRepo, reportCache,
		cfg.Window, cfg.DuplicateInPolicy, cfg.SuspectThreshold,
		logger,
	)
	eventSvc := service.NewEventService(eventRepo, reportCache, logger)

	// 8. Readiness checker (PostgreSQL)
	pgChecker := database.NewReadinessChecker(pool)
	healthHandler := handlers.NewHealthHandler(pgChecker)

	// 9. API handler (реализует generated.ServerInterface)
	apiHandler := handlers.NewAPIHandler(
		healthHandler,
		reportSvc,
		eventSvc,
		cfg.Window,
		logger,
	)

	// 10. topologymetrics — мониторинг зависимостей (PostgreSQL)
	var dephealthSvc *service.DephealthService
	dephealthSvc, dephealthErr := service.NewDephealthService(
		"report-module",
		cfg.DephealthGroup,
		pgDB,
		cfg.DatabaseURL(),
		cfg.DephealthCheckInterval,
		logger,
	)
	if dephealthErr != nil {
		logger.Warn("topologymetrics недоступен, запуск без мониторинга зависимостей",
			slog.String("error", dephealthErr.Error()),
		)
	} else {
		if startErr := dephealthSvc.Start(ctx); startErr != nil {
			logger.Warn("Ошибка запуска topologymetrics",
				slog.String("error", startErr.Error()),
			)
		} else {
			logger.Info("topologymetrics запущен",
				slog.String("group", cfg.DephealthGroup),
				slog.String("check_interval", cfg.DephealthCheckInterval.String()),
			)
		}
	}

	// 11. Создание и запуск HTTP-сервера
	srv := server.New(cfg, logger, apiHandler,
		middleware.MetricsMiddleware(),
		middleware.RequestLogger(logger),
	)
	if err := srv.Run(); err != nil {
		logger.Error("Ошибка сервера", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 12. Graceful shutdown фоновых задач
	if dephealthSvc != nil {
		dephealthSvc.Stop()
	}

	logger.Info("Report Module остановлен")
}
