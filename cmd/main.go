package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	calculatePriceHandler "github.com/m04kA/SMC-MatchingService/internal/api/handlers/calculate_price"
	findProvidersHandler "github.com/m04kA/SMC-MatchingService/internal/api/handlers/find_providers"
	getProviderHandler "github.com/m04kA/SMC-MatchingService/internal/api/handlers/get_provider"
	upsertProviderHandler "github.com/m04kA/SMC-MatchingService/internal/api/handlers/upsert_provider"
	"github.com/m04kA/SMC-MatchingService/internal/api/middleware"
	"github.com/m04kA/SMC-MatchingService/internal/config"
	providerRepo "github.com/m04kA/SMC-MatchingService/internal/infra/storage/providers"
	geosearchClient "github.com/m04kA/SMC-MatchingService/internal/integrations/geosearch"
	matchingService "github.com/m04kA/SMC-MatchingService/internal/service/matching"
	pricingService "github.com/m04kA/SMC-MatchingService/internal/service/pricing"
	providersService "github.com/m04kA/SMC-MatchingService/internal/service/providers"
	calculatePriceUC "github.com/m04kA/SMC-MatchingService/internal/usecase/calculate_price"
	findProvidersUC "github.com/m04kA/SMC-MatchingService/internal/usecase/find_providers"
	"github.com/m04kA/SMC-MatchingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MatchingService/pkg/logger"
	"github.com/m04kA/SMC-MatchingService/pkg/metrics"
	"github.com/m04kA/SMC-MatchingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-MatchingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-MatchingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		providerRepository *providerRepo.Repository
		txMgr              TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		providerRepository = providerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		providerRepository = providerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	matchingSvc := matchingService.NewService(log)
	pricingSvc := pricingService.NewService(log)
	providersSvc := providersService.NewService(providerRepository, txMgr, log)

	// Выбираем источник радиусного поиска кандидатов
	var searcher findProvidersUC.ProviderSearcher
	switch cfg.GeoSearch.Mode {
	case "remote":
		searcher = geosearchClient.NewClient(
			cfg.GeoSearch.URL,
			time.Duration(cfg.GeoSearch.Timeout)*time.Second,
			log,
		)
		log.Info("Geosearch source: remote RPC at %s (timeout=%ds)", cfg.GeoSearch.URL, cfg.GeoSearch.Timeout)
	default:
		searcher = providerRepository
		log.Info("Geosearch source: database radius search")
	}

	// Инициализируем use cases
	findProvidersUseCase := findProvidersUC.NewUseCase(searcher, matchingSvc, log)
	calculatePriceUseCase := calculatePriceUC.NewUseCase(pricingSvc, log)

	// Инициализируем handlers
	findProviders := findProvidersHandler.NewHandler(findProvidersUseCase, metricsCollector, log)
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, log)
	getProvider := getProviderHandler.NewHandler(providersSvc, log)
	upsertProvider := upsertProviderHandler.NewHandler(providersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расчет стоимости уборки
	api.HandleFunc("/pricing/quote", calculatePrice.Handle).Methods(http.MethodPost)

	// Карточка исполнителя
	api.HandleFunc("/providers/{providerId}", getProvider.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Подбор и ранжирование исполнителей
	protected.HandleFunc("/providers/search", findProviders.Handle).Methods(http.MethodPost)

	// Создание или обновление исполнителя
	protected.HandleFunc("/providers/{providerId}", upsertProvider.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
