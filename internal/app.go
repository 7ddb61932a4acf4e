package internal

import (
	"catalog-frontend-service/internal/adapters/backendapi"
	logger_adapter "catalog-frontend-service/internal/adapters/logger"
	"catalog-frontend-service/internal/adapters/rest"
	"catalog-frontend-service/internal/configs"
	"catalog-frontend-service/internal/contextkeys"
	"catalog-frontend-service/internal/core/port"
	"catalog-frontend-service/internal/core/usecase"
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"
)

type App struct {
	config    *configs.AppConfig
	apiServer *rest.Server

	prefetchUC *usecase.PrefetchCatalogUseCase

	logger       port.LoggerPort
	baseLogger   port.LoggerPort
	fluentClient *fluent.Fluent // держим ссылку для корректного закрытия
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluent.New(fluent.Config{
			FluentHost: appConfig.FluentBit.Host,
			FluentPort: appConfig.FluentBit.Port,
			TagPrefix:  appConfig.AppName,
			Async:      true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	// Композитный логгер: каждая запись уходит во все активные логгеры
	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. АДАПТЕРЫ И USE CASES ---
	backendClient := backendapi.NewClient(appConfig.ApiClient.BACKEND_API_URL)

	feedUseCase := usecase.NewCatalogFeedUseCase(backendClient)
	detailsUseCase := usecase.NewGetProjectDetailsUseCase(backendClient)
	callbackUseCase := usecase.NewSubmitCallbackUseCase(backendClient)
	mortgageUseCase := usecase.NewCalculateMortgageUseCase()
	mortgageLeadUseCase := usecase.NewRequestMortgageLeadUseCase(mortgageUseCase, callbackUseCase)
	prefetchUseCase := usecase.NewPrefetchCatalogUseCase(backendClient, baseLogger)

	appLogger.Info("All use cases initialized", nil)

	apiHandlers := rest.NewCatalogHandlers(feedUseCase, detailsUseCase, callbackUseCase, mortgageUseCase, mortgageLeadUseCase)
	apiServer := rest.NewServer(appConfig.Rest.PORT, appConfig.Rest.AllowedOrigin, apiHandlers, baseLogger)

	return &App{
		config:       appConfig,
		apiServer:    apiServer,
		prefetchUC:   prefetchUseCase,
		logger:       appLogger,
		baseLogger:   baseLogger,
		fluentClient: fluentClient,
	}, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	// Единый контекст приложения: его отмена останавливает прогрев
	// каталога и запускает graceful shutdown
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Пишем в stdout, fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	// Прогрев каталога: best-effort, отменяется вместе с приложением
	go a.prefetchUC.Execute(contextkeys.ContextWithLogger(appCtx, a.baseLogger))

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("HTTP server failed to start, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
