package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/aidar/localtime-bot/internal/bot"
	"github.com/aidar/localtime-bot/internal/config"
	"github.com/aidar/localtime-bot/internal/handler"
	"github.com/aidar/localtime-bot/internal/middleware"
	"github.com/aidar/localtime-bot/internal/repository/jsonfile"
	"github.com/aidar/localtime-bot/internal/service"
)

const (
	svcName         = "localtime_bot"
	shutdownTimeout = 30 * time.Second
)

// App представляет приложение со всеми зависимостями
type App struct {
	config     *config.Config
	logger     *slog.Logger
	localTimes *service.LocalTimeService
	telegram   *bot.Telegram
	handler    bot.Handler
	server     *http.Server
}

// NewLogger создает структурированный логгер (JSON формат)
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// New создает новый экземпляр приложения
func New(cfg *config.Config) (*App, error) {
	app := &App{
		config: cfg,
		logger: NewLogger(os.Stdout, cfg.SlogLevel()),
	}

	return app, nil
}

// Logger возвращает логгер приложения
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Initialize инициализирует все компоненты приложения
func (a *App) Initialize(ctx context.Context) error {
	// Состав команды читается один раз при старте
	rosterStore := jsonfile.NewRosterStore(a.config.Roster.File, a.logger)
	resolver := service.NewTimeZoneResolver(a.logger, nil)
	a.localTimes = service.NewLocalTimeService(rosterStore, resolver)

	if err := a.connectBot(ctx); err != nil {
		return fmt.Errorf("failed to connect to telegram: %w", err)
	}

	a.setupServer()

	a.logger.Info("Application initialized successfully")
	return nil
}

// connectBot авторизует бота и собирает цепочку обработки команд
func (a *App) connectBot(_ context.Context) error {
	telegram, err := bot.NewTelegram(bot.TelegramConfig{
		Token:       a.config.Bot.Token,
		PollTimeout: a.config.Bot.PollTimeout,
		SkipPending: a.config.Bot.SkipPending,
		Debug:       a.config.Bot.Debug,
	}, a.logger)
	if err != nil {
		return err
	}

	counter, latency, failures := bot.MakeMetrics(svcName, "bot")
	sender := bot.SendMetricsMiddleware(telegram, failures)
	dispatcher := bot.NewDispatcher(a.localTimes, sender, a.logger)

	a.telegram = telegram
	a.handler = bot.MetricsMiddleware(dispatcher, counter, latency)
	return nil
}

// setupServer инициализирует HTTP роутер и обработчики.
// Пустой SERVER_PORT отключает HTTP сервер.
func (a *App) setupServer() {
	if !a.config.Server.Enabled() {
		a.logger.Info("SERVER_PORT is empty, HTTP server is disabled")
		return
	}

	var authService *service.AuthService
	if a.config.JWT.Enabled() {
		authService = service.NewAuthService(a.config.JWT.Secret)
	} else {
		a.logger.Info("JWT_SECRET is not set, /api endpoints are disabled")
	}

	addr := a.config.Server.Addr()
	a.server = &http.Server{
		Addr:         addr,
		Handler:      NewRouter(a.localTimes, authService),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("HTTP server configured", "addr", addr)
}

// NewRouter настраивает роутер. При nil authService группа /api не регистрируется.
func NewRouter(localTimes handler.LocalTimeReader, authService *service.AuthService) http.Handler {
	r := chi.NewRouter()

	// Глобальные middleware (применяются ко всем запросам)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check и метрики для мониторинга
	r.Get("/health", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	if authService == nil {
		return r
	}

	localTimeHandler := handler.NewLocalTimeHandler(localTimes)

	// Защищенные эндпоинты (требуют JWT токен в заголовке Authorization)
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(authService))

		r.Get("/roster", localTimeHandler.GetRoster)
		r.Get("/localtime", localTimeHandler.GetLocalTimes)
	})

	return r
}

// Run запускает опрос Telegram и HTTP сервер до отмены ctx
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.telegram.Run(ctx, a.handler)
	})

	if a.server != nil {
		g.Go(a.serveHTTP)
	}

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// serveHTTP не возвращает ошибку запуска: бот продолжает работать без HTTP сервера
func (a *App) serveHTTP() error {
	a.logger.Info("Starting HTTP server", "addr", a.server.Addr)
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.logger.Error("HTTP server failed, continuing without it", "addr", a.server.Addr, "error", err)
	}
	return nil
}

// Shutdown корректно останавливает приложение
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	// Останавливаем HTTP сервер (ждем завершения текущих запросов)
	if a.server == nil {
		a.logger.Info("Application stopped gracefully")
		return nil
	}
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}
