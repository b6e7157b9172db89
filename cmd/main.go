package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	exportCalendarHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/export_calendar"
	getDayBookingsHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/get_day_bookings"
	getMonthCalendarHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/get_month_calendar"
	getSessionHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/get_session"
	listVenuesHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/list_venues"
	logoutHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/logout"
	setThemeHandler "github.com/m04kA/SMC-VenueCalendar/internal/api/handlers/set_theme"
	"github.com/m04kA/SMC-VenueCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-VenueCalendar/internal/config"
	bookingRepo "github.com/m04kA/SMC-VenueCalendar/internal/infra/storage/booking"
	hallServiceClient "github.com/m04kA/SMC-VenueCalendar/internal/integrations/hallservice"
	bookingsService "github.com/m04kA/SMC-VenueCalendar/internal/service/bookings"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/ingest"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/session"
	exportCalendarUC "github.com/m04kA/SMC-VenueCalendar/internal/usecase/export_calendar"
	getDayBookingsUC "github.com/m04kA/SMC-VenueCalendar/internal/usecase/get_day_bookings"
	getMonthCalendarUC "github.com/m04kA/SMC-VenueCalendar/internal/usecase/get_month_calendar"
	"github.com/m04kA/SMC-VenueCalendar/pkg/logger"
	"github.com/m04kA/SMC-VenueCalendar/pkg/metrics"
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

	log.Info("Starting SMC-VenueCalendar...")
	log.Info("Configuration loaded (source=%s)", cfg.Source.Kind)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Источник бронирований
	var source bookingsService.Source
	switch cfg.Source.Kind {
	case config.SourcePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		source = bookingRepo.NewRepository(db)

	default:
		source = hallServiceClient.NewClient(
			cfg.HallService.URL,
			cfg.HallService.Token,
			time.Duration(cfg.HallService.Timeout)*time.Second,
			log,
		)
		log.Info("HallService client initialized (url=%s, timeout=%ds, auth=%t)",
			cfg.HallService.URL, cfg.HallService.Timeout, cfg.HallService.Token != "")
	}

	// Наблюдатели метрик. Интерфейсы с nil-значением внутри не должны попасть в сервисы.
	var (
		rejectionRecorder ingest.RejectionRecorder
		sourceObserver    bookingsService.Observer
	)
	if metricsCollector != nil {
		rejectionRecorder = metricsCollector
		sourceObserver = metricsCollector
	}

	// Инициализируем сервисы
	adapter := ingest.NewAdapter(log, rejectionRecorder)
	bookingSvc := bookingsService.NewService(source, cfg.Source.Kind, adapter, sourceObserver, log)
	sessionHub := session.NewHub(session.DefaultBufferSize, log)
	defer sessionHub.Close()

	// Инициализируем use cases
	getMonthCalendarUseCase := getMonthCalendarUC.NewUseCase(bookingSvc, calendarMetrics(metricsCollector), log)
	getDayBookingsUseCase := getDayBookingsUC.NewUseCase(bookingSvc, calendarMetrics(metricsCollector), log)
	exportCalendarUseCase := exportCalendarUC.NewUseCase(bookingSvc, cfg.Calendar.ExportPerCell, calendarMetrics(metricsCollector), log)

	// Инициализируем handlers
	listVenues := listVenuesHandler.NewHandler(bookingSvc, log)
	getMonthCalendar := getMonthCalendarHandler.NewHandler(getMonthCalendarUseCase, log)
	getDayBookings := getDayBookingsHandler.NewHandler(getDayBookingsUseCase, log)
	exportCalendar := exportCalendarHandler.NewHandler(exportCalendarUseCase, log)
	getSession := getSessionHandler.NewHandler(sessionHub, log)
	logout := logoutHandler.NewHandler(sessionHub, log)
	setTheme := setThemeHandler.NewHandler(sessionHub, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Календарь ---
	api.HandleFunc("/venues", listVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar", getMonthCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/export", exportCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/days/{date}", getDayBookings.Handle).Methods(http.MethodGet)

	// --- Сессия ---
	api.HandleFunc("/session", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/session/logout", logout.Handle).Methods(http.MethodPost)
	api.HandleFunc("/session/theme", setTheme.Handle).Methods(http.MethodPut)

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
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
		)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Server stopped with error: %v", err)
		return
	}

	log.Info("Server stopped gracefully")
}

type calendarObserver interface {
	ObserveBuild(view string, seconds float64)
}

// calendarMetrics возвращает nil-интерфейс, если метрики выключены
func calendarMetrics(m *metrics.Metrics) calendarObserver {
	if m == nil {
		return nil
	}
	return m
}
