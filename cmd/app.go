package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	authLoginHandler "github.com/m04kA/SMC-SpaBoard/internal/api/handlers/auth_login"
	authLogoutHandler "github.com/m04kA/SMC-SpaBoard/internal/api/handlers/auth_logout"
	authSessionHandler "github.com/m04kA/SMC-SpaBoard/internal/api/handlers/auth_session"
	bookingFormSelectHandler "github.com/m04kA/SMC-SpaBoard/internal/api/handlers/booking_form_select"
	cancelAssignmentHandler "github.com/m04kA/SMC-SpaBoard/internal/api/handlers/cancel_assignment"
	clickSlotHandler "github.com/m04kA/SMC-SpaBoard/internal/api/handlers/click_slot"
	completeServiceHandler "github.com/m04kA/SMC-SpaBoard/internal/api/handlers/complete_service"
	createBedHandler "github.com/m04kA/SMC-SpaBoard/internal/api/handlers/create_bed"
	deleteBedHandler "github.com/m04kA/SMC-SpaBoard/internal/api/handlers/delete_bed"
	exportBoardHandler "github.com/m04kA/SMC-SpaBoard/internal/api/handlers/export_board"
	getBedHandler "github.com/m04kA/SMC-SpaBoard/internal/api/handlers/get_bed"
	getBedStatsHandler "github.com/m04kA/SMC-SpaBoard/internal/api/handlers/get_bed_stats"
	getBedTimelineHandler "github.com/m04kA/SMC-SpaBoard/internal/api/handlers/get_bed_timeline"
	getBookingFormHandler "github.com/m04kA/SMC-SpaBoard/internal/api/handlers/get_booking_form"
	getCatalogHandler "github.com/m04kA/SMC-SpaBoard/internal/api/handlers/get_catalog"
	listAppointmentsHandler "github.com/m04kA/SMC-SpaBoard/internal/api/handlers/list_appointments"
	listBedsHandler "github.com/m04kA/SMC-SpaBoard/internal/api/handlers/list_beds"
	saveAssignmentHandler "github.com/m04kA/SMC-SpaBoard/internal/api/handlers/save_assignment"
	setBedStatusHandler "github.com/m04kA/SMC-SpaBoard/internal/api/handlers/set_bed_status"
	updateBedHandler "github.com/m04kA/SMC-SpaBoard/internal/api/handlers/update_bed"
	"github.com/m04kA/SMC-SpaBoard/internal/api/router"
	"github.com/m04kA/SMC-SpaBoard/internal/config"
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/appointment"
	bedRepo "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/bed"
	catalogRepo "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/catalog"
	sessionStore "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/session"
	userRepo "github.com/m04kA/SMC-SpaBoard/internal/infra/storage/user"
	bedsService "github.com/m04kA/SMC-SpaBoard/internal/service/beds"
	catalogService "github.com/m04kA/SMC-SpaBoard/internal/service/catalog"
	identityService "github.com/m04kA/SMC-SpaBoard/internal/service/identity"
	bookingFormUC "github.com/m04kA/SMC-SpaBoard/internal/usecase/booking_form"
	cancelAssignmentUC "github.com/m04kA/SMC-SpaBoard/internal/usecase/cancel_assignment"
	clickSlotUC "github.com/m04kA/SMC-SpaBoard/internal/usecase/click_slot"
	completeServiceUC "github.com/m04kA/SMC-SpaBoard/internal/usecase/complete_service"
	exportBoardUC "github.com/m04kA/SMC-SpaBoard/internal/usecase/export_board"
	getBedTimelineUC "github.com/m04kA/SMC-SpaBoard/internal/usecase/get_bed_timeline"
	listAppointmentsUC "github.com/m04kA/SMC-SpaBoard/internal/usecase/list_appointments"
	saveAssignmentUC "github.com/m04kA/SMC-SpaBoard/internal/usecase/save_assignment"
	"github.com/m04kA/SMC-SpaBoard/pkg/idgen"
	"github.com/m04kA/SMC-SpaBoard/pkg/logger"
	"github.com/m04kA/SMC-SpaBoard/pkg/metrics"
	"github.com/m04kA/SMC-SpaBoard/pkg/token"
)

// application собранные зависимости сервиса
type application struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics

	bedRepository         *bedRepo.Repository
	appointmentRepository *appointmentRepo.Repository

	catalogSvc  *catalogService.Service
	bedsSvc     *bedsService.Service
	identitySvc *identityService.Service

	timeline         *getBedTimelineUC.UseCase
	clickSlot        *clickSlotUC.UseCase
	saveAssignment   *saveAssignmentUC.UseCase
	bookingForm      *bookingFormUC.UseCase
	completeService  *completeServiceUC.UseCase
	cancelAssignment *cancelAssignmentUC.UseCase
	listAppointments *listAppointmentsUC.UseCase
	exportBoard      *exportBoardUC.UseCase

	closers []func()
}

// buildApp собирает репозитории, сервисы и use cases по конфигурации
func buildApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*application, error) {
	app := &application{cfg: cfg, log: log}
	grid := cfg.Schedule.Grid()

	// Метрики (если включены)
	if cfg.Metrics.Enabled {
		app.metrics = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Реестр кроватей и журнал записей (в памяти, заполняются начальными данными)
	seed := bedRepo.DefaultSeed()
	app.bedRepository = bedRepo.NewRepository(seed)
	app.appointmentRepository = appointmentRepo.NewRepository()
	if err := app.appointmentRepository.ImportAssignments(ctx, seed); err != nil {
		return nil, fmt.Errorf("seed appointments: %w", err)
	}
	log.Info("Bed registry seeded with %d beds", len(seed))

	if err := app.metrics.TrackBeds(app.bedCounts); err != nil {
		return nil, fmt.Errorf("register bed gauge: %w", err)
	}

	// Справочник
	loader, err := app.catalogLoader(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.catalogSvc = catalogService.NewService(loader, log)
	if _, err := app.catalogSvc.Get(ctx); err != nil {
		log.Warn("Catalog is not available yet, will retry on demand: %v", err)
	}

	// Идентификация
	sessions, err := app.sessionStore(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}
	users, err := userRepo.DemoUsers(cfg.Session.BcryptCost)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("prepare demo users: %w", err)
	}
	tokens := token.NewService(cfg.Session.JWTSecret, cfg.Session.Issuer, cfg.Session.TTL())
	app.identitySvc = identityService.NewService(userRepo.NewRepository(users), sessions, tokens, log)

	// Сервисы и use cases
	app.bedsSvc = bedsService.NewService(app.bedRepository, app.appointmentRepository, app.metrics, log)
	app.timeline = getBedTimelineUC.NewUseCase(app.bedRepository, grid, log)
	app.clickSlot = clickSlotUC.NewUseCase(app.bedRepository, grid, log)
	app.saveAssignment = saveAssignmentUC.NewUseCase(
		app.bedRepository,
		app.appointmentRepository,
		app.catalogSvc,
		idgen.NewUUID(),
		app.metrics,
		log,
	)
	app.bookingForm = bookingFormUC.NewUseCase(app.bedRepository, app.catalogSvc, app.saveAssignment, grid, log)
	app.completeService = completeServiceUC.NewUseCase(app.bedRepository, app.appointmentRepository, app.metrics, log)
	app.cancelAssignment = cancelAssignmentUC.NewUseCase(app.bedRepository, app.appointmentRepository, app.metrics, log)
	app.listAppointments = listAppointmentsUC.NewUseCase(app.appointmentRepository, log)
	app.exportBoard = exportBoardUC.NewUseCase(app.bedRepository, grid, log)

	return app, nil
}

func (a *application) catalogLoader(ctx context.Context) (catalogService.CatalogLoader, error) {
	if a.cfg.Catalog.Source != config.CatalogSourcePostgres {
		a.log.Info("Catalog source: built-in demo data")
		return catalogRepo.NewStatic(), nil
	}

	db, err := sql.Open("postgres", a.cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(a.cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(a.cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(a.cfg.Database.ConnMaxLifetime) * time.Second)
	a.closers = append(a.closers, func() { _ = db.Close() })

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	a.log.Info("Catalog source: PostgreSQL (host=%s, port=%d, db=%s)",
		a.cfg.Database.Host, a.cfg.Database.Port, a.cfg.Database.DBName)
	return catalogRepo.NewRepository(db), nil
}

func (a *application) sessionStore(ctx context.Context) (identityService.SessionStore, error) {
	if a.cfg.Session.Store != config.SessionStoreRedis {
		a.log.Info("Session store: in-memory")
		return sessionStore.NewMemoryStore(a.cfg.Session.Prefix, a.cfg.Session.TTL()), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	a.closers = append(a.closers, func() { _ = client.Close() })

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis %s: %w", a.cfg.Redis.Addr, err)
	}
	a.log.Info("Session store: Redis at %s", a.cfg.Redis.Addr)
	return sessionStore.NewRedisStore(client, a.cfg.Session.Prefix, a.cfg.Session.TTL()), nil
}

// bedCounts источник значения метрики beds{status}
func (a *application) bedCounts() map[string]int {
	counts, err := a.bedRepository.CountByStatus(context.Background(), domain.BedFilter{})
	if err != nil {
		a.log.Error("bedCounts: %v", err)
		return nil
	}
	result := make(map[string]int, len(counts))
	for status, n := range counts {
		result[string(status)] = n
	}
	return result
}

// handler собирает HTTP роутер
func (a *application) handler() http.Handler {
	log := a.log

	opts := router.Options{
		Resolver:       a.identitySvc,
		Logger:         log,
		AllowedOrigins: a.cfg.CORS.AllowedOrigins,
	}
	if a.metrics != nil {
		opts.Metrics = a.metrics
		opts.MetricsPath = a.cfg.Metrics.Path
		opts.MetricsHTTP = a.metrics.Handler()
	}

	return router.New(opts, router.Handlers{
		Login:   authLoginHandler.NewHandler(a.identitySvc, log).Handle,
		Logout:  authLogoutHandler.NewHandler(a.identitySvc, log).Handle,
		Session: authSessionHandler.NewHandler(log).Handle,
		Catalog: getCatalogHandler.NewHandler(a.catalogSvc, log).Handle,

		ListBeds:     listBedsHandler.NewHandler(a.bedsSvc, log).Handle,
		BedStats:     getBedStatsHandler.NewHandler(a.bedsSvc, log).Handle,
		GetBed:       getBedHandler.NewHandler(a.bedsSvc, log).Handle,
		CreateBed:    createBedHandler.NewHandler(a.bedsSvc, log).Handle,
		UpdateBed:    updateBedHandler.NewHandler(a.bedsSvc, log).Handle,
		DeleteBed:    deleteBedHandler.NewHandler(a.bedsSvc, log).Handle,
		SetBedStatus: setBedStatusHandler.NewHandler(a.bedsSvc, log).Handle,

		Timeline:          getBedTimelineHandler.NewHandler(a.timeline, log).Handle,
		ClickSlot:         clickSlotHandler.NewHandler(a.clickSlot, log).Handle,
		BookingForm:       getBookingFormHandler.NewHandler(a.bookingForm, log).Handle,
		BookingFormSelect: bookingFormSelectHandler.NewHandler(a.bookingForm, log).Handle,
		SaveAssignment:    saveAssignmentHandler.NewHandler(a.bookingForm, log).Handle,
		CompleteService:   completeServiceHandler.NewHandler(a.completeService, log).Handle,
		CancelAssignment:  cancelAssignmentHandler.NewHandler(a.cancelAssignment, log).Handle,

		ListAppointments: listAppointmentsHandler.NewHandler(a.listAppointments, log).Handle,
		ExportBoard:      exportBoardHandler.NewHandler(a.exportBoard, log).Handle,
	})
}

// Close освобождает внешние соединения
func (a *application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
