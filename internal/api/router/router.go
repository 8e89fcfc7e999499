package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SpaBoard/internal/api/middleware"
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// APIPrefix префикс всех маршрутов API
const APIPrefix = "/api/v1"

// Handlers обработчики маршрутов API
type Handlers struct {
	Login   http.HandlerFunc
	Logout  http.HandlerFunc
	Session http.HandlerFunc
	Catalog http.HandlerFunc

	ListBeds     http.HandlerFunc
	BedStats     http.HandlerFunc
	GetBed       http.HandlerFunc
	CreateBed    http.HandlerFunc
	UpdateBed    http.HandlerFunc
	DeleteBed    http.HandlerFunc
	SetBedStatus http.HandlerFunc

	Timeline          http.HandlerFunc
	ClickSlot         http.HandlerFunc
	BookingForm       http.HandlerFunc
	BookingFormSelect http.HandlerFunc
	SaveAssignment    http.HandlerFunc
	CompleteService   http.HandlerFunc
	CancelAssignment  http.HandlerFunc

	ListAppointments http.HandlerFunc
	ExportBoard      http.HandlerFunc
}

// Options инфраструктура роутера
type Options struct {
	Resolver       middleware.SessionResolver
	Logger         middleware.Logger
	AllowedOrigins []string

	// Metrics nil, если метрики выключены
	Metrics     middleware.HTTPMetrics
	MetricsPath string
	MetricsHTTP http.Handler
}

// New собирает HTTP роутер доски
func New(opts Options, h Handlers) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.Logging(opts.Logger))
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
	}
	if opts.MetricsHTTP != nil {
		r.Handle(opts.MetricsPath, opts.MetricsHTTP).Methods(http.MethodGet)
	}

	api := r.PathPrefix(APIPrefix).Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <token>)
	// ============================================================

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.Auth(opts.Resolver, opts.Logger))

	route := func(method, path string, handler http.HandlerFunc, perms ...domain.Permission) {
		protected.Handle(path, middleware.RequirePermissions(opts.Logger, perms...)(handler)).Methods(method)
	}

	// --- Сессия ---
	route(http.MethodPost, "/auth/logout", h.Logout)
	route(http.MethodGet, "/auth/session", h.Session)

	// --- Справочник ---
	route(http.MethodGet, "/catalog", h.Catalog, domain.PermViewCatalog)

	// --- Реестр кроватей ---
	route(http.MethodGet, "/beds", h.ListBeds, domain.PermViewBeds)
	route(http.MethodGet, "/beds/stats", h.BedStats, domain.PermViewBeds)
	route(http.MethodPost, "/beds", h.CreateBed, domain.PermManageBeds)
	route(http.MethodGet, "/beds/{bedId:[0-9]+}", h.GetBed, domain.PermViewBeds)
	route(http.MethodPut, "/beds/{bedId:[0-9]+}", h.UpdateBed, domain.PermManageBeds)
	route(http.MethodDelete, "/beds/{bedId:[0-9]+}", h.DeleteBed, domain.PermManageBeds)
	route(http.MethodPatch, "/beds/{bedId:[0-9]+}/status", h.SetBedStatus, domain.PermManageBeds)

	// --- Расписание ---
	route(http.MethodGet, "/beds/{bedId:[0-9]+}/timeline", h.Timeline, domain.PermViewBeds)
	route(http.MethodPost, "/beds/{bedId:[0-9]+}/slots/{slot:[0-9]+}/click", h.ClickSlot, domain.PermManageBookings)
	route(http.MethodGet, "/beds/{bedId:[0-9]+}/booking-form", h.BookingForm, domain.PermManageBookings)
	route(http.MethodPost, "/booking-form/select", h.BookingFormSelect, domain.PermManageBookings)
	route(http.MethodPost, "/beds/{bedId:[0-9]+}/assignment", h.SaveAssignment, domain.PermManageBookings)
	route(http.MethodPost, "/beds/{bedId:[0-9]+}/complete", h.CompleteService, domain.PermManageBookings)
	route(http.MethodPost, "/beds/{bedId:[0-9]+}/cancel", h.CancelAssignment, domain.PermManageBookings)

	// --- Журнал и отчеты ---
	route(http.MethodGet, "/appointments", h.ListAppointments, domain.PermViewBookings)
	route(http.MethodGet, "/board/export", h.ExportBoard, domain.PermExportReports)

	return middleware.CORSHandler(opts.AllowedOrigins)(r)
}
