package portal

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/caresuite/hms-portal/internal/authz"
	"github.com/caresuite/hms-portal/internal/dashboard"
	"github.com/caresuite/hms-portal/internal/dataset"
	"github.com/caresuite/hms-portal/pkg/config"
	"github.com/caresuite/hms-portal/pkg/logger"
	"github.com/caresuite/hms-portal/pkg/monitoring"
)

// Service implements the portal HTTP API over the authorization core
type Service struct {
	config         *config.Config
	logger         *logger.Logger
	router         *mux.Router
	server         *http.Server
	data           *dataset.Dataset
	engine         *authz.Engine
	dashboard      *dashboard.Service
	tokenValidator *TokenValidator
	rateLimiter    *RateLimiter
	startTime      time.Time
}

// New creates a new portal service with the seeded dataset
func New(cfg *config.Config, log *logger.Logger) *Service {
	data := dataset.Seed()
	engine := authz.NewEngine(data.Ownership(), log)

	s := &Service{
		config:         cfg,
		logger:         log,
		router:         mux.NewRouter(),
		data:           data,
		engine:         engine,
		dashboard:      dashboard.New(data, engine, log),
		tokenValidator: NewTokenValidator(cfg.JWT.SecretKey, cfg.JWT.Issuer),
		rateLimiter:    NewRateLimiter(cfg.RateLimit.RequestsPerMin, time.Minute),
		startTime:      time.Now(),
	}

	s.setupRoutes()
	s.setupMiddleware()

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	return s
}

func (s *Service) setupRoutes() {
	s.router.HandleFunc(s.config.Monitoring.HealthPath, s.handleHealth).Methods(http.MethodGet)
	if s.config.Monitoring.Enabled {
		s.router.Handle(s.config.Monitoring.MetricsPath, monitoring.Handler()).Methods(http.MethodGet)
	}

	api := s.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/patients", s.handleListPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", s.handleGetPatient).Methods(http.MethodGet)
	api.HandleFunc("/emr", s.handleListEMRs).Methods(http.MethodGet)
	api.HandleFunc("/appointments", s.handleListAppointments).Methods(http.MethodGet)
	api.HandleFunc("/lab-orders", s.handleListLabOrders).Methods(http.MethodGet)
	api.HandleFunc("/lab-results", s.handleListLabResults).Methods(http.MethodGet)
	api.HandleFunc("/inpatients", s.handleListInpatients).Methods(http.MethodGet)
	api.HandleFunc("/consultations", s.handleListConsultations).Methods(http.MethodGet)
	api.HandleFunc("/radiology", s.handleListRadiology).Methods(http.MethodGet)
	api.HandleFunc("/billing", s.handleListBilling).Methods(http.MethodGet)
	api.HandleFunc("/emergency", s.handleListEmergency).Methods(http.MethodGet)

	api.HandleFunc("/activity", s.handleActivityFeed).Methods(http.MethodGet)

	api.HandleFunc("/dashboard/stats", s.handleDashboardStats).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/visits", s.handleDashboardVisits).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/revenue", s.handleDashboardRevenue).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/departments", s.handleDashboardDepartments).Methods(http.MethodGet)

	api.HandleFunc("/doctors/available", s.handleAvailableDoctors).Methods(http.MethodGet)
}

func (s *Service) setupMiddleware() {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.authMiddleware)
	s.router.Use(s.rateLimitMiddleware)
}

// Start starts the portal HTTP server
func (s *Service) Start() error {
	s.logger.WithField("addr", s.server.Addr).Info("Starting portal service")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("portal server failed: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the portal HTTP server
func (s *Service) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Handler exposes the configured router. Used by tests.
func (s *Service) Handler() http.Handler {
	return s.router
}
