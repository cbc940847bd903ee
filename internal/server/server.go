package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/xela07ax/mrp-console/internal/domain"
	"github.com/xela07ax/mrp-console/internal/handler"
	"github.com/xela07ax/mrp-console/internal/httpx"
	"github.com/xela07ax/mrp-console/internal/infra"
	"github.com/xela07ax/mrp-console/internal/infra/auth"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Pinger — проверка живости хранилища для /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	router *chi.Mux
	logger *zap.Logger
	cfg    *infra.Config

	validator auth.TokenValidator
	db        Pinger
	metrics   *Metrics

	// Обработчики бизнес-доменов
	authHandler     *handler.AuthHandler     // /api/auth
	userHandler     *handler.UserHandler     // /api/users
	roleHandler     *handler.RoleHandler     // /api/roles
	supplierHandler *handler.SupplierHandler // /api/suppliers
	materialHandler *handler.MaterialHandler // /api/materials
}

// New собирает роутер со всеми зависимостями.
// metrics == nil допустим: NewMetrics заведет локальный реестр.
func New(
	cfg *infra.Config,
	logger *zap.Logger,
	validator auth.TokenValidator,
	db Pinger,
	metrics *Metrics,
	authH *handler.AuthHandler,
	userH *handler.UserHandler,
	roleH *handler.RoleHandler,
	supplierH *handler.SupplierHandler,
	materialH *handler.MaterialHandler,
) *Server {
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	s := &Server{
		router:          chi.NewRouter(),
		logger:          logger.Named("mrp-api"),
		cfg:             cfg,
		validator:       validator,
		db:              db,
		metrics:         metrics,
		authHandler:     authH,
		userHandler:     userH,
		roleHandler:     roleH,
		supplierHandler: supplierH,
		materialHandler: materialH,
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router

	admin := auth.RequireRoles(domain.RoleAdmin)
	anyRole := auth.RequireRoles(domain.RoleAdmin, domain.RoleUser)

	// --- 1. Глобальные инфраструктурные Middleware (для всех) ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Use(s.metrics.Middleware)

	// --- 2. ПУБЛИЧНЫЕ РОУТЫ (Открыты для всех) ---
	r.Group(func(r chi.Router) {
		// Корень тоже отвечает конвертом: один формат на весь API
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			httpx.JSON(w, http.StatusOK, "OK", "Server is running")
		})

		// Healthcheck для мониторинга: живость сервиса и базы
		r.Get("/health", s.health)

		r.Get("/metrics", s.metrics.Handler().ServeHTTP)

		// Логин и регистрация доступны без токена, но под троттлингом:
		// перебор паролей дешевле всего резать до bcrypt
		r.Route("/api/auth", func(r chi.Router) {
			r.Use(Throttle(rate.NewLimiter(
				rate.Limit(s.cfg.Auth.LoginRPS), s.cfg.Auth.LoginBurst)))
			r.Post("/login", s.authHandler.Login)
			r.Post("/register", s.authHandler.Register)
		})
	})

	// --- 3. ЗАЩИЩЕННЫЙ ПЕРИМЕТР (Требуют HS256 токен) ---
	r.Group(func(r chi.Router) {
		r.Use(auth.NewMiddleware(s.validator, s.logger))

		r.Route("/api/users", func(r chi.Router) {
			// Доступно обеим ролям; без {id} — self-режим по sub токена
			r.Group(func(r chi.Router) {
				r.Use(anyRole)
				r.Post("/", s.userHandler.Create)
				r.Put("/", s.userHandler.Update)
				r.Delete("/", s.userHandler.Delete)
				r.Get("/info", s.userHandler.Info)
			})
			// Работа с чужими записями — только Admin
			r.Group(func(r chi.Router) {
				r.Use(admin)
				r.Get("/", s.userHandler.List)
				r.Get("/{id}", s.userHandler.GetByID)
				r.Put("/{id}", s.userHandler.Update)
				r.Delete("/{id}", s.userHandler.Delete)
			})
		})

		// Справочник ролей целиком админский
		r.Route("/api/roles", func(r chi.Router) {
			r.Use(admin)
			r.Post("/", s.roleHandler.Create)
			r.Get("/", s.roleHandler.List)
			r.Get("/{id}", s.roleHandler.GetByID)
			r.Put("/{id}", s.roleHandler.Update)
			r.Delete("/{id}", s.roleHandler.Delete)
		})

		// Смешанные права у соседних роутов — гейт вешаем через r.With
		r.Route("/api/suppliers", func(r chi.Router) {
			r.With(admin).Post("/", s.supplierHandler.Create)
			r.With(anyRole).Get("/", s.supplierHandler.List)
			r.With(anyRole).Get("/{id}", s.supplierHandler.GetByID)
			r.With(admin).Put("/{id}", s.supplierHandler.Update)
			r.With(admin).Delete("/{id}", s.supplierHandler.Delete)
		})

		r.Route("/api/materials", func(r chi.Router) {
			r.With(admin).Post("/groups", s.materialHandler.Create)
			r.With(anyRole).Get("/groups", s.materialHandler.List)
			r.With(anyRole).Get("/groups/sub/{name}", s.materialHandler.ListSubGroups)
			r.With(anyRole).Get("/groups/{id}", s.materialHandler.GetByID)
			r.With(admin).Put("/groups/{id}", s.materialHandler.Update)
			r.With(admin).Delete("/groups/{id}", s.materialHandler.Delete)
		})
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		s.logger.Error("health: db ping failed", zap.Error(err))
		httpx.JSON(w, http.StatusServiceUnavailable, httpx.Null{}, "database unavailable")
		return
	}
	httpx.JSON(w, http.StatusOK, "OK", "healthy")
}

// ServeHTTP позволяет использовать Server как стандартный http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
