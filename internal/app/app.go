package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/greenlink/internal/config"
	"github.com/aidar/greenlink/internal/handler"
	"github.com/aidar/greenlink/internal/repository"
	"github.com/aidar/greenlink/internal/repository/memory"
	"github.com/aidar/greenlink/internal/repository/postgres"
	"github.com/aidar/greenlink/internal/service"
)

// HealthMessage возвращается эндпоинтом проверки живости
const HealthMessage = "GreenLink backend is running"

// App представляет приложение со всеми зависимостями
type App struct {
	config *config.Config
	db     *pgxpool.Pool
	store  *repository.Store
	router http.Handler
	server *http.Server
	logger *slog.Logger
}

// New создает новый экземпляр приложения
func New(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Инициализируем структурированный логгер (JSON формат)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	app := &App{
		config: cfg,
		logger: logger,
	}

	return app, nil
}

// Initialize инициализирует все компоненты приложения
func (a *App) Initialize(ctx context.Context) error {
	// Выбираем хранилище
	switch a.config.Storage.Driver {
	case config.StorageMemory:
		a.store = memory.NewStore(memory.New())
		a.logger.Info("Using in-memory storage")
	default:
		if err := a.connectDB(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		a.store = postgres.NewStore(a.db)
	}

	// Настраиваем HTTP сервер и роутинг
	if err := a.setupServer(); err != nil {
		return err
	}

	a.logger.Info("Application initialized successfully")
	return nil
}

// connectDB устанавливает подключение к PostgreSQL с connection pool
func (a *App) connectDB(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(a.config.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	// Настраиваем размеры connection pool
	poolConfig.MaxConns = a.config.Database.MaxConns
	poolConfig.MinConns = a.config.Database.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Проверяем подключение к БД
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.db = pool
	a.logger.Info("Connected to database")
	return nil
}

// setupServer инициализирует HTTP роутер и обработчики
func (a *App) setupServer() error {
	// Инициализируем слой сервисов (бизнес-логика)
	clubCodes := service.NewCodeGenerator(service.ClubCodeWords, nil, a.config.Codes.MaxAttempts)
	teamCodes := service.NewCodeGenerator(service.TeamCodeWords, nil, a.config.Codes.MaxAttempts)

	authService, err := service.NewAuthService(a.store.Users, service.NewBcryptHasher(a.config.Auth.BcryptCost))
	if err != nil {
		return fmt.Errorf("failed to create auth service: %w", err)
	}
	clubService := service.NewClubService(a.store, clubCodes)
	teamService := service.NewTeamService(a.store, teamCodes)
	playerService := service.NewPlayerService(a.store)
	membershipService := service.NewMembershipService(a.store)

	// Инициализируем HTTP обработчики
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService, membershipService)
	clubHandler := handler.NewClubHandler(clubService)
	teamHandler := handler.NewTeamHandler(teamService)
	playerHandler := handler.NewPlayerHandler(playerService)
	membershipHandler := handler.NewMembershipHandler(membershipService)
	statsHandler := handler.NewStatsHandler(teamService, playerService)

	// Настраиваем роутер
	r := chi.NewRouter()

	// Глобальные middleware (применяются ко всем запросам)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Фронтенд работает с одного origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{a.config.Server.CORSAllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		// Health check для мониторинга
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write([]byte(HealthMessage)); err != nil {
				a.logger.Error("Failed to write health check response", "error", err)
			}
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
		})

		r.Route("/users/{id}", func(r chi.Router) {
			r.Get("/", userHandler.GetUser)
			r.Get("/clubs", userHandler.ListUserClubs)
		})

		// Эндпоинты клубов
		r.Route("/clubs", func(r chi.Router) {
			r.Get("/", clubHandler.ListClubs)
			r.Post("/", clubHandler.CreateClub)
			r.Get("/code/{clubCode}", clubHandler.GetClubByCode)
			r.Post("/code/{clubCode}/join", membershipHandler.JoinClub)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", clubHandler.GetClub)
				r.Delete("/", clubHandler.DeleteClub)
				r.Get("/members", membershipHandler.ListClubMembers)
				r.Post("/members", membershipHandler.AddClubMember)
				r.Put("/members/{userId}", membershipHandler.UpdateClubMemberRole)
				r.Delete("/members/{userId}", membershipHandler.RemoveClubMember)
			})
		})

		// Эндпоинты команд
		r.Route("/teams", func(r chi.Router) {
			r.Post("/", teamHandler.CreateTeam)
			r.Get("/club/{clubId}", teamHandler.ListClubTeams)
			r.Get("/code/{teamCode}", teamHandler.GetTeamByCode)
			r.Post("/code/{teamCode}/join", membershipHandler.JoinTeam)
			r.Get("/manager/{managerId}", teamHandler.ListManagerTeams)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", teamHandler.GetTeam)
				r.Delete("/", teamHandler.DeleteTeam)
				r.Get("/stats", statsHandler.GetTeamStats)
				r.Get("/members", membershipHandler.ListTeamMembers)
				r.Post("/members", membershipHandler.AddTeamMember)
				r.Delete("/members/{userId}", membershipHandler.RemoveTeamMember)
			})
		})

		// Эндпоинты игроков
		r.Route("/players", func(r chi.Router) {
			r.Post("/", playerHandler.CreatePlayer)
			r.Get("/team/{teamId}", playerHandler.ListTeamPlayers)
			r.Get("/team/{teamId}/leaders", statsHandler.GetTeamLeaders)
			r.Get("/{id}", playerHandler.GetPlayer)
			r.Put("/{id}", playerHandler.UpdatePlayer)
			r.Delete("/{id}", playerHandler.DeletePlayer)
		})
	})

	a.router = r

	// Создаем HTTP сервер с настройками таймаутов
	addr := fmt.Sprintf("%s:%s", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("HTTP server configured", "addr", addr)
	return nil
}

// Handler возвращает настроенный роутер (доступен после Initialize)
func (a *App) Handler() http.Handler {
	return a.router
}

// Run запускает HTTP сервер
func (a *App) Run() error {
	a.logger.Info("Starting HTTP server", "addr", a.server.Addr)
	return a.server.ListenAndServe()
}

// Shutdown корректно останавливает приложение
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	// Останавливаем HTTP сервер (ждем завершения текущих запросов)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	// Закрываем подключения к базе данных
	if a.db != nil {
		a.db.Close()
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}
