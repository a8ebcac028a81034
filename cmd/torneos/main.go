package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"torneos/config"
	"torneos/docs"
	"torneos/internal/init/cache"
	"torneos/internal/init/database"

	authC "torneos/internal/modules/user/auth/controller"
	authRp "torneos/internal/modules/user/auth/repo"
	authDb "torneos/internal/modules/user/auth/repo/database"
	authUC "torneos/internal/modules/user/auth/usecase"

	teamC "torneos/internal/modules/team/controller"
	teamRp "torneos/internal/modules/team/repo"
	teamCacheRepo "torneos/internal/modules/team/repo/cache"
	teamDbRepo "torneos/internal/modules/team/repo/database"
	teamUC "torneos/internal/modules/team/usecase"

	tournamentDb "torneos/internal/modules/tournament/repo/database"

	"torneos/pkg/lib/TeamService"
	"torneos/pkg/lib/jwt"
	resp "torneos/pkg/lib/response"
	appMiddleware "torneos/pkg/middleware/jwt"
	"torneos/pkg/middleware/logger"
	"torneos/pkg/middleware/metrics"
)

type App struct {
	Storage *database.Storage
	Cache   *cache.Cache
	Tokens  *jwt.Manager
	Metrics *metrics.HTTPMetrics
	Router  chi.Router
	Log     *slog.Logger
	Cfg     *config.Config
	Cron    *cron.Cron
	TS      *TeamService.TeamService
}

func NewApp(cfg *config.Config, log *slog.Logger) (*App, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	storage, err := database.NewStorage(cfg.DbConfig, log)
	if err != nil {
		return nil, fmt.Errorf("db init failed: %w", err)
	}

	appCache, err := cache.NewCache(cfg.CacheConfig)
	if err != nil {
		_ = storage.Close()
		return nil, fmt.Errorf("cache init failed: %w", err)
	}

	return &App{
		Storage: storage,
		Cache:   appCache,
		Tokens:  jwt.NewManager(secret, cfg.JWTConfig),
		Metrics: metrics.New(prometheus.NewRegistry()),
		Router:  chi.NewRouter(),
		Log:     log,
		Cfg:     cfg,
	}, nil
}

// startCron schedules the team list refresh. An empty spec disables it.
func (app *App) startCron(refresher TeamService.TeamListRefresher) error {
	spec := app.Cfg.CacheConfig.TeamListRefreshSpec
	if spec == "" {
		app.Log.Info("team list refresh job disabled")
		return nil
	}

	app.TS = TeamService.NewTeamService(refresher, app.Log, 30*time.Second)
	app.Cron = cron.New()
	if _, err := app.Cron.AddFunc(spec, app.TS.RefreshTeamList); err != nil {
		return fmt.Errorf("cron init failed: %w", err)
	}
	app.Cron.Start()
	app.Log.Info("team list refresh job scheduled", slog.String("spec", spec))
	return nil
}

func (app *App) Start() error {
	srv := &http.Server{
		Addr:         app.Cfg.HttpServerConfig.Address,
		Handler:      app.Router,
		ReadTimeout:  app.Cfg.HttpServerConfig.Timeout,
		WriteTimeout: app.Cfg.HttpServerConfig.Timeout,
		IdleTimeout:  app.Cfg.HttpServerConfig.IdleTimeout,
	}

	protocol := "http"
	if app.Cfg.HttpServerConfig.TLS.Enabled {
		protocol = "https"
	}
	docs.SwaggerInfo.Host = swaggerHost(app.Cfg.HttpServerConfig.Address)
	docs.SwaggerInfo.Schemes = []string{protocol}

	serverShutdown := make(chan error, 1)
	go func() {
		var err error
		addr := app.Cfg.HttpServerConfig.Address
		if app.Cfg.HttpServerConfig.TLS.Enabled {
			certFile := app.Cfg.HttpServerConfig.TLS.CertFile
			keyFile := app.Cfg.HttpServerConfig.TLS.KeyFile
			app.Log.Info("HTTPS server starting", slog.String("address", addr), slog.String("certFile", certFile))
			err = srv.ListenAndServeTLS(certFile, keyFile)
		} else {
			app.Log.Info("HTTP server starting", slog.String("address", addr))
			err = srv.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Log.Error("server run failed", slog.String("error", err.Error()))
			serverShutdown <- err
			return
		}
		serverShutdown <- nil
	}()

	app.Log.Info(fmt.Sprintf("Swagger docs available at %s://%s/swagger/index.html", protocol, docs.SwaggerInfo.Host))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverShutdown:
		if err != nil {
			app.stopBackground()
			return fmt.Errorf("server runtime error: %w", err)
		}
		app.Log.Info("server stopped on its own")
	case sig := <-quit:
		app.Log.Info("received OS signal, shutting down", slog.String("signal", sig.String()))
	}

	app.stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		app.Log.Error("server graceful shutdown failed", slog.String("error", err.Error()))
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := app.Cache.Close(); err != nil {
		app.Log.Warn("redis close failed", slog.String("error", err.Error()))
	}
	if err := app.Storage.Close(); err != nil {
		app.Log.Warn("db close failed", slog.String("error", err.Error()))
	}

	app.Log.Info("server stopped gracefully")
	return nil
}

func (app *App) stopBackground() {
	if app.Cron == nil {
		return
	}
	cronCtx := app.Cron.Stop()
	select {
	case <-cronCtx.Done():
		app.Log.Info("cron scheduler stopped")
	case <-time.After(3 * time.Second):
		app.Log.Warn("cron scheduler stop timed out")
	}
}

func swaggerHost(address string) string {
	switch {
	case strings.HasPrefix(address, "0.0.0.0:"):
		return "localhost" + address[len("0.0.0.0"):]
	case strings.HasPrefix(address, ":"):
		return "localhost" + address
	}
	return address
}

func (app *App) SetupRoutes() error {
	app.Router.Use(
		middleware.Recoverer,
		middleware.RequestID,
		logger.New(app.Log),
		app.Metrics.Middleware,
		cors.Handler(cors.Options{
			AllowedOrigins:   app.Cfg.HttpServerConfig.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)

	app.Router.Get("/health", app.health)
	app.Router.Handle("/metrics", app.Metrics.Handler())
	app.Router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	apiVersion := "/v1"
	authUserMiddleware := appMiddleware.NewUserAuth(app.Log, app.Tokens)

	// --- Auth Module ---
	authDBImpl := authDb.NewAuthDatabase(app.Storage.Db, app.Log)
	authRepoImpl := authRp.NewRepo(authDBImpl)
	authUseCaseImpl := authUC.NewAuthUseCase(app.Log, authRepoImpl, app.Tokens)
	authCtrl := authC.NewAuthController(app.Log, authUseCaseImpl)

	app.Router.Route(apiVersion+"/auth", func(r chi.Router) {
		if limit := app.Cfg.HttpServerConfig.LoginRateLimit; limit > 0 {
			r.Use(httprate.Limit(limit, 1*time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
		}
		r.Post("/login", authCtrl.Login)
	})

	// --- Team Module ---
	teamDBImpl := teamDbRepo.NewTeamDatabase(app.Storage.Db, app.Log)
	teamCacheImpl := teamCacheRepo.NewTeamCache(app.Cache, app.Log, app.Cfg.CacheConfig)
	teamRepoImpl := teamRp.NewRepo(teamDBImpl, teamCacheImpl, app.Log)
	tournamentRepoImpl := tournamentDb.NewTournamentDatabase(app.Storage.Db, app.Log)
	teamUseCaseImpl := teamUC.NewTeamUseCase(teamRepoImpl, tournamentRepoImpl, app.Log)
	teamCtrl := teamC.NewTeamController(teamUseCaseImpl, app.Log)

	app.Router.Route(apiVersion+"/equipos", teamC.Routes(teamCtrl, authUserMiddleware, app.Log, app.Cfg.HttpServerConfig.WriteRateLimit))

	return app.startCron(teamRepoImpl)
}

// health
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.ErrorResponse
// @Router /health [get]
func (app *App) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := app.Storage.Ping(ctx); err != nil {
		app.Log.Warn("health check failed", slog.String("error", err.Error()))
		resp.SendError(w, r, http.StatusServiceUnavailable, "Base de datos no disponible")
		return
	}
	resp.Send(w, r, http.StatusOK, resp.Response{Success: true})
}

// @title Torneos API
// @version 1.0
// @description Team management for sports tournaments.
// @BasePath /v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to read .env: %v\n", err)
	}

	cfg := config.MustLoad()
	log := SetupLogger(cfg.Env)
	slog.SetDefault(log)

	app, err := NewApp(cfg, log)
	if err != nil {
		log.Error("app init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := app.SetupRoutes(); err != nil {
		log.Error("route setup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := app.Start(); err != nil {
		log.Error("application terminated with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func SetupLogger(env string) *slog.Logger {
	var log *slog.Logger
	level := slog.LevelInfo
	switch strings.ToLower(env) {
	case "local", "dev", "development":
		level = slog.LevelDebug
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level, AddSource: true}))
	case "prod", "production":
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level, AddSource: true}))
	default:
		level = slog.LevelDebug
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level, AddSource: true}))
		log.Warn("unknown environment, defaulting to text debug logger", slog.String("env", env))
	}
	return log
}
