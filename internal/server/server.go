package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mytodo/internal/cache"
	"mytodo/internal/config"
	"mytodo/internal/handler"
	"mytodo/internal/middleware"
	"mytodo/internal/model"
	"mytodo/internal/monitoring"
	"mytodo/internal/repository"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	Log    *zap.SugaredLogger
}

func Init(cfg *config.Config, log *zap.SugaredLogger) (*Server, error) {
	db, err := openDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	if err := db.AutoMigrate(&model.Project{}, &model.Todo{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Infow("connected to database", "driver", cfg.DBDriver)

	var todoCache *cache.TodoCache
	if cfg.RedisEnabled {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		todoCache = cache.NewTodoCache(rdb)
		monitoring.RegisterHealthCheck("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
		log.Infow("redis cache enabled", "addr", cfg.RedisAddr)
	}
	monitoring.RegisterHealthCheck("database", func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(monitoring.MetricsMiddleware())
	r.Use(cors.Default())
	if cfg.RateLimitRPS > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		r.Use(limiter.Middleware())
	}

	todoRepo := repository.NewTodoRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	todoHandler := handler.NewTodoHandler(todoRepo, todoCache)
	projectHandler := handler.NewProjectHandler(projectRepo)

	r.GET("/healthz", monitoring.HealthHandler)
	r.GET("/readyz", monitoring.ReadinessHandler)
	r.GET("/metrics", monitoring.MetricsHandler)
	r.GET("/flaky", handler.Flaky)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.POST("/todos", todoHandler.Create)
		api.GET("/todos", todoHandler.List)
		api.GET("/todos/:id", todoHandler.GetByID)
		api.PUT("/todos/reorder", todoHandler.Reorder)
		api.PUT("/todos/:id", todoHandler.Update)
		api.DELETE("/todos/:id", todoHandler.Delete)

		api.POST("/projects", projectHandler.Create)
		api.GET("/projects", projectHandler.List)
		api.GET("/projects/:id", projectHandler.GetByID)
		api.PUT("/projects/:id", projectHandler.Update)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
		Log:    log,
	}, nil
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
		)
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	}
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		s.Log.Infow("server running", "port", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Log.Fatalw("failed to listen", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.Log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.Log.Fatalw("server forced to shutdown", "error", err)
	}

	s.Log.Info("server exited properly")
}
