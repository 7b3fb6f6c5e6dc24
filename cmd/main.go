package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/ciudad_activa/internal/config"
	v1 "github.com/shenikar/ciudad_activa/internal/handler/http/v1"
	"github.com/shenikar/ciudad_activa/internal/repository"
	"github.com/shenikar/ciudad_activa/internal/service"
	"github.com/shenikar/ciudad_activa/internal/simulator"
	"github.com/shenikar/ciudad_activa/internal/webhook"
	"github.com/shenikar/ciudad_activa/pkg/logger"
	"github.com/shenikar/ciudad_activa/pkg/postgres"
	redisclient "github.com/shenikar/ciudad_activa/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/ciudad_activa/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Ciudad Activa API
// @version 1.0
// @description Civic incident reporting backend: incidents, emergencies, statistics and notifications.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient, cfg.CacheTTL)
	emergencyRepo := repository.NewEmergencyRepository(dbpool)
	notificationRepo := repository.NewNotificationRepository(dbpool)
	statisticsRepo := repository.NewStatisticsRepository(dbpool)

	// Инициализация сервисов
	statisticsService := service.NewStatisticsService(statisticsRepo, log)
	notificationService := service.NewNotificationService(notificationRepo, webhookPublisher, log)
	incidentService := service.NewIncidentService(incidentRepo, notificationService, statisticsService, log)
	emergencyService := service.NewEmergencyService(emergencyRepo, notificationService, statisticsService, log)

	// Живая симуляция для демо-стенда
	var sim *simulator.Simulator
	if cfg.SimulationEnabled {
		sim = simulator.NewSimulator(incidentService, cfg, log)
		sim.Start(ctx)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Services{
		Incidents:     incidentService,
		Emergencies:   emergencyService,
		Notifications: notificationService,
		Statistics:    statisticsService,
	}, map[string]v1.HealthCheck{
		"postgres": dbpool.Ping,
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	}, log, cfg)

	// Настройка Gin роутера
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(v1.RequestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSAllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-API-Key"},
		ExposeHeaders: []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}))

	api := router.Group("/api")
	api.Use(v1.RateLimitMiddleware(redisClient, cfg.RateLimitRequests, cfg.RateLimitWindow, log))
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Останавливаем фоновые воркеры
	cancel()
	webhookWorker.Wait()
	if sim != nil {
		sim.Wait()
	}

	log.Info("Server gracefully stopped")
}
