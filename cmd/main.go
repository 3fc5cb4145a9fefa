package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/campus_geofence/internal/config"
	v1 "github.com/shenikar/campus_geofence/internal/handler/http/v1"
	"github.com/shenikar/campus_geofence/internal/metrics"
	"github.com/shenikar/campus_geofence/internal/notifier"
	"github.com/shenikar/campus_geofence/internal/position"
	"github.com/shenikar/campus_geofence/internal/repository"
	"github.com/shenikar/campus_geofence/internal/scheduler"
	"github.com/shenikar/campus_geofence/internal/service"
	"github.com/shenikar/campus_geofence/internal/webhook"
	"github.com/shenikar/campus_geofence/pkg/logger"
	redisclient "github.com/shenikar/campus_geofence/pkg/redis"

	_ "github.com/shenikar/campus_geofence/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Campus Geofence Attendance API
// @version 1.0
// @description Live campus geofence monitoring and attendance reporting.
// @host localhost:8080
// @BasePath /api/v1
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

	collector, err := metrics.NewCollector(nil)
	if err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	// Доставка событий нарушения во внешние системы
	var publishers webhook.MultiPublisher
	var workerDone <-chan struct{}

	if cfg.AlertsRedisEnabled {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		publishers = append(publishers, webhook.NewRedisWebhookPublisher(redisClient))
		workerDone = webhook.NewWebhookWorker(redisClient, log, cfg).Start(ctx)
	}

	if cfg.RabbitMQURL != "" {
		conn, err := webhook.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer conn.Close()

		amqpPublisher, err := webhook.NewAMQPPublisher(conn)
		if err != nil {
			log.Fatalf("Failed to set up RabbitMQ publisher: %v", err)
		}
		defer amqpPublisher.Close()
		publishers = append(publishers, amqpPublisher)
		log.Info("Successfully connected to RabbitMQ")
	}

	// Сервис генерации уведомлений
	var breachNotifier service.Notifier = notifier.NewTemplateNotifier()
	if cfg.NotifierURL != "" {
		breachNotifier = notifier.NewHTTPNotifier(cfg.NotifierURL, cfg.NotifierTimeout, log)
	}

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	positions := position.NewRandomWalk(cfg.RandomWalkStep, seed)

	// Инициализация репозиториев
	sessions := repository.NewSessionLogRepository(cfg.Location)

	// Инициализация сервисов
	opts := []service.MonitorOption{service.WithMetrics(collector)}
	if len(publishers) > 0 {
		opts = append(opts, service.WithAlertPublisher(publishers))
	}
	monitor, err := service.NewMonitor(service.MonitorConfig{
		Geofence:          cfg.Geofence(),
		StartHour:         cfg.ActiveStartHour,
		EndHour:           cfg.ActiveEndHour,
		TickInterval:      cfg.TickInterval,
		Location:          cfg.Location,
		NotifyTimeout:     cfg.NotifierTimeout,
		AlertHistoryLimit: cfg.AlertHistoryLimit,
	}, sessions, positions, breachNotifier, log, opts...)
	if err != nil {
		log.Fatalf("Failed to create monitor: %v", err)
	}

	roster, err := config.LoadRoster(cfg.RosterFile)
	if err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}
	for _, student := range roster {
		if err := monitor.Enroll(ctx, student); err != nil {
			log.Fatalf("Failed to enroll student %s: %v", student.ID, err)
		}
	}

	attendance := service.NewAttendanceService(sessions, monitor, cfg.Location, log)

	// Запуск мониторинга
	schedulerDone := scheduler.NewScheduler(monitor, cfg.TickInterval, log).Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(monitor, attendance, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(collector.GinMiddleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(collector.Handler()))
	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}
	// Потоки SSE завершаются вместе с контекстом приложения
	srv.BaseContext = func(_ net.Listener) context.Context { return ctx }

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithFields(logrus.Fields{
		"port":     cfg.HTTPPort,
		"students": len(roster),
		"geofence": cfg.Geofence().Name,
	}).Info("HTTP server started")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	cancel()
	<-schedulerDone
	monitor.Wait()
	if workerDone != nil {
		<-workerDone
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
