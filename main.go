package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classboard/config"
	"classboard/cron"
	"classboard/database"
	scheduleRepo "classboard/database/repository/schedule"
	"classboard/handlers"
	"classboard/middleware"
	"classboard/routes"
	"classboard/services/reminder"
	"classboard/services/schedule"
	"classboard/services/timeutil"
	"classboard/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	// repository.
	repo := initRepository(rootCtx, cfg, logger)

	// services.
	scheduleService := &schedule.DefaultScheduleService{
		Repo:  repo,
		Clock: timeutil.SystemClock{},
	}

	var redisClients []*redis.Client
	if cfg.CacheEnabled {
		if err := utils.InitCache(); err != nil {
			logger.Warn("main: item cache disabled", zap.Error(err))
		} else {
			scheduleService.Cache = schedule.NewRedisItemCache(utils.GetCacheClient(), cfg.CacheTTL())
			redisClients = append(redisClients, utils.GetCacheClient())
		}
	}

	var (
		queueClient *asynq.Client
		reminderSrv *asynq.Server
	)
	if cfg.RemindersEnabled {
		queueClient = asynq.NewClient(cron.RedisOpt())
		planner := &reminder.Planner{
			Items:  repo,
			Queue:  queueClient,
			Clock:  timeutil.SystemClock{},
			Lead:   cfg.ReminderLead(),
			Logger: logger.Named("reminder"),
		}
		reminderSrv = cron.InitReminderWorker(repo, planner, logger.Named("reminder"))
		if reminderSrv != nil {
			scheduleService.Reminders = planner
		}
	}

	monitor := utils.NewHealthMonitor(cfg.StorageDriver, redisClients, database.MongoClient)
	monitor.Start(rootCtx, 30*time.Second)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	handlerBundle := handlers.NewHandlerBundle(scheduleHandler, handlers.HealthHandler(monitor))
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	if reminderSrv != nil {
		reminderSrv.Shutdown()
	}
	if queueClient != nil {
		if err := queueClient.Close(); err != nil {
			logger.Warn("main: closing queue client", zap.Error(err))
		}
	}
	if client := utils.GetCacheClient(); client != nil {
		if err := client.Close(); err != nil {
			logger.Warn("main: closing cache client", zap.Error(err))
		}
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: disconnecting MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// initRepository opens the configured store and seeds it when requested.
// A Mongo store is only seeded while it has no schedules.
func initRepository(ctx context.Context, cfg config.Config, logger *zap.Logger) scheduleRepo.ScheduleRepository {
	var repo scheduleRepo.ScheduleRepository
	switch cfg.StorageDriver {
	case config.StorageMongo:
		if err := database.InitDB(); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		repo = scheduleRepo.NewMongoScheduleRepo(database.Database())
		if ensurer, ok := repo.(scheduleRepo.IndexEnsurer); ok {
			if err := ensurer.EnsureIndexes(ctx); err != nil {
				logger.Sugar().Fatalf("main: %v", err)
			}
		}
	case config.StorageMemory, "":
		repo = scheduleRepo.NewMemoryScheduleRepo()
	default:
		logger.Sugar().Fatalf("main: unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	if !cfg.SeedData {
		return repo
	}
	existing, err := repo.ListSchedules(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: checking existing schedules: %v", err)
	}
	if len(existing) > 0 {
		logger.Info("main: store already populated, skipping seed", zap.Int("schedules", len(existing)))
		return repo
	}
	if err := scheduleRepo.SeedWeek(ctx, repo); err != nil {
		logger.Sugar().Fatalf("main: seeding schedules: %v", err)
	}
	logger.Info("main: seeded weekly schedule", zap.String("storage", cfg.StorageDriver))
	return repo
}
