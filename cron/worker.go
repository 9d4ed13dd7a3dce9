package cron

import (
	"context"
	"time"

	"classboard/config"
	"classboard/services/reminder"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt is the asynq connection for the reminder queue.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitReminderWorker starts the asynq server in the background and queues the
// first reminder. The caller stops it with Shutdown on the returned server,
// which is nil when the worker could not start.
func InitReminderWorker(items reminder.ItemGetter, planner *reminder.Planner, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		RedisOpt(),
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.Handle(reminder.TypeActivityReminder, reminder.NewHandler(items, planner, logger))

	logger.Info("starting reminder worker")
	if err := srv.Start(mux); err != nil {
		logger.Error("reminder worker failed to start; reminders are disabled", zap.Error(err))
		return nil
	}

	// Seed the chain with the next upcoming activity.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := planner.Plan(ctx); err != nil {
			logger.Warn("initial reminder planning failed", zap.Error(err))
		}
	}()

	return srv
}
