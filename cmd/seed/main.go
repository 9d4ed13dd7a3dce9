// Command seed loads the Monday-Friday block schedule into MongoDB.
// With -reset it first clears both collections.
package main

import (
	"context"
	"flag"
	"time"

	"classboard/config"
	"classboard/database"
	scheduleRepo "classboard/database/repository/schedule"
	"classboard/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func main() {
	reset := flag.Bool("reset", false, "delete existing schedules and items before seeding")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if err := database.InitDB(); err != nil {
		logger.Fatal("connecting to MongoDB", zap.Error(err))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	defer database.CloseDB(ctx)

	db := database.Database()
	if *reset {
		for _, name := range []string{"schedules", "schedule_items"} {
			res, err := db.Collection(name).DeleteMany(ctx, bson.M{})
			if err != nil {
				logger.Fatal("clearing collection", zap.String("collection", name), zap.Error(err))
			}
			logger.Info("cleared collection", zap.String("collection", name), zap.Int64("deleted", res.DeletedCount))
		}
	}

	repo := scheduleRepo.NewMongoScheduleRepo(db)
	if ensurer, ok := repo.(scheduleRepo.IndexEnsurer); ok {
		if err := ensurer.EnsureIndexes(ctx); err != nil {
			logger.Fatal("creating indexes", zap.Error(err))
		}
	}
	if err := scheduleRepo.SeedWeek(ctx, repo); err != nil {
		logger.Fatal("seeding", zap.Error(err))
	}

	items, err := repo.ListAllItems(ctx)
	if err != nil {
		logger.Fatal("verifying seed", zap.Error(err))
	}
	logger.Info("seeded weekly schedule", zap.String("database", config.AppConfig.DatabaseName), zap.Int("items", len(items)))
}
