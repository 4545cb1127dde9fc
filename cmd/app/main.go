package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storepanel/cmd"
	"storepanel/internal/adapters/out/memory"
	"storepanel/internal/adapters/out/postgres/catalogrepo"
	"storepanel/internal/adapters/out/postgres/customerrepo"
	"storepanel/internal/adapters/out/postgres/notificationrepo"
	"storepanel/internal/adapters/out/postgres/orderrepo"
	"storepanel/internal/adapters/out/postgres/profilerepo"
	"storepanel/internal/adapters/out/rabbitmq"
	"storepanel/internal/core/ports"

	gormpg "storepanel/internal/adapters/out/postgres"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	uowFactory, customers := createStorage(configs, logger)
	sink := createSink(configs, logger)
	if sink != nil {
		defer func() {
			_ = sink.Close()
		}()
	}

	app := cmd.NewCompositionRoot(uowFactory, customers, sink, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	// Storage is migrated or seeded by now, open the API.
	server := app.CreateServer()
	server.MarkReady()

	e := echo.New()
	server.RegisterRoutes(e)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

// createStorage builds the unit of work factory and the customer
// repository for the configured backend. The memory backend is seeded
// with demo data before returning.
func createStorage(configs cmd.Config, logger *slog.Logger) (ports.UnitOfWorkFactory, ports.CustomerRepository) {
	if configs.StorageMode == "postgres" {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			configs.DBHost, configs.DBPort, configs.DBUser,
			configs.DBPassword, configs.DBName, configs.DBSslMode)

		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		if err := db.AutoMigrate(
			&orderrepo.OrderDTO{},
			&catalogrepo.ItemDTO{},
			&profilerepo.ProfileDTO{},
			&notificationrepo.NotificationDTO{},
			&customerrepo.CustomerDTO{},
			&customerrepo.ReviewDTO{},
		); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		logger.Info("storage ready", "mode", "postgres", "db", configs.DBName)
		return gormpg.NewGormUnitOfWorkFactory(db), customerrepo.NewGormCustomerRepository(db)
	}

	repos := memory.NewRepositories()
	if err := memory.Seed(context.Background(), repos, time.Now().UTC()); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	logger.Info("storage ready", "mode", "memory")
	return memory.NewUnitOfWorkFactory(repos), repos.Customers
}

// createSink connects the notification broker when configured.
func createSink(configs cmd.Config, logger *slog.Logger) ports.NotificationSink {
	if configs.AmqpURL == "" {
		return nil
	}

	sink, err := rabbitmq.NewNotificationSink(configs.AmqpURL, configs.AmqpExchange)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}

	logger.Info("notification sink ready", "exchange", configs.AmqpExchange)
	return sink
}

func getConfigs() cmd.Config {
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:     envOrDefault("HTTP_PORT", "8080"),
		StorageMode:  envOrDefault("STORAGE_MODE", "memory"),
		DBHost:       os.Getenv("DB_HOST"),
		DBPort:       os.Getenv("DB_PORT"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		DBSslMode:    envOrDefault("DB_SSLMODE", "disable"),
		AmqpURL:      os.Getenv("AMQP_URL"),
		AmqpExchange: envOrDefault("AMQP_EXCHANGE", "storepanel.notifications"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
