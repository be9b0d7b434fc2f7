package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/eventt-hub/event-manager/internal/handler"
	"github.com/eventt-hub/event-manager/internal/log"
	"github.com/eventt-hub/event-manager/internal/server"
	"github.com/eventt-hub/event-manager/internal/tracing"
	"github.com/eventt-hub/event-manager/pkg/attendance"
	"github.com/eventt-hub/event-manager/pkg/config"
	"github.com/eventt-hub/event-manager/pkg/event"
	"github.com/eventt-hub/event-manager/pkg/notification"
	"github.com/eventt-hub/event-manager/pkg/storage"
	"github.com/eventt-hub/event-manager/pkg/user"
	"github.com/go-mail/mail"
	amqp "github.com/rabbitmq/amqp091-go"
)

func main() {
	logger := slog.New(log.New(slog.NewJSONHandler(os.Stdout, nil)))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Exiting", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg := config.NewConfig()

	if cfg.JaegerCollectorURL != "" {
		tp, err := tracing.NewTracerProvider("event-manager", cfg.JaegerCollectorURL)
		if err != nil {
			return err
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Error("Failed to shut down tracer provider", "error", err)
			}
		}()
	}

	if err := handler.RegisterValidation(); err != nil {
		return err
	}

	db, err := storage.NewDatabase(cfg.Postgresql, logger)
	if err != nil {
		return err
	}

	redisClient, err := storage.NewRedis(cfg.Redis.Host, cfg.Redis.Port)
	if err != nil {
		return err
	}
	cache := storage.NewCache(redisClient)

	connection, err := amqp.Dial(cfg.RabbitMq.GetUrl())
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %v", err)
	}
	defer func() {
		if err := connection.Close(); err != nil {
			logger.Error("Failed to close RabbitMQ connection", "error", err)
		}
	}()

	publisher, err := notification.NewPublisher(connection)
	if err != nil {
		return err
	}

	userRepository := user.NewRepository(db)
	userService := user.NewService(userRepository)
	userHandler := user.NewHandler(userService)

	eventRepository := event.NewRepository(db)
	attendanceRepository := attendance.NewRepository(db)
	eventService := event.NewService(logger, eventRepository, attendanceRepository, cache, publisher)
	eventHandler := event.NewHandler(eventService)

	consumerChannel, err := connection.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %v", err)
	}
	dialer := mail.NewDialer(cfg.Smtp.Host, cfg.Smtp.Port, cfg.Smtp.Username, cfg.Smtp.Password)
	consumer := notification.NewJoinConsumer(consumerChannel, userService, eventService, dialer, cfg.Smtp.From, logger)
	if err := consumer.Consume(); err != nil {
		return err
	}

	r := server.GetEngine(logger, cfg, eventHandler, userHandler)
	return r.Run(":" + cfg.ServerPort)
}
