package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/m04kA/SMC-KartingService/internal/config"
	"github.com/m04kA/SMC-KartingService/internal/integrations/notifier"
	"github.com/m04kA/SMC-KartingService/pkg/logger"
)

// Воркер уведомлений: читает события о подтверждённых бронированиях
// и формирует квитанции для участников. Доставка писем вынесена за пределы сервиса,
// здесь квитанция пишется в лог.
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if !cfg.RabbitMQ.Enabled {
		log.Fatal("RabbitMQ is disabled in config, nothing to consume")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handler := func(_ context.Context, event *notifier.ReservationConfirmedEvent) error {
		log.Info("Receipt for reservation id=%d to %s:\n%s",
			event.ReservationID, strings.Join(event.ParticipantEmails, ", "), notifier.FormatReceipt(event))
		return nil
	}

	consumer := notifier.NewConsumer(
		cfg.RabbitMQ.URL,
		cfg.RabbitMQ.Queue,
		time.Duration(cfg.RabbitMQ.ReconnectDelay)*time.Second,
		handler,
		log,
	)

	log.Info("Starting notifier worker (queue=%s)", cfg.RabbitMQ.Queue)
	if err := consumer.Run(ctx); err != nil {
		log.Error("Notifier worker stopped with error: %v", err)
	}
	log.Info("Notifier worker stopped")
}
