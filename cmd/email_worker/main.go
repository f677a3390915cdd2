package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-signup/config"
	"github.com/oksasatya/go-ddd-signup/pkg/helpers"
	"github.com/oksasatya/go-ddd-signup/pkg/mailer"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-email-worker", cfg.Env, cfg.LogLevel)

	if !cfg.MailSendEnabled {
		logger.Warn("MAIL_SEND_ENABLED=false; email worker disabled (no real emails will be sent)")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQEmailQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	if !cfg.MailgunConfigured() {
		log.Fatal("Mailgun not configured")
	}

	consumer, msgs, err := helpers.NewRabbitConsumer(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue, 16)
	if err != nil {
		log.Fatalf("amqp consume: %v", err)
	}

	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker := &mailer.Worker{
		Transport: mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender),
		Logger:    logger,
		DedupeTTL: cfg.EmailDedupeTTL,
		Timeout:   15 * time.Second,
	}
	if err := helpers.PingRedis(ctx, rdb); err != nil {
		// Without Redis a redelivered job may be sent twice.
		helpers.LogError(logger, "redis unreachable; send dedupe disabled", err, nil)
	} else {
		worker.Redis = rdb
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for msg := range msgs {
			settle(msg, worker.Handle(ctx, msg.Body), logger)
		}
	}()

	helpers.LogInfo(logger, "email worker listening", logrus.Fields{"queue": cfg.RabbitMQEmailQueue})
	select {
	case <-stop:
	case <-done:
		logger.Warn("delivery channel closed")
	}
	logger.Info("shutting down...")
	cancel()
	// Closing the channel ends the delivery loop.
	consumer.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

// settle acks or nacks msg according to d.
func settle(msg amqp.Delivery, d mailer.Disposition, logger *logrus.Logger) {
	var err error
	switch d {
	case mailer.Ack:
		err = msg.Ack(false)
	case mailer.Reject:
		err = msg.Nack(false, false)
	default:
		err = msg.Nack(false, true)
	}
	if err != nil {
		helpers.LogError(logger, "settle delivery failed", err, logrus.Fields{"disposition": d.String()})
	}
}
