package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ads-billing/internal/biztime"
	"ads-billing/internal/clients/kafka"
	"ads-billing/internal/config"
	"ads-billing/internal/jobs"
	"ads-billing/internal/jobs/workers"
	"ads-billing/internal/observability"
	"ads-billing/internal/store"

	"github.com/hibiken/asynq"
)

const relayInterval = 10 * time.Second

func main() {
	logger := observability.NewLogger()
	defer logger.Sync()
	ctx := context.Background()

	logger.Info(ctx, "Starting background worker server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	loc, err := time.LoadLocation(cfg.Billing.Timezone)
	if err != nil {
		log.Fatalf("failed to load billing timezone: %v", err)
	}
	clock := biztime.MustClock(cfg.Billing.Timezone)

	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer dataStore.Close()

	producer := kafka.NewProducer(kafka.ProducerConfig{
		Brokers: cfg.Kafka.BrokerList(),
		Topic:   cfg.Kafka.Topic,
	}, logger)
	defer producer.Close()

	sweepWorker := workers.NewSweepWorker(&dataStore, clock, logger)
	relayWorker := workers.NewRelayWorker(&dataStore, producer, cfg.Billing.RelayBatchSize, logger)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				jobs.QueueDefault: 2,
				jobs.QueueRelay:   2,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed", task.Type()), err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Logger:         &asynqLogger{logger: logger},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeDailyReset, sweepWorker.ProcessDailyResetTask)
	mux.HandleFunc(jobs.TypeExpireSchedules, sweepWorker.ProcessExpireSchedulesTask)
	mux.HandleFunc(jobs.TypeRelayMeteringEvents, relayWorker.ProcessRelayTask)

	// Sweeps run just after midnight in the billing timezone.
	scheduler := asynq.NewScheduler(
		redisOpt,
		&asynq.SchedulerOpts{
			Location: loc,
			Logger:   &asynqLogger{logger: logger},
		},
	)

	periodic := []struct {
		cron string
		task *asynq.Task
	}{
		{cron: "1 0 * * *", task: jobs.NewDailyResetTask()},
		{cron: "5 0 * * *", task: jobs.NewExpireSchedulesTask()},
		{cron: fmt.Sprintf("@every %s", relayInterval), task: jobs.NewRelayMeteringEventsTask(relayInterval)},
	}
	for _, p := range periodic {
		if _, err := scheduler.Register(p.cron, p.task); err != nil {
			log.Fatalf("failed to register %s: %v", p.task.Type(), err)
		}
	}

	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Shutdown()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", cfg.Redis.Addr()))
		if err := srv.Run(mux); err != nil {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
	os.Exit(1)
}
