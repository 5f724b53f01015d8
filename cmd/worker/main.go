// cmd/worker/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/marketmind/marketmind-backend/internal/config"
	"github.com/marketmind/marketmind-backend/internal/db"
	"github.com/marketmind/marketmind-backend/internal/logger"
	"github.com/marketmind/marketmind-backend/internal/model"
	"github.com/marketmind/marketmind-backend/internal/queue"
	"github.com/marketmind/marketmind-backend/internal/repository"
)

// The worker drains generation events from RabbitMQ into the
// generation_events table, which backs the analytics feed.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	database, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	eventRepo := &repository.EventRepository{DB: database}

	conn, err := amqp.Dial(cfg.Queue.URL)
	if err != nil {
		log.Fatal("failed to connect to RabbitMQ", zap.Error(err))
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("failed to open channel", zap.Error(err))
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		cfg.Queue.Name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		log.Fatal("failed to declare queue", zap.Error(err))
	}

	msgs, err := ch.Consume(
		q.Name,
		"",
		false, // autoAck = false for reliability
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Fatal("failed to register consumer", zap.Error(err))
	}

	log.Info("worker running, waiting for events", zap.String("queue", q.Name))

	for d := range msgs {
		handleDelivery(eventRepo, ch, q.Name, log, d)
	}
}

const maxEventRetries = 3

// republisher matches amqp.Channel's Publish method.
type republisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// handleDelivery records one event. A failed insert is republished with an
// incremented x-retry-count header and the original delivery acked, so a
// poison event is retried a bounded number of times instead of looping on
// broker requeue. After maxEventRetries the event is dropped.
func handleDelivery(repo repository.EventRepositoryInterface, ch republisher, queueName string, log *zap.Logger, d amqp.Delivery) {
	var event queue.Event
	if err := json.Unmarshal(d.Body, &event); err != nil {
		log.Warn("invalid event payload, dropping", zap.Error(err))
		d.Ack(false)
		return
	}

	if err := recordEvent(repo, event); err != nil {
		retries := retryCount(d.Headers)
		log.Error("failed to record event",
			zap.String("eventId", event.EventID),
			zap.Int("retries", retries),
			zap.Error(err),
		)

		if retries+1 >= maxEventRetries {
			log.Warn("dropping event after repeated failures",
				zap.String("eventId", event.EventID),
			)
			d.Ack(false)
			return
		}

		pubErr := ch.Publish("", queueName, false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Headers:      amqp.Table{"x-retry-count": int32(retries + 1)},
			Body:         d.Body,
		})
		if pubErr != nil {
			// Broker requeue as a last resort; the count is lost but the
			// event is not.
			log.Error("failed to requeue event", zap.Error(pubErr))
			d.Nack(false, true)
			return
		}
	}

	d.Ack(false)
}

func retryCount(headers amqp.Table) int {
	switch v := headers["x-retry-count"].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	}
	return 0
}

func recordEvent(repo repository.EventRepositoryInterface, event queue.Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return repo.Record(ctx, &model.GenerationEvent{
		EventID:    event.EventID,
		Kind:       event.Kind,
		RecordID:   event.RecordID,
		DurationMS: event.DurationMS,
		Cached:     event.Cached,
		CreatedAt:  event.CreatedAt,
	})
}
