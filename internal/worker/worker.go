package worker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"storefront/internal/config"
	"storefront/internal/events"
	"storefront/internal/logger"
	"storefront/internal/worker/processors"

	"github.com/segmentio/kafka-go"
)

type Worker struct {
	config    *config.Config
	logger    *logger.Logger
	reader    *kafka.Reader
	processor *processors.OrderProcessor
}

func New(cfg *config.Config, logger *logger.Logger) *Worker {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        strings.Split(cfg.KafkaBrokers, ","),
		GroupID:        "storefront-worker",
		Topic:          events.Topic,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
	})

	processor := processors.NewOrderProcessor(logger)

	return &Worker{
		config:    cfg,
		logger:    logger,
		reader:    reader,
		processor: processor,
	}
}

func (w *Worker) Start() {
	w.logger.Info("Worker started, listening for order events...")

	for {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		message, err := w.reader.ReadMessage(ctx)
		cancel()

		if err != nil {
			// ReadMessage reports io.EOF once the reader is closed.
			if errors.Is(err, io.EOF) {
				w.logger.Info("Reader closed, worker loop exiting")
				return
			}
			w.logger.Error("Failed to read message: %v", err)
			continue
		}

		w.logger.Debug("Received message: %s", string(message.Value))

		var event events.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			w.logger.Error("Failed to parse event: %v", err)
			continue
		}

		if err := w.processor.Process(event); err != nil {
			w.logger.Error("Failed to process event: %v", err)
			continue
		}

		w.logger.Debug("Event processed successfully")
	}
}

func (w *Worker) Stop() {
	w.logger.Info("Stopping worker...")
	w.reader.Close()
}
