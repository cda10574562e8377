package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/twosvc/notification-service/internal/config"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderNotifier interface {
	SendOrderNotificationByOrderID(ctx context.Context, orderID int64) (string, error)
	SendOrderStatusChangeNotification(ctx context.Context, orderID int64, newStatus int) (string, error)
	SendOrderDetailsNotification(ctx context.Context, orderID int64) (string, error)
	SendBulkNotification(ctx context.Context, userID int64, message string) (string, error)
}

// kafkaHandler слушает события заказов от сервиса A и превращает их
// в уведомления. Неразобранные и необработанные события уходят в DLQ.
type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	notifier OrderNotifier
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, notifier OrderNotifier) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		notifier: notifier,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			} else {
				h.logger.Error("failed to fetch message", slog.Any("error", err))
				continue
			}
		}

		if err := h.handleEvent(ctx, m); err != nil {
			h.logger.Error("failed to handle event", slog.Any("error", err))
			eventsFailed.Inc()

			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			eventsDLQ.Inc()
		} else {
			eventsProcessed.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			h.logger.Error("failed to commit message", slog.Any("error", err))
			commitErrors.Inc()
		}
	}
}

func (h *kafkaHandler) handleEvent(ctx context.Context, m kafka.Message) error {
	var event OrderEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid event data: %w", err)
	}

	var result string
	var err error

	switch event.Type {
	case EventOrderProcessed:
		result, err = h.notifier.SendOrderNotificationByOrderID(ctx, event.OrderID)
	case EventStatusChanged:
		result, err = h.notifier.SendOrderStatusChangeNotification(ctx, event.OrderID, event.NewStatus)
	case EventOrderDetails:
		result, err = h.notifier.SendOrderDetailsNotification(ctx, event.OrderID)
	case EventUserMessage:
		result, err = h.notifier.SendBulkNotification(ctx, event.UserID, event.Message)
	}

	if err != nil {
		return fmt.Errorf("failed to send notification for %s event: %w", event.Type, err)
	}

	h.logger.Debug("event handled", slog.String("type", event.Type), slog.String("result", result))
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
