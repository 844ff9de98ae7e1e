package consumer

import (
	"context"
	"encoding/json"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"tiffin/internal/domain"
	"tiffin/internal/dto"
	"tiffin/internal/infrastructure/rabbitmq"
)

// Sink receives reconciled snapshots; in production it is the order tracker.
type Sink interface {
	ApplySnapshot(pushed domain.Order)
}

// PushConsumer is the sole consumer of the authoritative push channel. It
// deserializes full order snapshots and hands them to the tracker, which
// resolves timer/push races silently by precedence.
type PushConsumer struct {
	client *rabbitmq.Client
	queue  string
	sink   Sink
	logger *zap.Logger
}

func NewPushConsumer(client *rabbitmq.Client, queue string, sink Sink, logger *zap.Logger) *PushConsumer {
	return &PushConsumer{
		client: client,
		queue:  queue,
		sink:   sink,
		logger: logger,
	}
}

// Run consumes until ctx is cancelled or the channel closes.
func (c *PushConsumer) Run(ctx context.Context) error {
	if err := c.client.DeclareQueue(c.queue); err != nil {
		return err
	}

	msgs, err := c.client.Consume(c.queue, "tiffin-order-sync")
	if err != nil {
		return err
	}

	c.logger.Info("push consumer started", zap.String("queue", c.queue))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			c.handle(msg)
		}
	}
}

func (c *PushConsumer) handle(msg amqp.Delivery) {
	var snap dto.OrderSnapshot
	if err := json.Unmarshal(msg.Body, &snap); err != nil {
		c.logger.Warn("discarding malformed snapshot", zap.Error(err))
		_ = msg.Nack(false, false)
		return
	}

	c.sink.ApplySnapshot(snap.ToDomain())
	_ = msg.Ack(false)
}
