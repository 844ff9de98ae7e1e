package order

import (
	"go.uber.org/zap"

	"tiffin/internal/config"
	"tiffin/internal/infrastructure/rabbitmq"
	"tiffin/internal/metrics"
	"tiffin/internal/order/consumer"
	"tiffin/internal/order/controller"
	"tiffin/internal/order/service"
)

type Module struct {
	Controller *controller.OrderController
	Tracker    *service.Tracker
	Consumer   *consumer.PushConsumer
}

func NewModule(cfg *config.Config, mq *rabbitmq.Client, logger *zap.Logger) *Module {
	tracker := service.NewTracker(cfg.Lifecycle, cfg.Pricing, logger, metrics.RecordTransition)

	return &Module{
		Controller: controller.NewOrderController(tracker, logger),
		Tracker:    tracker,
		Consumer:   consumer.NewPushConsumer(mq, cfg.RabbitMQ.SnapshotQueue, tracker, logger),
	}
}
