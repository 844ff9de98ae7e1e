package checkout

import (
	"go.uber.org/zap"

	"tiffin/internal/checkout/controller"
	"tiffin/internal/checkout/service"
	"tiffin/internal/checkout/usecase"
	"tiffin/internal/config"
)

type Module struct {
	Controller *controller.CheckoutController
}

func NewModule(
	carts usecase.CartSource,
	geocoder service.Geocoder,
	payments usecase.PaymentGateway,
	tracker usecase.OrderTracker,
	pricing config.PricingConfig,
	logger *zap.Logger,
) *Module {
	validator := service.NewValidator(geocoder)
	uc := usecase.NewPlaceOrderUseCase(carts, validator, payments, tracker, pricing, logger)

	return &Module{
		Controller: controller.NewCheckoutController(uc, logger),
	}
}
