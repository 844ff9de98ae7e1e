package cart

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"tiffin/internal/cart/controller"
	"tiffin/internal/cart/repository"
	"tiffin/internal/cart/service"
)

type Module struct {
	Controller *controller.CartController
	Store      *service.CartStore
}

func NewModule(client *redis.Client, resolver controller.ItemResolver, logger *zap.Logger) *Module {
	repo := repository.NewRedisCartRepository(client)
	store := service.NewCartStore(repo, logger)

	return &Module{
		Controller: controller.NewCartController(store, resolver, logger),
		Store:      store,
	}
}
