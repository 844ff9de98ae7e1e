package menu

import (
	"database/sql"

	"tiffin/internal/menu/controller"
	"tiffin/internal/menu/repository"
	"tiffin/internal/menu/service"

	"go.uber.org/zap"
)

type Module struct {
	Controller *controller.MenuController
	Service    *service.MenuService
}

func NewModule(db *sql.DB, logger *zap.Logger) *Module {
	repo := repository.NewMySQLRepository(db)
	svc := service.NewService(repo)

	return &Module{
		Controller: controller.NewMenuController(svc, logger),
		Service:    svc,
	}
}
