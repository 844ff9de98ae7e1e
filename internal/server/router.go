package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	cartctrl "tiffin/internal/cart/controller"
	checkoutctrl "tiffin/internal/checkout/controller"
	"tiffin/internal/domain"
	"tiffin/internal/identity"
	menuctrl "tiffin/internal/menu/controller"
	"tiffin/internal/metrics"
	orderctrl "tiffin/internal/order/controller"
)

func NewRouter(
	menuCtrl *menuctrl.MenuController,
	cartCtrl *cartctrl.CartController,
	checkoutCtrl *checkoutctrl.CheckoutController,
	orderCtrl *orderctrl.OrderController,
	jwtSecret string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/vendors", menuCtrl.ListVendors)
		r.Get("/vendors/{vendorId}/menu", menuCtrl.GetVendorMenu)

		r.Group(func(r chi.Router) {
			r.Use(identity.Middleware(jwtSecret, logger))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartCtrl.GetCart)
				r.Delete("/", cartCtrl.Clear)
				r.Post("/items", cartCtrl.AddItem)
				r.Patch("/items/{itemId}", cartCtrl.UpdateQuantity)
				r.Post("/items/{itemId}/decrease", cartCtrl.Decrease)
				r.Delete("/items/{itemId}", cartCtrl.RemoveItem)
			})

			r.With(identity.RequireRole(domain.RoleCustomer, domain.RoleAdmin)).
				Post("/checkout", checkoutCtrl.Checkout)

			r.Route("/orders/{orderId}", func(r chi.Router) {
				r.Get("/", orderCtrl.GetOrder)
				r.Get("/position", orderCtrl.GetPosition)
				r.With(identity.RequireRole(domain.RoleCustomer, domain.RoleAdmin)).
					Post("/cancel", orderCtrl.CancelOrder)
				r.Delete("/", orderCtrl.CloseOrder)
			})
		})
	})

	return r
}
