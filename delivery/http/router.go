package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shivam970806/VMS/pkg/api"
	"github.com/shivam970806/VMS/pkg/jwt"
	"github.com/shivam970806/VMS/pkg/logger"
	"github.com/shivam970806/VMS/pkg/metrics"
)

type Router struct {
	VendorHandler        *VendorHandler
	PurchaseOrderHandler *PurchaseOrderHandler
	PerformanceHandler   *PerformanceHandler
	HealthHandler        *HealthHandler
	JWTClient            jwt.JWTClient
	AppLogger            logger.LoggerInterface
	// Metrics and RateLimiter are optional
	Metrics     *metrics.Metrics
	RateLimiter *RateLimiter
}

func NewRouter(
	vendorHandler *VendorHandler,
	purchaseOrderHandler *PurchaseOrderHandler,
	performanceHandler *PerformanceHandler,
	healthHandler *HealthHandler,
	jwtClient jwt.JWTClient,
	appLogger logger.LoggerInterface,
) *Router {
	return &Router{
		VendorHandler:        vendorHandler,
		PurchaseOrderHandler: purchaseOrderHandler,
		PerformanceHandler:   performanceHandler,
		HealthHandler:        healthHandler,
		JWTClient:            jwtClient,
		AppLogger:            appLogger,
	}
}

// writes wraps write routes with the rate limiter when one is configured
func (r *Router) writes(router chi.Router) chi.Router {
	if r.RateLimiter == nil {
		return router
	}
	return router.With(r.RateLimiter.Middleware)
}

func (r *Router) SetupRoutes() http.Handler {
	router := chi.NewRouter()

	// Add middleware
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.Heartbeat("/ping"))
	router.Use(LoggingMiddleware(r.AppLogger))
	if r.Metrics != nil {
		router.Use(r.Metrics.Middleware)
		router.Method(http.MethodGet, "/metrics", r.Metrics.Handler())
	}

	// Health check endpoint
	router.Get("/health", r.HealthHandler.HealthCheckHandler)

	router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(JWTMiddleware(r.JWTClient, r.AppLogger, api.New()))

		v1.Route("/vendors", func(vendors chi.Router) {
			r.writes(vendors).Post("/", r.VendorHandler.CreateVendorHandler)
			vendors.Get("/", r.VendorHandler.ListVendorsHandler)
			vendors.Get("/{vendorCode}", r.VendorHandler.GetVendorHandler)
			r.writes(vendors).Put("/{vendorCode}", r.VendorHandler.UpdateVendorHandler)
			r.writes(vendors).Delete("/{vendorCode}", r.VendorHandler.DeleteVendorHandler)
			vendors.Get("/{vendorCode}/performance", r.PerformanceHandler.GetPerformanceHandler)
			vendors.Get("/{vendorCode}/performance/history", r.PerformanceHandler.ListHistoryHandler)
		})

		v1.Route("/purchase_orders", func(orders chi.Router) {
			r.writes(orders).Post("/", r.PurchaseOrderHandler.CreateOrderHandler)
			orders.Get("/", r.PurchaseOrderHandler.ListOrdersHandler)
			orders.Get("/{poNumber}", r.PurchaseOrderHandler.GetOrderHandler)
			r.writes(orders).Put("/{poNumber}", r.PurchaseOrderHandler.UpdateOrderHandler)
			r.writes(orders).Delete("/{poNumber}", r.PurchaseOrderHandler.DeleteOrderHandler)
			r.writes(orders).Post("/{poNumber}/acknowledge", r.PurchaseOrderHandler.AcknowledgeOrderHandler)
		})
	})

	return router
}
