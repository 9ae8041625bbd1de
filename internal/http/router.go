package api

import (
	"log"
	stdhttp "net/http"

	intconfig "chauffeur-admin/internal/config"
	h "chauffeur-admin/internal/http/handlers"
	"chauffeur-admin/internal/http/middleware"
	"chauffeur-admin/internal/metrics"

	"github.com/gin-gonic/gin"
)

// NewRouter wires every route onto a fresh gin engine. m may be nil, in
// which case /metrics is not served.
func NewRouter(env intconfig.Env, hs *h.Handlers, m *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))
	if m != nil {
		r.Use(m.Middleware())
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/routes", h.ListRoutes)
		api.GET("/dashboard", hs.Dashboard)

		// Bookings
		bookings := api.Group("/bookings")
		hs.Bookings().Mount(bookings)
		bookings.GET("/:id/invoice", hs.GetBookingInvoicePDF)

		// Customers
		hs.Customers().Mount(api.Group("/customers"))

		// Drivers
		drivers := api.Group("/drivers")
		drivers.GET("/stats", hs.DriverStats)
		hs.Drivers().Mount(drivers)

		// Fleet
		vehicles := api.Group("/vehicles")
		vehicles.GET("/stats", hs.FleetStats)
		hs.Vehicles().Mount(vehicles)

		// Saved routes
		routes := api.Group("/saved-routes")
		routes.GET("/stats", hs.RouteStats)
		hs.Routes().Mount(routes)

		// Financials
		hs.Transactions().Mount(api.Group("/transactions"))
		hs.Invoices().Mount(api.Group("/invoices"))
		financials := api.Group("/financials")
		financials.GET("/summary", hs.FinancialSummary)
		financials.GET("/report", hs.GetFinancialReportPDF)

		// Notifications
		notifications := api.Group("/notifications")
		notifications.GET("", hs.ListNotifications)
		notifications.GET("/ws", hs.NotificationStream)
	}

	h.SetRouter(r)
	return r
}
