package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rentloop/internal/handler/api"
	"rentloop/internal/handler/middleware"
	"rentloop/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	userHandler *api.UserHandler,
	bookingHandler *api.BookingHandler,
	calendarHandler *api.CalendarHandler,
	itemHandler *api.ItemHandler,
	sweepHandler *api.SweepHandler,
	authMiddleware *middleware.AuthMiddleware,
	gatewayAuth *middleware.GatewayAuth,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, userHandler, bookingHandler, calendarHandler, itemHandler, sweepHandler, authMiddleware, gatewayAuth)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	userHandler *api.UserHandler,
	bookingHandler *api.BookingHandler,
	calendarHandler *api.CalendarHandler,
	itemHandler *api.ItemHandler,
	sweepHandler *api.SweepHandler,
	authMiddleware *middleware.AuthMiddleware,
	gatewayAuth *middleware.GatewayAuth,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		auth.Use(gatewayAuth.Require())
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/identify", Handler: userHandler.Identify},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/me", Handler: userHandler.Me},
				{Method: http.MethodPut, Path: "/me", Handler: userHandler.UpdateMe},
			})
		}

		items := apiGroup.Group("/items")
		items.Use(authMiddleware.RequireAuth())
		{
			addRoutes(items, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: itemHandler.GetItem},
				{Method: http.MethodGet, Path: "/:id/blocked-dates", Handler: itemHandler.BlockedDates},
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: itemHandler.ListItemBookings},
			})
		}

		calendar := apiGroup.Group("/calendar")
		calendar.Use(authMiddleware.RequireAuth())
		{
			addRoutes(calendar, []route{
				{Method: http.MethodPost, Path: "/sessions", Handler: calendarHandler.OpenSession},
				{Method: http.MethodPost, Path: "/sessions/:id/navigate", Handler: calendarHandler.Navigate},
				{Method: http.MethodPost, Path: "/sessions/:id/select", Handler: calendarHandler.SelectDate},
				{Method: http.MethodPost, Path: "/parse-range", Handler: calendarHandler.ParseRange},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodGet, Path: "/:id/reminders", Handler: bookingHandler.ListReminders},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: bookingHandler.Confirm},
				{Method: http.MethodPost, Path: "/:id/decline", Handler: bookingHandler.Decline},
				{Method: http.MethodPost, Path: "/:id/mark-paid", Handler: bookingHandler.MarkPaid},
				{Method: http.MethodPost, Path: "/:id/cancel-unpaid", Handler: bookingHandler.CancelUnpaid},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.Cancel},
				{Method: http.MethodPost, Path: "/:id/confirm-refund", Handler: bookingHandler.ConfirmRefund},
				{Method: http.MethodPost, Path: "/:id/paid-notice", Handler: bookingHandler.PaidNotice},
			})
		}

		sweeps := apiGroup.Group("/sweeps")
		sweeps.Use(gatewayAuth.Require())
		{
			addRoutes(sweeps, []route{
				{Method: http.MethodPost, Path: "/payment-reminders", Handler: sweepHandler.PaymentReminders},
				{Method: http.MethodPost, Path: "/auto-cancel", Handler: sweepHandler.AutoCancel},
				{Method: http.MethodPost, Path: "/refund-reminders", Handler: sweepHandler.RefundReminders},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
