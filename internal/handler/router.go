package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-engine/internal/domain/actor"
	"booking-engine/internal/handler/api"
	"booking-engine/internal/handler/middleware"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Slots        *api.SlotHandler
	SlotLocks    *api.SlotLockHandler
	Appointments *api.AppointmentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, m, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		offerings := apiGroup.Group("/offerings")
		addRoutes(offerings, []route{
			{Method: http.MethodGet, Path: "/:id/slots", Handler: h.Slots.GetSlots},
			{Method: http.MethodGet, Path: "/:id/slots/check", Handler: h.Slots.CheckSlot, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
		})

		services := apiGroup.Group("/services")
		addRoutes(services, []route{
			{Method: http.MethodGet, Path: "/:id/slots", Handler: h.Slots.GetFamilySlots},
			{Method: http.MethodGet, Path: "/:id/nearby-dates", Handler: h.Slots.NearbyDates},
		})

		locks := apiGroup.Group("/slot-locks")
		locks.Use(authMiddleware.RequireAuth())
		addRoutes(locks, []route{
			{Method: http.MethodPost, Path: "", Handler: h.SlotLocks.Lock},
			{Method: http.MethodDelete, Path: "", Handler: h.SlotLocks.Unlock},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.SlotLocks.UnlockByID},
		})

		vendor := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(actor.RoleVendor)}
		admin := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(actor.RoleAdmin)}

		appointments := apiGroup.Group("/appointments")
		appointments.Use(authMiddleware.RequireAuth())
		addRoutes(appointments, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Appointments.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Appointments.Get},
			{Method: http.MethodGet, Path: "/:id/cancellation-preview", Handler: h.Appointments.CancellationPreview},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Appointments.Cancel},
			{Method: http.MethodPut, Path: "/:id/schedule", Handler: h.Appointments.Reschedule},
			{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Appointments.Confirm, Mw: vendor},
			{Method: http.MethodPost, Path: "/:id/payment", Handler: h.Appointments.RecordPayment, Mw: vendor},
			{Method: http.MethodPost, Path: "/:id/status", Handler: h.Appointments.OverrideStatus, Mw: admin},
		})
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
