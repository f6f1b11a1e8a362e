package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"amazing-hunting/internal/service"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	vacancies service.VacancyService
	health    HealthChecker
	logger    *logrus.Logger
	metrics   *metrics
}

func NewHandler(vacancies service.VacancyService, health HealthChecker, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{
		vacancies: vacancies,
		health:    health,
		logger:    logger,
		metrics:   newMetrics(),
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestLogger(h.logger), h.metrics.middleware(), corsMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello world!")
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{})))

	api := router.Group("/api")
	{
		api.GET("/vacancies", h.listVacancies)
		api.POST("/vacancies", h.createVacancy)
		api.GET("/vacancies/:id", h.getVacancy)
		api.POST("/vacancies/:id", h.updateVacancy)
		api.DELETE("/vacancies/:id", h.deleteVacancy)
		api.GET("/health", h.checkHealth)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (h *Handler) checkHealth(c *gin.Context) {
	if h.health != nil {
		if err := h.health.PingContext(c.Request.Context()); err != nil {
			h.log(c).WithError(err).Warn("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"ok": "ok"})
}
