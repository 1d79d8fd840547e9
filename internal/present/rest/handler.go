package rest

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/totegamma/logistics-backend/internal/present/rest/presenter"
	"github.com/totegamma/logistics-backend/internal/service"
	"github.com/totegamma/logistics-backend/internal/usecase"
)

type Config struct {
	MaxPageSize int
}

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Handler struct {
	config   Config
	port     *usecase.PortUsecase
	vessel   *usecase.VesselUsecase
	customer *usecase.PartyUsecase
	vendor   *usecase.PartyUsecase
	signal   *service.SignalService
	logger   *zap.Logger
	validate *validator.Validate
	health   map[string]HealthCheck
}

func NewHandler(
	config Config,
	port *usecase.PortUsecase,
	vessel *usecase.VesselUsecase,
	customer *usecase.PartyUsecase,
	vendor *usecase.PartyUsecase,
	signal *service.SignalService,
	logger *zap.Logger,
) *Handler {
	if config.MaxPageSize <= 0 {
		config.MaxPageSize = 100
	}
	return &Handler{
		config:   config,
		port:     port,
		vessel:   vessel,
		customer: customer,
		vendor:   vendor,
		signal:   signal,
		logger:   logger,
		validate: newValidator(),
		health:   map[string]HealthCheck{},
	}
}

// AddHealthCheck registers a dependency probed by /healthz.
func (h *Handler) AddHealthCheck(name string, check HealthCheck) {
	h.health[name] = check
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.handleHealth)

	e.GET("/ports", h.handlePortList)
	e.GET("/ports/export", h.handlePortExport)
	e.GET("/ports/:id", h.handlePortGet)
	e.POST("/ports", h.handlePortCreate)
	e.PUT("/ports/:id", h.handlePortUpdate)

	e.GET("/vessels", h.handleVesselList)
	e.GET("/vessels/export", h.handleVesselExport)
	e.GET("/vessels/:id", h.handleVesselGet)
	e.POST("/vessels", h.handleVesselCreate)
	e.PUT("/vessels/:id", h.handleVesselUpdate)

	h.registerParty(e.Group("/customers"), h.customer)
	h.registerParty(e.Group("/vendors"), h.vendor)

	if h.signal != nil {
		e.GET("/realtime", h.handleRealtime)
	}
}

func (h *Handler) handleHealth(c echo.Context) error {
	ctx := c.Request().Context()

	status := http.StatusOK
	checks := make(map[string]string, len(h.health))
	for name, check := range h.health {
		if err := check(ctx); err != nil {
			h.logger.Warn("health check failed", zap.String("dependency", name), zap.Error(err))
			checks[name] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	return c.JSON(status, presenter.Envelope{Data: echo.Map{
		"status": http.StatusText(status),
		"checks": checks,
	}})
}
