package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/ciudad_activa/internal/catalog"
	"github.com/shenikar/ciudad_activa/internal/config"
	"github.com/shenikar/ciudad_activa/internal/models"
	"github.com/shenikar/ciudad_activa/internal/service"
	"github.com/sirupsen/logrus"
)

// Services - набор сервисов, которые обслуживает HTTP слой
type Services struct {
	Incidents     service.IncidentService
	Emergencies   service.EmergencyService
	Notifications service.NotificationService
	Statistics    service.StatisticsService
}

// HealthCheck проверяет доступность одной зависимости
type HealthCheck func(ctx context.Context) error

type Handler struct {
	incidentService     service.IncidentService
	emergencyService    service.EmergencyService
	notificationService service.NotificationService
	statisticsService   service.StatisticsService
	healthChecks        map[string]HealthCheck
	logger              *logrus.Logger
	validate            *validator.Validate
	cfg                 *config.Config
}

func NewHandler(services Services, healthChecks map[string]HealthCheck, logger *logrus.Logger, cfg *config.Config) *Handler {
	validate := validator.New()
	// Тип инцидента должен существовать в справочнике
	_ = validate.RegisterValidation("incident_type", func(fl validator.FieldLevel) bool {
		_, ok := catalog.Lookup(fl.Field().String())
		return ok
	})

	return &Handler{
		incidentService:     services.Incidents,
		emergencyService:    services.Emergencies,
		notificationService: services.Notifications,
		statisticsService:   services.Statistics,
		healthChecks:        healthChecks,
		logger:              logger,
		validate:            validate,
		cfg:                 cfg,
	}
}

// bindJSON разбирает и валидирует тело запроса, отвечая 400 при ошибке
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return h.validateStruct(c, log, dst)
}

// bindQuery разбирает и валидирует параметры строки запроса
func (h *Handler) bindQuery(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return false
	}
	return h.validateStruct(c, log, dst)
}

func (h *Handler) validateStruct(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError отображает ошибку сервиса в HTTP статус
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, service.ErrValidation):
		log.WithError(err).Warn("Request rejected by service validation")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
