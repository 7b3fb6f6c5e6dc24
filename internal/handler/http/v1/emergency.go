package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/ciudad_activa/internal/models"
)

// @Summary List emergencies
// @Description Get emergencies, newest first, with optional filters
// @Tags Emergencies
// @Produce json
// @Param province query string false "Province"
// @Param municipality query string false "Municipality"
// @Param status query string false "Status" Enums(pending, in_progress, resolved, cancelled)
// @Param priority query string false "Priority" Enums(low, medium, high, critical)
// @Success 200 {array} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies [get]
func (h *Handler) listEmergencies(c *gin.Context) {
	var query ListEmergenciesQuery
	log := h.logger.WithField("method", "listEmergencies")

	if !h.bindQuery(c, log, &query) {
		return
	}

	emergencies, err := h.emergencyService.ListEmergencies(c.Request.Context(), models.EmergencyFilter{
		Province:     query.Province,
		Municipality: query.Municipality,
		Status:       query.Status,
		Priority:     query.Priority,
	})
	if err != nil {
		h.respondError(c, log, err, "emergency not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToEmergencyResponses(emergencies))
}

// @Summary Report an emergency
// @Description Register a new emergency. Priority defaults to high.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Param emergency body CreateEmergencyRequest true "Emergency creation request"
// @Success 201 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies [post]
func (h *Handler) createEmergency(c *gin.Context) {
	var input CreateEmergencyRequest
	log := h.logger.WithField("method", "createEmergency")

	if !h.bindJSON(c, log, &input) {
		return
	}

	model := DTOToEmergencyModel(input)
	if err := h.emergencyService.CreateEmergency(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "emergency not found")
		return
	}
	c.JSON(http.StatusCreated, ModelToEmergencyResponse(model))
}

// @Summary Update emergency status
// @Description Change emergency status and optionally the response text. Requires API key when keys are configured.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Emergency ID"
// @Param status body UpdateEmergencyStatusRequest true "New status"
// @Success 200 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid emergency ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Emergency not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/{id}/status [put]
func (h *Handler) updateEmergencyStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "emergency")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateEmergencyStatus").WithField("id", id)

	var input UpdateEmergencyStatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	emergency, err := h.emergencyService.UpdateEmergencyStatus(c.Request.Context(), id, input.Status, input.Response)
	if err != nil {
		h.respondError(c, log, err, "emergency not found")
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyResponse(emergency))
}
