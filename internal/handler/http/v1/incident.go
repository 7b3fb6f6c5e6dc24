package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/ciudad_activa/internal/catalog"
	"github.com/shenikar/ciudad_activa/internal/models"
)

// @Summary List incident types
// @Description Get the static catalog of incident types
// @Tags Catalog
// @Produce json
// @Success 200 {array} IncidentTypeResponse
// @Router /incident-types [get]
func (h *Handler) listIncidentTypes(c *gin.Context) {
	types := catalog.All()
	responses := make([]IncidentTypeResponse, len(types))
	for i, t := range types {
		responses[i] = ModelToIncidentTypeResponse(t)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Create a new incident
// @Description Report a new incident. Status is always pending.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if !h.bindJSON(c, log, &input) {
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get a list of incidents
// @Description Get incidents, newest first, with optional filters
// @Tags Incidents
// @Produce json
// @Param status query string false "Status filter" Enums(pending, in_progress, resolved, rejected)
// @Param type query string false "Incident type id"
// @Param category query string false "Incident category"
// @Param priority query string false "Priority filter" Enums(low, medium, high, urgent)
// @Param limit query int false "Max number of items, 0 for no limit"
// @Param offset query int false "Number of items to skip"
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	var query ListIncidentsQuery
	log := h.logger.WithField("method", "listIncidents")

	if !h.bindQuery(c, log, &query) {
		return
	}

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), models.IncidentQuery{
		Status:   query.Status,
		TypeID:   query.Type,
		Category: query.Category,
		Priority: query.Priority,
		Limit:    query.Limit,
		Offset:   query.Offset,
	})
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID. Each call counts as a view.
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, ok := parseUUIDParam(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Vote for an incident
// @Description Change incident votes by one. Votes never go below zero.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Param vote body VoteRequest false "Vote direction, defaults to up"
// @Success 200 {object} VoteResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/vote [post]
func (h *Handler) voteIncident(c *gin.Context) {
	id, ok := parseUUIDParam(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "voteIncident").WithField("id", id)

	var input VoteRequest
	// Пустое тело означает голос "за"
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !h.validateStruct(c, log, &input) {
		return
	}

	votes, err := h.incidentService.VoteIncident(c.Request.Context(), id, input.Direction != "down")
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, VoteResponse{ID: id, Votes: votes})
}

// @Summary Update incident status
// @Description Change the status of an incident. Requires API key when keys are configured.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param status body UpdateIncidentStatusRequest true "New status"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/status [put]
func (h *Handler) updateIncidentStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateIncidentStatus").WithField("id", id)

	var input UpdateIncidentStatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	incident, err := h.incidentService.UpdateIncidentStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Delete an incident
// @Description Permanently delete an incident. Requires API key when keys are configured.
// @Tags Incidents
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id, ok := parseUUIDParam(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.incidentService.DeleteIncident(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Find incidents near a point
// @Description Unresolved incidents within radius metres of the point
// @Tags Incidents
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query int false "Radius in metres (default 1000, max 50000)"
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/nearby [get]
func (h *Handler) nearbyIncidents(c *gin.Context) {
	var query NearbyQuery
	log := h.logger.WithField("method", "nearbyIncidents")

	if !h.bindQuery(c, log, &query) {
		return
	}

	incidents, err := h.incidentService.NearbyIncidents(c.Request.Context(), *query.Lat, *query.Lng, query.Radius)
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}
