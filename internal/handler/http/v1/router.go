package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Административные маршруты закрываются ключом, только если ключи заданы
	admin := []gin.HandlerFunc{}
	if len(h.cfg.APIKeys) > 0 {
		admin = append(admin, APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	withAdmin := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, admin...), handler)
	}

	api.GET("/incident-types", h.listIncidentTypes)

	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.POST("", h.createIncident)
		incidents.GET("/nearby", h.nearbyIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/vote", h.voteIncident)
		incidents.PUT("/:id/status", withAdmin(h.updateIncidentStatus)...)
		incidents.DELETE("/:id", withAdmin(h.deleteIncident)...)
	}

	emergencies := api.Group("/emergencies")
	{
		emergencies.GET("", h.listEmergencies)
		emergencies.POST("", h.createEmergency)
		emergencies.PUT("/:id/status", withAdmin(h.updateEmergencyStatus)...)
	}

	statistics := api.Group("/statistics")
	{
		statistics.GET("", h.getStatistics)
		statistics.GET("/category", h.getCategoryStatistics)
		statistics.GET("/monthly", h.getMonthlyStatistics)
		statistics.GET("/location", h.getLocationStatistics)
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.GET("/unread", h.listUnreadNotifications)
		notifications.POST("/read-all", h.markAllNotificationsRead)
		notifications.POST("/:id/read", h.markNotificationRead)
	}

	// Маршрут Health-check
	api.GET("/health", h.healthCheck)
}
