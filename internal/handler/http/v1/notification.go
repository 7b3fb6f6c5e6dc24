package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary List notifications
// @Description Get notifications, newest first
// @Tags Notifications
// @Produce json
// @Param limit query int false "Max number of items (default 50, max 200)"
// @Success 200 {array} NotificationResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	log := h.logger.WithField("method", "listNotifications")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, log, err, "notification not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToNotificationResponses(notifications))
}

// @Summary List unread notifications
// @Description Get unread notifications with their total count
// @Tags Notifications
// @Produce json
// @Success 200 {object} UnreadNotificationsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications/unread [get]
func (h *Handler) listUnreadNotifications(c *gin.Context) {
	log := h.logger.WithField("method", "listUnreadNotifications")

	notifications, count, err := h.notificationService.ListUnread(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "notification not found")
		return
	}
	c.JSON(http.StatusOK, UnreadNotificationsResponse{
		Notifications: ModelsToNotificationResponses(notifications),
		Count:         count,
	})
}

// @Summary Mark notification as read
// @Description Mark one notification as read. Repeated calls keep the first read time.
// @Tags Notifications
// @Param id path int true "Notification ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid notification ID"
// @Failure 404 {object} map[string]string "Notification not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications/{id}/read [post]
func (h *Handler) markNotificationRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification ID"})
		return
	}
	log := h.logger.WithField("method", "markNotificationRead").WithField("id", id)

	if err := h.notificationService.MarkAsRead(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err, "notification not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mark all notifications as read
// @Description Mark every unread notification as read and return how many were updated
// @Tags Notifications
// @Produce json
// @Success 200 {object} MarkAllReadResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications/read-all [post]
func (h *Handler) markAllNotificationsRead(c *gin.Context) {
	log := h.logger.WithField("method", "markAllNotificationsRead")

	updated, err := h.notificationService.MarkAllAsRead(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "notification not found")
		return
	}
	c.JSON(http.StatusOK, MarkAllReadResponse{Updated: updated})
}
