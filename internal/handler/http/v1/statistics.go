package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Get statistics rollup
// @Description Get counters by status for incidents and emergencies
// @Tags Statistics
// @Produce json
// @Success 200 {object} models.Statistics
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /statistics [get]
func (h *Handler) getStatistics(c *gin.Context) {
	log := h.logger.WithField("method", "getStatistics")

	stats, err := h.statisticsService.GetStatistics(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "statistics not found")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Get statistics by category
// @Description Incident counts per catalog category, including empty categories
// @Tags Statistics
// @Produce json
// @Success 200 {array} models.CategoryStat
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /statistics/category [get]
func (h *Handler) getCategoryStatistics(c *gin.Context) {
	log := h.logger.WithField("method", "getCategoryStatistics")

	stats, err := h.statisticsService.ByCategory(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "statistics not found")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Get monthly statistics
// @Description Created and resolved incidents per month, oldest first
// @Tags Statistics
// @Produce json
// @Param months query int false "Number of months (default 12, max 36)"
// @Success 200 {array} models.MonthlyStat
// @Failure 400 {object} map[string]string "Invalid months"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /statistics/monthly [get]
func (h *Handler) getMonthlyStatistics(c *gin.Context) {
	log := h.logger.WithField("method", "getMonthlyStatistics")
	months, err := strconv.Atoi(c.DefaultQuery("months", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid months"})
		return
	}

	stats, err := h.statisticsService.Monthly(c.Request.Context(), months)
	if err != nil {
		h.respondError(c, log, err, "statistics not found")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Get location heatmap
// @Description Incidents bucketed on a coordinate grid with intensity normalised to 0..1
// @Tags Statistics
// @Produce json
// @Param precision query int false "Grid precision in decimals (default 2, 1..4)"
// @Success 200 {array} models.LocationCell
// @Failure 400 {object} map[string]string "Invalid precision"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /statistics/location [get]
func (h *Handler) getLocationStatistics(c *gin.Context) {
	log := h.logger.WithField("method", "getLocationStatistics")
	precision, err := strconv.Atoi(c.DefaultQuery("precision", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid precision"})
		return
	}

	cells, err := h.statisticsService.Location(c.Request.Context(), precision)
	if err != nil {
		h.respondError(c, log, err, "statistics not found")
		return
	}
	c.JSON(http.StatusOK, cells)
}
