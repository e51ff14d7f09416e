// File: handlers/availability.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookerly/models"
	"bookerly/services/availability"
)

// AvailabilityHandler serves the public calendar views for a booking link.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// MonthAvailabilityHandler returns per-day availability summaries for one
// calendar month: GET /links/:id/availability?year=2025&month=1
func (h *AvailabilityHandler) MonthAvailabilityHandler(c *gin.Context) {
	linkID := c.Param("id")
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be an integer between 1 and 12"})
		return
	}

	days, err := h.Service.MonthAvailability(c.Request.Context(), linkID, year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// DaySlotsHandler returns the open slots for one date:
// GET /links/:id/slots?date=2025-01-06
func (h *AvailabilityHandler) DaySlotsHandler(c *gin.Context) {
	linkID := c.Param("id")
	date := c.Query("date")
	if !models.ValidDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	slots, err := h.Service.AvailableTimeSlots(c.Request.Context(), linkID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}
