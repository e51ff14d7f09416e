// File: handlers/booking.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookerly/services/booking"
)

// BookingHandler serves the public booking lifecycle.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler commits a booking: POST /bookings
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	// The cancel token travels only in this one response; the booking record
	// never exposes it again.
	c.JSON(http.StatusCreated, gin.H{"booking": b, "cancelToken": b.CancelToken})
}

// GetBookingByTokenHandler resolves a booking for the self-service page:
// GET /bookings/token/:token
func (h *BookingHandler) GetBookingByTokenHandler(c *gin.Context) {
	b, err := h.Service.GetByCancelToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// CancelBookingHandler cancels a booking: POST /bookings/token/:token/cancel
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	b, err := h.Service.CancelBooking(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// RescheduleBookingHandler rewrites date+time on a confirmed booking:
// POST /bookings/token/:token/reschedule
func (h *BookingHandler) RescheduleBookingHandler(c *gin.Context) {
	var req struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Service.RescheduleBooking(c.Request.Context(), c.Param("token"), req.Date, req.Time)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}
