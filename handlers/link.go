// File: handlers/link.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	bookingRepo "bookerly/database/repository/booking"
	"bookerly/models"
	"bookerly/services/link"
)

// LinkHandler encapsulates booking-link management plus the public slug
// resolution used by the booking page.
type LinkHandler struct {
	Service  link.LinkService
	Bookings bookingRepo.BookingRepository
}

// NewLinkHandler creates a new LinkHandler.
func NewLinkHandler(svc link.LinkService, bookings bookingRepo.BookingRepository) *LinkHandler {
	return &LinkHandler{Service: svc, Bookings: bookings}
}

// linkInput is the admin payload for create/update.
type linkInput struct {
	TemplateID            string  `json:"templateId" binding:"required"`
	Title                 string  `json:"title" binding:"required"`
	SlotDurationMinutes   int     `json:"slotDurationMinutes"`
	IsActive              *bool   `json:"isActive"`
	RequireAdvanceBooking bool    `json:"requireAdvanceBooking"`
	AdvanceHours          float64 `json:"advanceHours"`
}

// CreateLinkHandler handles POST /links
func (h *LinkHandler) CreateLinkHandler(c *gin.Context) {
	var in linkInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), &models.BookingLink{
		TemplateID:            in.TemplateID,
		Title:                 in.Title,
		SlotDurationMinutes:   in.SlotDurationMinutes,
		RequireAdvanceBooking: in.RequireAdvanceBooking,
		AdvanceHours:          in.AdvanceHours,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetLinkHandler handles GET /links/:id
func (h *LinkHandler) GetLinkHandler(c *gin.Context) {
	l, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// ResolveSlugHandler handles GET /booking-pages/:slug (public). Only active
// links resolve.
func (h *LinkHandler) ResolveSlugHandler(c *gin.Context) {
	l, err := h.Service.ResolveSlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// UpdateLinkHandler handles PUT /links/:id, including deactivation.
func (h *LinkHandler) UpdateLinkHandler(c *gin.Context) {
	var in linkInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	updated, err := h.Service.Update(c.Request.Context(), &models.BookingLink{
		ID:                    c.Param("id"),
		TemplateID:            in.TemplateID,
		Title:                 in.Title,
		SlotDurationMinutes:   in.SlotDurationMinutes,
		IsActive:              isActive,
		RequireAdvanceBooking: in.RequireAdvanceBooking,
		AdvanceHours:          in.AdvanceHours,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteLinkHandler handles DELETE /links/:id
func (h *LinkHandler) DeleteLinkHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListLinksHandler handles GET /links
func (h *LinkHandler) ListLinksHandler(c *gin.Context) {
	links, err := h.Service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"links": links})
}

// ListLinkBookingsHandler handles GET /links/:id/bookings?year&month (admin).
func (h *LinkHandler) ListLinkBookingsHandler(c *gin.Context) {
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

	bookings, err := h.Bookings.ListForLinkAndMonth(c.Request.Context(), c.Param("id"), year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
