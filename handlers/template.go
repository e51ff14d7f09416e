// File: handlers/template.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookerly/models"
	"bookerly/services/template"
)

// TemplateHandler encapsulates admin template management.
type TemplateHandler struct {
	Service template.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(svc template.TemplateService) *TemplateHandler {
	return &TemplateHandler{Service: svc}
}

// templateInput is the admin payload for create/update.
type templateInput struct {
	Name              string                        `json:"name" binding:"required"`
	Days              map[string][]models.TimeRange `json:"days"`
	BlackoutDays      []string                      `json:"blackoutDays"`
	BookingCutoffDate string                        `json:"bookingCutoffDate"`
}

func (in *templateInput) toModel() *models.WeeklyTemplate {
	return &models.WeeklyTemplate{
		Name:              in.Name,
		Days:              in.Days,
		BlackoutDays:      in.BlackoutDays,
		BookingCutoffDate: in.BookingCutoffDate,
	}
}

// CreateTemplateHandler handles POST /templates
func (h *TemplateHandler) CreateTemplateHandler(c *gin.Context) {
	var in templateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	tpl, err := h.Service.Create(c.Request.Context(), in.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// GetTemplateHandler handles GET /templates/:id
func (h *TemplateHandler) GetTemplateHandler(c *gin.Context) {
	tpl, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// UpdateTemplateHandler handles PUT /templates/:id
func (h *TemplateHandler) UpdateTemplateHandler(c *gin.Context) {
	var in templateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	tpl := in.toModel()
	tpl.ID = c.Param("id")
	updated, err := h.Service.Update(c.Request.Context(), tpl)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteTemplateHandler handles DELETE /templates/:id
func (h *TemplateHandler) DeleteTemplateHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListTemplatesHandler handles GET /templates
func (h *TemplateHandler) ListTemplatesHandler(c *gin.Context) {
	templates, err := h.Service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}
