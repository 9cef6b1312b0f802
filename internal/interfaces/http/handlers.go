package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/garyjia/trip-expense/internal/application/service"
	"github.com/garyjia/trip-expense/internal/report"
)

// Handlers contains all HTTP request handlers
type Handlers struct {
	tripService service.TripService
	logger      Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(tripService service.TripService, logger Logger) *Handlers {
	return &Handlers{
		tripService: tripService,
		logger:      logger,
	}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// ExportQuery holds the export query parameters
type ExportQuery struct {
	Format string `form:"format"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   "1.0.0",
		},
	})
}

// GetDefaults handles GET /api/defaults
func (h *Handlers) GetDefaults(c *gin.Context) {
	defaults, err := h.tripService.Defaults(c.Request.Context())
	if err != nil {
		h.respondError(c, "Failed to load defaults", err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: defaults})
}

// PlanTrip handles POST /api/trips/plan
func (h *Handlers) PlanTrip(c *gin.Context) {
	var req service.PlanRequest
	if !h.bindJSON(c, &req) {
		return
	}

	plan, err := h.tripService.Plan(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, "Failed to plan trip", err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: plan})
}

// CalculateTrip handles POST /api/trips/calculate
func (h *Handlers) CalculateTrip(c *gin.Context) {
	var req service.CalculationRequest
	if !h.bindJSON(c, &req) {
		return
	}

	calc, err := h.tripService.Calculate(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, "Failed to calculate trip", err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: calc})
}

// ExportTrip handles POST /api/trips/export?format=txt|csv|xlsx|pdf
func (h *Handlers) ExportTrip(c *gin.Context) {
	var query ExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.logger.Error("Invalid query parameters", "error", err)
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid query parameters"})
		return
	}
	if query.Format == "" {
		query.Format = string(report.FormatText)
	}

	var req service.CalculationRequest
	if !h.bindJSON(c, &req) {
		return
	}

	file, err := h.tripService.Export(c.Request.Context(), req, report.Format(query.Format))
	if err != nil {
		h.respondError(c, "Failed to export trip", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	c.Data(http.StatusOK, file.MimeType, file.Content)
}

// bindJSON decodes the body into dst, answering 400 on failure
func (h *Handlers) bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.logger.Error("Invalid request body", "error", err, "path", c.Request.URL.Path)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   fmt.Sprintf("invalid request body: %v", err),
		})
		return false
	}
	return true
}

// respondError maps validation failures to 400 and everything else to 500
func (h *Handlers) respondError(c *gin.Context, msg string, err error) {
	if errors.Is(err, service.ErrValidation) {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.logger.Error(msg, "error", err)
	c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "internal server error"})
}
