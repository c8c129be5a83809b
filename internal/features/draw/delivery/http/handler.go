package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/your-org/prizedraw-backend/internal/features/draw/models"
	drawservice "github.com/your-org/prizedraw-backend/internal/features/draw/service"
)

type DrawHandler struct {
	service drawservice.DrawService
}

func NewDrawHandler(service drawservice.DrawService) *DrawHandler {
	return &DrawHandler{service: service}
}

func (h *DrawHandler) RegisterRoutes(router *gin.RouterGroup) {
	draws := router.Group("/draws")
	{
		draws.GET("", h.list)
		draws.POST("", h.create)
		draws.GET("/:id", h.getByID)
		draws.PATCH("/:id/status", h.updateStatus)
		draws.POST("/:id/pick-winners", h.pickWinners)
		draws.GET("/:id/entries", h.listEntries)
		draws.GET("/:id/winners", h.listWinners)
	}

	router.POST("/entries", h.submitEntry)
}

type createDrawRequest struct {
	Title               string  `json:"title"`
	Description         string  `json:"description"`
	PrizeDescription    string  `json:"prize_description"`
	StartDate           string  `json:"start_date"`
	EndDate             string  `json:"end_date"`
	Value               float64 `json:"value"`
	Type                string  `json:"type"`
	Status              string  `json:"status"`
	EligibilityCriteria string  `json:"eligibility_criteria"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type submitEntryRequest struct {
	DrawID        string `json:"draw_id"`
	CustomerID    string `json:"customer_id"`
	CustomerEmail string `json:"customer_email"`
	CustomerName  string `json:"customer_name"`
}

// parseDate accepts both date-only values ("2006-01-02", what the admin UI
// sends) and full RFC3339 timestamps. A date-only end date means the whole
// day, so it is pushed to the last instant of that day.
func parseDate(value string, endOfDay bool) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

func (h *DrawHandler) list(c *gin.Context) {
	status := models.DrawStatus(c.Query("status"))

	draws, err := h.service.List(c.Request.Context(), status)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": draws})
}

func (h *DrawHandler) create(c *gin.Context) {
	var req createDrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startDate, err := parseDate(req.StartDate, false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	endDate, err := parseDate(req.EndDate, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draw, err := h.service.Create(c.Request.Context(), &drawservice.CreateDrawInput{
		Title:               req.Title,
		Description:         req.Description,
		PrizeDescription:    req.PrizeDescription,
		Value:               req.Value,
		Type:                req.Type,
		Status:              req.Status,
		EligibilityCriteria: req.EligibilityCriteria,
		StartDate:           startDate,
		EndDate:             endDate,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": draw.ID, "status": draw.Status})
}

func (h *DrawHandler) getByID(c *gin.Context) {
	draw, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": draw})
}

func (h *DrawHandler) updateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), models.DrawStatus(req.Status)); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *DrawHandler) submitEntry(c *gin.Context) {
	var req submitEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.service.SubmitEntry(c.Request.Context(), &drawservice.SubmitEntryInput{
		DrawID:        req.DrawID,
		CustomerID:    req.CustomerID,
		CustomerEmail: req.CustomerEmail,
		CustomerName:  req.CustomerName,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "entry_id": entry.ID})
}

func (h *DrawHandler) pickWinners(c *gin.Context) {
	result, err := h.service.PickWinners(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":                 true,
		"primary_winner_entry_id": result.PrimaryEntryID,
		"reserve_count":           result.ReserveCount,
	})
}

func (h *DrawHandler) listEntries(c *gin.Context) {
	entries, err := h.service.ListEntries(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func (h *DrawHandler) listWinners(c *gin.Context) {
	winners, err := h.service.ListWinners(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": winners})
}

// respondError maps domain errors to HTTP codes. Conflicts (duplicate entry,
// illegal transition) are 409 so callers can tell them from retryable
// failures; already-completed and empty-pool selections are 400 like the rest
// of the precondition failures.
func (h *DrawHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrDrawNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Draw not found"})
	case errors.Is(err, models.ErrDuplicateEntry):
		c.JSON(http.StatusConflict, gin.H{"error": "You have already entered this draw."})
	case errors.Is(err, models.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrDrawNotAcceptingEntries),
		errors.Is(err, models.ErrAlreadyCompleted),
		errors.Is(err, models.ErrEmptyPool),
		errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
