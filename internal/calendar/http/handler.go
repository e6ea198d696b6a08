package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/altorracars/dealership-backend/internal/calendar"
	"github.com/altorracars/dealership-backend/internal/pkg/request"
	"github.com/altorracars/dealership-backend/internal/pkg/response"
)

type Handler struct {
	service calendar.Service
}

func NewHandler(service calendar.Service) *Handler {
	return &Handler{service: service}
}

// Month handles GET /calendar/:year/:month — the back-office month grid.
func (h *Handler) Month(c *gin.Context) {
	var req MonthRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year or month", "details": err.Error()})
		return
	}

	cells, err := h.service.Month(c.Request.Context(), req.Year, time.Month(req.Month))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": cells})
}

// Day handles GET /calendar/day/:date — the staff day editor view.
func (h *Handler) Day(c *gin.Context) {
	var req request.ByDateRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date", "details": err.Error()})
		return
	}

	detail, err := h.service.Day(c.Request.Context(), req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewDayDetailResponse(detail))
}

// DaySlotsPublic handles GET /public/availability/:date — the customer-facing
// slot picker. It exposes only the slot grid, not the appointments.
func (h *Handler) DaySlotsPublic(c *gin.Context) {
	var req request.ByDateRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date", "details": err.Error()})
		return
	}

	slots, err := h.service.DaySlots(c.Request.Context(), req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	if slots == nil {
		slots = []calendar.SlotView{}
	}
	c.JSON(http.StatusOK, gin.H{"date": req.Date, "slots": slots})
}
