package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/altorracars/dealership-backend/internal/auth"
	"github.com/altorracars/dealership-backend/internal/availability"
	"github.com/altorracars/dealership-backend/internal/pkg/request"
	"github.com/altorracars/dealership-backend/internal/pkg/response"
)

type Handler struct {
	service availability.Service
}

func NewHandler(service availability.Service) *Handler {
	return &Handler{service: service}
}

// GetSnapshot handles GET /availability: the config plus every override.
func (h *Handler) GetSnapshot(c *gin.Context) {
	snap, err := h.service.GetSnapshot(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	overrides := make([]OverrideResponse, 0, len(snap.Overrides))
	for _, ov := range snap.Overrides {
		overrides = append(overrides, NewOverrideResponse(ov))
	}

	c.JSON(http.StatusOK, SnapshotResponse{
		Config:    NewConfigResponse(&snap.Config),
		Overrides: overrides,
	})
}

// UpdateConfig handles PUT /availability/config.
func (h *Handler) UpdateConfig(c *gin.Context) {
	var body UpdateConfigBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	days := make([]time.Weekday, len(body.WeeklyDays))
	for i, d := range body.WeeklyDays {
		days[i] = time.Weekday(d)
	}

	cfg, err := h.service.UpdateConfig(c.Request.Context(), availability.UpdateConfigRequest{
		WeeklyDays:          days,
		StartHour:           body.StartHour,
		EndHour:             body.EndHour,
		SlotIntervalMinutes: body.SlotIntervalMinutes,
	}, auth.GetStaffEmail(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewConfigResponse(cfg))
}

// SetDayOverride handles PUT /availability/days/:date.
func (h *Handler) SetDayOverride(c *gin.Context) {
	var uri request.ByDateRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date", "details": err.Error()})
		return
	}

	var body SetDayOverrideBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	ov, err := h.service.SetDayOverride(c.Request.Context(), uri.Date, body.BlockedTimes)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewOverrideResponse(*ov))
}
