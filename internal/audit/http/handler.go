package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/altorracars/dealership-backend/internal/audit"
	"github.com/altorracars/dealership-backend/internal/pkg/response"
)

type Handler struct {
	service audit.Service
}

func NewHandler(service audit.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListEntriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	list, total, err := h.service.List(c.Request.Context(), audit.Filter{
		AppointmentID: req.AppointmentID,
		Action:        req.Action,
		Page:          req.Page,
		PageSize:      req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]EntryResponse, len(list))
	for i, e := range list {
		items[i] = NewEntryResponse(e)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}
