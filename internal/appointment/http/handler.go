package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/altorracars/dealership-backend/internal/appointment"
	"github.com/altorracars/dealership-backend/internal/auth"
	"github.com/altorracars/dealership-backend/internal/pkg/request"
	"github.com/altorracars/dealership-backend/internal/pkg/response"
)

type Handler struct {
	service appointment.Service
}

func NewHandler(service appointment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListAppointmentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := appointment.Filter{
		Status:   req.Status,
		Origin:   req.Origin,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	list, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]AppointmentResponse, len(list))
	for i, a := range list {
		items[i] = NewAppointmentResponse(a)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewAppointmentResponse(a))
}

// Create handles the staff-internal creation path. The same collision check
// applies as for customer bookings; staff cannot double-book a slot a
// customer already holds.
func (h *Handler) Create(c *gin.Context) {
	var body CreateAppointmentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	actor := auth.GetStaffEmail(c)

	a, err := h.service.Create(c.Request.Context(), toCreateRequest(body), appointment.OriginStaff, actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewAppointmentResponse(a))
}

// CreatePublic handles the unauthenticated customer booking flow. Status is
// always pending regardless of the request body.
func (h *Handler) CreatePublic(c *gin.Context) {
	var body CreateAppointmentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	a, err := h.service.Create(c.Request.Context(), toCreateRequest(body), appointment.OriginCustomer, "customer")
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewAppointmentResponse(a))
}

func (h *Handler) Transition(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment ID"})
		return
	}

	var body TransitionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	actor := auth.GetStaffEmail(c)

	a, err := h.service.TransitionStatus(
		c.Request.Context(),
		id,
		appointment.Status(body.Status),
		appointment.TransitionRequest{Date: body.Date, Time: body.Time, Notes: body.Notes},
		actor,
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewAppointmentResponse(a))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	actor := auth.GetStaffEmail(c)

	if err := h.service.Delete(c.Request.Context(), req.ID, actor); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func toCreateRequest(body CreateAppointmentBody) appointment.CreateRequest {
	return appointment.CreateRequest{
		CustomerName:     body.CustomerName,
		ContactPhone:     body.ContactPhone,
		ContactEmail:     body.ContactEmail,
		VehicleReference: body.VehicleReference,
		Date:             body.Date,
		Time:             body.Time,
		AppointmentType:  body.AppointmentType,
		Notes:            body.Notes,
		Status:           appointment.Status(body.Status),
	}
}
