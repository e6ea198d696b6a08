package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/altorracars/dealership-backend/internal/auth"
	"github.com/altorracars/dealership-backend/internal/pkg/response"
	"github.com/altorracars/dealership-backend/internal/staff"
)

type AuthHandler struct {
	staffService staff.Service
	jwtManager   *auth.JWTManager
}

func NewAuthHandler(
	staffService staff.Service,
	jwtManager *auth.JWTManager,
) *AuthHandler {
	return &AuthHandler{
		staffService: staffService,
		jwtManager:   jwtManager,
	}
}

//
// POST /v1/auth/login
//

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx := c.Request.Context()

	m, err := h.staffService.Login(ctx, req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "invalid email or password",
		})
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(m.ID, m.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to generate token",
		})
		return
	}

	resp := LoginResponse{
		AccessToken: token,
		Staff:       NewStaffResponse(m),
	}

	c.JSON(http.StatusOK, resp)
}

//
// POST /v1/auth/register  (admin only)
//

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx := c.Request.Context()

	m, err := h.staffService.Register(ctx, req.Email, req.Password, req.DisplayName, staff.Role(req.Role))
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := RegisterResponse{
		Staff: NewStaffResponse(m),
	}

	c.JSON(http.StatusCreated, resp)
}

//
// GET /v1/staff  (admin only)
//

func (h *AuthHandler) ListStaff(c *gin.Context) {
	var req ListStaffRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := staff.Filter{
		Role:     req.Role,
		IsActive: req.IsActive,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	list, total, err := h.staffService.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]StaffResponse, len(list))
	for i, m := range list {
		items[i] = NewStaffResponse(m)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

//
// GET /v1/me
//

func (h *AuthHandler) Me(c *gin.Context) {
	staffID := auth.GetStaffID(c)
	if staffID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx := c.Request.Context()

	m, err := h.staffService.GetByID(ctx, staffID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "staff member not found"})
		return
	}

	resp := MeResponse{
		Staff: NewStaffResponse(m),
	}

	c.JSON(http.StatusOK, resp)
}
