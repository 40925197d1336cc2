package loan

import (
	"net/http"
	"strconv"

	loanerrors "cadebeck-hr/internal/loan/errors"
	"cadebeck-hr/internal/middleware"
	"cadebeck-hr/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), middleware.ActorID(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListByEmployee(c *gin.Context) {
	employeeID := c.Query("employee_id")
	if employeeID == "" {
		response.FromError(c, loanerrors.ErrInvalidEmployeeID)
		return
	}

	loans, err := h.service.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	items, meta := response.Paginate(loans, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}
