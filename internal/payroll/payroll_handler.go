package payroll

import (
	"context"
	"net/http"
	"strconv"

	"cadebeck-hr/internal/middleware"
	payrollerrors "cadebeck-hr/internal/payroll/errors"
	"cadebeck-hr/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func (h *Handler) ProcessPayroll(c *gin.Context) {
	var req ProcessPayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.CommitIdempotent(c, h.rdb, nil)
		response.FromError(c, err)
		return
	}

	resp, err := h.service.ProcessPayroll(c.Request.Context(), middleware.ActorID(c), req)
	if err != nil {
		middleware.CommitIdempotent(c, h.rdb, nil)
		response.FromError(c, err)
		return
	}

	middleware.CommitIdempotent(c, h.rdb, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ProcessEmployeePayroll(c *gin.Context) {
	var req ProcessEmployeePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, err)
		return
	}

	resp, err := h.service.ProcessEmployeePayroll(c.Request.Context(), middleware.ActorID(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var filter GetPayrollsFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.FromError(c, err)
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetPeriodSummary(c *gin.Context) {
	resp, err := h.service.GetPeriodSummary(c.Request.Context(), c.Query("period"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	resp, err := h.service.Approve(c.Request.Context(), middleware.ActorID(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MarkAsPaid(c *gin.Context) {
	resp, err := h.service.MarkAsPaid(c.Request.Context(), middleware.ActorID(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) BulkApprove(c *gin.Context) {
	h.bulk(c, h.service.BulkApprove)
}

func (h *Handler) BulkMarkAsPaid(c *gin.Context) {
	h.bulk(c, h.service.BulkMarkAsPaid)
}

func (h *Handler) bulk(c *gin.Context, run func(ctx context.Context, actorID string, ids []string) (BulkActionResult, error)) {
	var req BulkActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.CommitIdempotent(c, h.rdb, nil)
		response.FromError(c, err)
		return
	}

	resp, err := run(c.Request.Context(), middleware.ActorID(c), req.PayrollIDs)
	if err != nil {
		middleware.CommitIdempotent(c, h.rdb, nil)
		response.FromError(c, err)
		return
	}

	middleware.CommitIdempotent(c, h.rdb, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateLineItem(c *gin.Context) {
	var req CreateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, err)
		return
	}

	resp, err := h.service.CreateLineItem(c.Request.Context(), middleware.ActorID(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListLineItems(c *gin.Context) {
	kind := LineItemKind(c.Query("kind"))
	employeeID := c.Query("employee_id")
	if employeeID == "" {
		response.FromError(c, payrollerrors.ErrInvalidEmployeeID)
		return
	}

	resp, err := h.service.ListLineItems(c.Request.Context(), kind, employeeID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeactivateLineItem(c *gin.Context) {
	resp, err := h.service.DeactivateLineItem(c.Request.Context(), LineItemKind(c.Param("kind")), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
