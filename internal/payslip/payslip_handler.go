package payslip

import (
	"net/http"
	"strconv"

	"cadebeck-hr/internal/middleware"
	"cadebeck-hr/internal/shared/apperror"
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

func (h *Handler) Generate(c *gin.Context) {
	var req GeneratePayslipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, err)
		return
	}

	resp, err := h.service.GeneratePayslip(c.Request.Context(), middleware.ActorID(c), req.PayrollID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Regenerate(c *gin.Context) {
	resp, err := h.service.RegeneratePayslip(c.Request.Context(), middleware.ActorID(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
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
		response.FromError(c, apperror.RequiredField("employee_id"))
		return
	}
	h.list(c, employeeID)
}

func (h *Handler) ListOwn(c *gin.Context) {
	employeeID := c.GetString(middleware.ContextEmployeeID)
	if employeeID == "" {
		response.FromError(c, apperror.ErrForbidden)
		return
	}
	h.list(c, employeeID)
}

func (h *Handler) list(c *gin.Context, employeeID string) {
	resp, err := h.service.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) Download(c *gin.Context) {
	file, err := h.service.Download(c.Request.Context(), middleware.ActorID(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	writeFile(c, file)
}

func (h *Handler) DownloadOwn(c *gin.Context) {
	employeeID := c.GetString(middleware.ContextEmployeeID)
	if employeeID == "" {
		response.FromError(c, apperror.ErrForbidden)
		return
	}

	file, err := h.service.DownloadOwn(c.Request.Context(), employeeID, c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	writeFile(c, file)
}

func (h *Handler) MarkViewed(c *gin.Context) {
	employeeID := c.GetString(middleware.ContextEmployeeID)
	if employeeID == "" {
		response.FromError(c, apperror.ErrForbidden)
		return
	}

	resp, err := h.service.MarkViewed(c.Request.Context(), employeeID, c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// SendEmail answers 200 for a recorded delivery failure; the result status
// tells the caller what happened.
func (h *Handler) SendEmail(c *gin.Context) {
	resp, err := h.service.SendPayslipEmail(c.Request.Context(), middleware.ActorID(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) BulkSendEmail(c *gin.Context) {
	var req BulkEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.CommitIdempotent(c, h.rdb, nil)
		response.FromError(c, err)
		return
	}

	resp, err := h.service.BulkSendPayslipEmails(c.Request.Context(), middleware.ActorID(c), req.PayslipIDs)
	if err != nil {
		middleware.CommitIdempotent(c, h.rdb, nil)
		response.FromError(c, err)
		return
	}

	middleware.CommitIdempotent(c, h.rdb, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) QueueBulkEmail(c *gin.Context) {
	var req BulkEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.CommitIdempotent(c, h.rdb, nil)
		response.FromError(c, err)
		return
	}

	resp, err := h.service.RequestBulkEmail(c.Request.Context(), middleware.ActorID(c), req.PayslipIDs)
	if err != nil {
		middleware.CommitIdempotent(c, h.rdb, nil)
		response.FromError(c, err)
		return
	}

	middleware.CommitIdempotent(c, h.rdb, resp)
	response.Success(c, http.StatusAccepted, resp, nil)
}

func writeFile(c *gin.Context, file File) {
	c.Header("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
