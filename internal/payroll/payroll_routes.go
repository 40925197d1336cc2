package payroll

import (
	"cadebeck-hr/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth gin.HandlerFunc,
	rbacService middleware.RBACService,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	// batch endpoints replay their report when retried with the same key
	batch := func(resource, action string, h gin.HandlerFunc) []gin.HandlerFunc {
		chain := []gin.HandlerFunc{middleware.RBACAuthorize(rbacService, resource, action)}
		if redisClient != nil {
			chain = append(chain, middleware.Idempotency(redisClient))
		}
		return append(chain, h)
	}

	payrolls := r.Group("/payrolls")
	payrolls.Use(auth)
	{
		payrolls.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetAll)
		payrolls.GET("/summary", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetPeriodSummary)
		payrolls.GET("/:id", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetByID)
		payrolls.POST("/process", batch("payroll", "process", handler.ProcessPayroll)...)
		payrolls.POST("/process-employee", middleware.RBACAuthorize(rbacService, "payroll", "process"), handler.ProcessEmployeePayroll)
		payrolls.POST("/bulk-approve", batch("payroll", "approve", handler.BulkApprove)...)
		payrolls.POST("/bulk-mark-paid", batch("payroll", "pay", handler.BulkMarkAsPaid)...)
		payrolls.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "payroll", "approve"), handler.Approve)
		payrolls.POST("/:id/mark-paid", middleware.RBACAuthorize(rbacService, "payroll", "pay"), handler.MarkAsPaid)
	}

	items := r.Group("/payroll-items")
	items.Use(auth)
	{
		items.GET("", middleware.RBACAuthorize(rbacService, "payroll_item", "read"), handler.ListLineItems)
		items.POST("", middleware.RBACAuthorize(rbacService, "payroll_item", "write"), handler.CreateLineItem)
		items.POST("/:kind/:id/deactivate", middleware.RBACAuthorize(rbacService, "payroll_item", "write"), handler.DeactivateLineItem)
	}
}
