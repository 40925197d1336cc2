package payslip

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

	batch := func(h gin.HandlerFunc) []gin.HandlerFunc {
		chain := []gin.HandlerFunc{middleware.RBACAuthorize(rbacService, "payslip", "send")}
		if redisClient != nil {
			chain = append(chain, middleware.Idempotency(redisClient))
		}
		return append(chain, h)
	}

	payslips := r.Group("/payslips")
	payslips.Use(auth)
	{
		payslips.GET("/mine", middleware.RBACAuthorize(rbacService, "payslip", "view_own"), handler.ListOwn)
		payslips.GET("/mine/:id/download", middleware.RBACAuthorize(rbacService, "payslip", "view_own"), handler.DownloadOwn)
		payslips.POST("/mine/:id/view", middleware.RBACAuthorize(rbacService, "payslip", "view_own"), handler.MarkViewed)

		payslips.GET("", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.ListByEmployee)
		payslips.GET("/:id", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.GetByID)
		payslips.GET("/:id/download", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.Download)
		payslips.POST("/generate", middleware.RBACAuthorize(rbacService, "payslip", "generate"), handler.Generate)
		payslips.POST("/:id/regenerate", middleware.RBACAuthorize(rbacService, "payslip", "generate"), handler.Regenerate)
		payslips.POST("/:id/send", middleware.RBACAuthorize(rbacService, "payslip", "send"), handler.SendEmail)
		payslips.POST("/bulk-send", batch(handler.BulkSendEmail)...)
		payslips.POST("/bulk-send/queue", batch(handler.QueueBulkEmail)...)
	}
}
