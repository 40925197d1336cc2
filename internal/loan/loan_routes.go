package loan

import (
	"cadebeck-hr/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc, rbacService middleware.RBACService) {
	loans := r.Group("/loans")
	loans.Use(auth)
	{
		loans.GET("", middleware.RBACAuthorize(rbacService, "loan", "read"), handler.ListByEmployee)
		loans.GET("/:id", middleware.RBACAuthorize(rbacService, "loan", "read"), handler.GetByID)
		loans.POST("", middleware.RBACAuthorize(rbacService, "loan", "write"), handler.Create)
	}
}
