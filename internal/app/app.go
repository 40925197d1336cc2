package app

import (
	"net/http"

	"cadebeck-hr/internal/employee"
	"cadebeck-hr/internal/loan"
	"cadebeck-hr/internal/middleware"
	"cadebeck-hr/internal/payroll"
	"cadebeck-hr/internal/payslip"
	"cadebeck-hr/internal/shared/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BuildApp connects the infrastructure, wires every module and registers the
// HTTP routes. The caller closes the returned Infra.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) (*Infra, *Modules, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	in, err := connectInfra(cfg)
	if err != nil {
		return nil, nil, err
	}

	if cfg.AutoMigrate {
		if err := Migrate(in.GormDB); err != nil {
			in.Close()
			return nil, nil, err
		}
		logger.Info("database migrated")
	}

	m, err := buildModules(cfg, in, logger)
	if err != nil {
		in.Close()
		return nil, nil, err
	}

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.RateLimitByIP(rate.Limit(20), 40),
	)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Handlers ---
	employeeHandler := employee.NewHandler(m.EmployeeService)
	loanHandler := loan.NewHandler(m.LoanService)
	payrollHandler := payroll.NewHandlerWithRedis(m.PayrollService, in.Redis)
	payslipHandler := payslip.NewHandlerWithRedis(m.PayslipService, in.Redis)

	// --- Routes Registration ---
	auth := middleware.AuthMiddleware(cfg.JWTSecret)
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, auth, m.RBACService)
		loan.RegisterRoutes(api, loanHandler, auth, m.RBACService)
		payroll.RegisterRoutes(api, payrollHandler, auth, m.RBACService, in.Redis)
		payslip.RegisterRoutes(api, payslipHandler, auth, m.RBACService, in.Redis)
	}

	return in, m, nil
}
