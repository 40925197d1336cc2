package app

import (
	"cadebeck-hr/internal/audit"
	"cadebeck-hr/internal/employee"
	"cadebeck-hr/internal/loan"
	"cadebeck-hr/internal/messaging/kafka"
	"cadebeck-hr/internal/payroll"
	"cadebeck-hr/internal/payslip"
	"cadebeck-hr/internal/rbac"
	"cadebeck-hr/internal/rbac/infra"
	"cadebeck-hr/internal/shared/config"
	"cadebeck-hr/internal/shared/counter"
	"cadebeck-hr/internal/shared/mailer"
	"cadebeck-hr/internal/shared/storage"
	"cadebeck-hr/internal/tax"

	"go.uber.org/zap"
)

// Modules is the wired service graph shared by the api, worker and consumer
// binaries.
type Modules struct {
	AuditLog        audit.Logger
	RBACService     rbac.Service
	EmployeeService employee.Service
	LoanService     loan.Service
	PayrollService  payroll.Service
	PayslipService  payslip.Service
	OutboxRepo      kafka.OutboxRepository
	Storage         storage.FileStorage
	Cleanup         *payslip.Cleanup
}

func buildModules(cfg config.Config, in *Infra, logger *zap.Logger) (*Modules, error) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(in.GormDB)
	loanRepo := loan.NewRepository(in.GormDB)
	payrollRepo := payroll.NewRepository(in.GormDB)
	payslipRepo := payslip.NewRepository(in.GormDB)
	counterRepo := counter.NewRepository(in.GormDB)
	outboxRepo := kafka.NewOutboxRepository(in.DB)

	// --- Infrastructure ---
	tables, err := loadTaxTables(cfg.TaxTablePath, logger)
	if err != nil {
		return nil, err
	}
	calculator := tax.NewCalculator(tables)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	auditLog := audit.NewLogger(in.GormDB, logger)
	cleanup := payslip.NewCleanup(in.Redis, fileStorage, logger)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.Casbin.ModelPath, cfg.Casbin.PolicyPath)
	if err != nil {
		return nil, err
	}

	// --- Services ---
	m := &Modules{
		AuditLog:        auditLog,
		RBACService:     rbac.NewService(enforcer, logger),
		EmployeeService: employee.NewService(employeeRepo, logger),
		LoanService:     loan.NewService(in.DB, loanRepo, employeeRepo, counterRepo, auditLog, logger),
		PayrollService: payroll.NewService(
			in.DB, payrollRepo, employeeRepo, loanRepo, calculator, outboxRepo, auditLog, logger,
		),
		PayslipService: payslip.NewService(payslip.Deps{
			DB:         in.DB,
			Repo:       payslipRepo,
			Payrolls:   payrollRepo,
			Loans:      loanRepo,
			Calculator: calculator,
			Storage:    fileStorage,
			Renderer:   payslip.NewPDFRenderer(cfg.Payslip),
			Mailer:     mailer.New(cfg.SMTP, logger),
			Cleanup:    cleanup,
			OutboxRepo: outboxRepo,
			AuditLog:   auditLog,
			Company:    cfg.Company,
			Config:     cfg.Payslip,
		}, logger),
		OutboxRepo: outboxRepo,
		Storage:    fileStorage,
		Cleanup:    cleanup,
	}
	return m, nil
}

func loadTaxTables(path string, logger *zap.Logger) (tax.Tables, error) {
	if path == "" {
		logger.Info("using built-in tax tables")
		return tax.DefaultTables(), nil
	}
	tables, err := tax.LoadTables(path)
	if err != nil {
		return tax.Tables{}, err
	}
	logger.Info("tax tables loaded", zap.String("path", path), zap.String("version", tables.Version))
	return tables, nil
}
