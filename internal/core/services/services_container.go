package services

import (
	portsrepo "github.com/finbooks/accounting_core/internal/core/ports/repositories"
	portssvc "github.com/finbooks/accounting_core/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Audit first since nearly everything else writes to it
	container.Audit = NewAuditService(repos.AuditRepo)

	container.Account = NewAccountService(repos.AccountRepo, container.Audit)
	container.FiscalPeriod = NewFiscalPeriodService(repos.FiscalPeriodRepo, container.Audit)
	container.Journal = NewJournalService(repos.JournalRepo, container.Account, container.FiscalPeriod, container.Audit)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.AccountRepo)

	return container
}
