package services

// ServiceContainer bundles the service facades for route registration.
type ServiceContainer struct {
	Account      AccountSvcFacade
	Journal      JournalSvcFacade
	FiscalPeriod FiscalPeriodSvcFacade
	Reporting    ReportingSvc
	Audit        AuditSvc
}
