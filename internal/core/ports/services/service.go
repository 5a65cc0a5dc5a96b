package services

// ServiceProvider holds all service facades needed by the HTTP layer.
type ServiceProvider struct {
	UserSvc        UserSvcFacade
	LookupSvc      LookupSvcFacade
	MoneySourceSvc MoneySourceSvcFacade
	CategorySvc    CategorySvcFacade
	ContactSvc     ContactSvcFacade
	TransactionSvc TransactionSvcFacade
}
