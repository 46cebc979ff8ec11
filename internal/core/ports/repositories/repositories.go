package repositories

// RepositoryProvider bundles every repository implementation the service
// container needs, so wiring in main stays a single call.
type RepositoryProvider struct {
	ApartmentRepo    ApartmentRepositoryFacade
	CategoryRepo     CategoryRepositoryFacade
	ExpenseRepo      ExpenseRepositoryFacade
	PaymentRepo      PaymentRepositoryFacade
	BalanceSheetRepo BalanceSheetRepositoryFacade
}
