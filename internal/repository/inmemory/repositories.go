package inmemory

// Repositories bundles one in-memory instance of every repository.
type Repositories struct {
	OrderRepo       *OrderStore
	InvoiceRepo     *InvoiceStore
	OrderPartRepo   *PartStore
	RequestPartRepo *PartStore
	SettingsRepo    *SettingsStore
}

// NewRepositories creates a fresh set of in-memory repositories.
func NewRepositories() *Repositories {
	return &Repositories{
		OrderRepo:       NewOrderStore(),
		InvoiceRepo:     NewInvoiceStore(),
		OrderPartRepo:   NewPartStore(),
		RequestPartRepo: NewPartStore(),
		SettingsRepo:    NewSettingsStore(),
	}
}
