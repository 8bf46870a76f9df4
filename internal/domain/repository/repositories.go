package repository

// Repositories agrupa los puertos atados a una misma conexión. Lo entrega el
// ConnRunner a cada operación para que todas sus consultas usen esa conexión.
type Repositories struct {
	Customers CustomerRepository
	Invoices  InvoiceRepository
	Payments  PaymentRepository
	Reports   ReportRepository
}
