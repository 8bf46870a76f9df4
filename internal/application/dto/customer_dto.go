package dto

// CustomerResponse cliente para el selector de filtros (GET /customers).
type CustomerResponse struct {
	CustomerID int64  `json:"customer_id"`
	Name       string `json:"name"`
}
