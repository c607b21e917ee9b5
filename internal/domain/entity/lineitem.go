package entity

// Default values applied by the normalizer when a source field is absent.
const (
	DefaultCustomerName  = "Unknown"
	DefaultCustomerEmail = "No Email"
	DefaultAmount        = "0.00"
)

// LineItem é a unidade normalizada do pipeline. Os campos são armazenados
// crus (sem escaping); o escaping de CSV acontece exatamente uma vez, na
// renderização.
type LineItem struct {
	CustomerName   string `json:"customer_name"`
	CustomerEmail  string `json:"customer_email"`
	DocumentNumber string `json:"document_number"`
	Amount         string `json:"amount"`
	GroupKey       string `json:"group_key"`
}
