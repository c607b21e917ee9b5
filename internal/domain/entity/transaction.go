package entity

// EntityRef é uma referência a um registro da plataforma (id + nome de exibição).
type EntityRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RawTransactionRow é uma linha opaca produzida pelo serviço de consulta.
// É imutável: produzida uma vez pela fonte, consumida uma vez pelo
// normalizador.
type RawTransactionRow struct {
	DocumentNumber string     `json:"document_number"`
	Customer       *EntityRef `json:"customer,omitempty"`
	CustomerEmail  string     `json:"customer_email"`
	Amount         string     `json:"amount"`
	Representative *EntityRef `json:"representative,omitempty"`
}
