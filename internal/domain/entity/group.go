package entity

// GroupKeyUnassigned é a chave sentinela para transações sem representante.
// O grupo resultante é entregue ao administrador.
const GroupKeyUnassigned = "Unassigned"

// Group agrupa os LineItems de um representante (ou do sentinela
// "Unassigned"). Items preserva a ordem de chegada das linhas; um grupo só é
// considerado completo quando o consumo de todas as linhas terminou.
type Group struct {
	Key   string     `json:"key"`
	Items []LineItem `json:"items"`
}

// IsUnassigned reporta se o grupo pertence ao administrador.
func (g *Group) IsUnassigned() bool {
	return g.Key == GroupKeyUnassigned
}
