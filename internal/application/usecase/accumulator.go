package usecase

import (
	"github.com/salesops/sales-rep-mailer-go/internal/domain/entity"
)

// Accumulator coleta LineItems por chave de agrupamento. Protocolo em duas
// fases: Add até o esgotamento da entrada, depois Finalize — nenhum grupo é
// renderizado antes de todas as linhas serem vistas, já que qualquer linha
// pode pertencer a qualquer grupo.
//
// Não é seguro para uso concorrente; a fase de acumulação é um passo único
// síncrono limitado pelo tamanho da entrada.
type Accumulator struct {
	groups    map[string]*entity.Group
	order     []string
	items     int
	finalized bool
}

// NewAccumulator cria um acumulador vazio.
func NewAccumulator() *Accumulator {
	return &Accumulator{groups: make(map[string]*entity.Group)}
}

// Add anexa o item ao grupo da sua chave, criando o grupo no primeiro uso.
// A ordem dos itens dentro de um grupo é a ordem de inserção.
func (a *Accumulator) Add(item entity.LineItem) {
	if a.finalized {
		return
	}
	group, ok := a.groups[item.GroupKey]
	if !ok {
		group = &entity.Group{Key: item.GroupKey}
		a.groups[item.GroupKey] = group
		a.order = append(a.order, item.GroupKey)
	}
	group.Items = append(group.Items, item)
	a.items++
}

// Finalize sela o acumulador e devolve os grupos completos, na ordem da
// primeira ocorrência de cada chave. A ordem entre grupos só precisa ser
// determinística.
func (a *Accumulator) Finalize() []*entity.Group {
	a.finalized = true
	groups := make([]*entity.Group, 0, len(a.order))
	for _, key := range a.order {
		groups = append(groups, a.groups[key])
	}
	return groups
}

// Items devolve o total de itens acumulados.
func (a *Accumulator) Items() int {
	return a.items
}

// Groups devolve o número de grupos vistos até agora.
func (a *Accumulator) Groups() int {
	return len(a.order)
}
