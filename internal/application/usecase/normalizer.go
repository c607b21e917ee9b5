package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/salesops/sales-rep-mailer-go/internal/domain/entity"
	"github.com/salesops/sales-rep-mailer-go/internal/domain/repository"
	"github.com/salesops/sales-rep-mailer-go/internal/shared/types"
)

// Normalizer converte uma linha crua do serviço de consulta em um LineItem
// canônico. Uma linha malformada é reportada como erro e pulada pelo
// orquestrador; nunca aborta o lote.
type Normalizer struct {
	directory             repository.DirectoryRepository
	fallbackToCustomerRep bool
}

// NewNormalizer cria um normalizador. O diretório só é consultado quando a
// política de fallback está ativa.
func NewNormalizer(directory repository.DirectoryRepository, fallbackToCustomerRep bool) *Normalizer {
	return &Normalizer{
		directory:             directory,
		fallbackToCustomerRep: fallbackToCustomerRep,
	}
}

// Normalize aplica os defaults de campo e resolve a chave de agrupamento.
func (n *Normalizer) Normalize(ctx context.Context, row entity.RawTransactionRow) (entity.LineItem, error) {
	// Uma linha sem cliente, sem documento e sem valor não tem nada
	// aproveitável para o relatório.
	if row.Customer == nil && row.DocumentNumber == "" && row.Amount == "" {
		return entity.LineItem{}, fmt.Errorf("row has no customer, document or amount: %w", types.ErrMalformedRow)
	}

	item := entity.LineItem{
		CustomerName:   entity.DefaultCustomerName,
		CustomerEmail:  entity.DefaultCustomerEmail,
		DocumentNumber: row.DocumentNumber,
		Amount:         entity.DefaultAmount,
		GroupKey:       entity.GroupKeyUnassigned,
	}

	if row.Customer != nil && row.Customer.Name != "" {
		item.CustomerName = row.Customer.Name
	}
	if row.CustomerEmail != "" {
		item.CustomerEmail = row.CustomerEmail
	}

	if row.Amount != "" {
		if _, err := strconv.ParseFloat(row.Amount, 64); err != nil {
			return entity.LineItem{}, fmt.Errorf("amount %q is not numeric: %w", row.Amount, types.ErrMalformedRow)
		}
		item.Amount = row.Amount
	}

	item.GroupKey = n.resolveGroupKey(ctx, row)

	return item, nil
}

// resolveGroupKey devolve o id do representante da transação; sem
// representante, tenta o padrão do cliente quando a política permite, e por
// fim o sentinela. A consulta ao diretório é best-effort: falha nunca
// propaga.
func (n *Normalizer) resolveGroupKey(ctx context.Context, row entity.RawTransactionRow) string {
	if row.Representative != nil && row.Representative.ID != "" {
		return row.Representative.ID
	}

	if n.fallbackToCustomerRep && row.Customer != nil && row.Customer.ID != "" {
		if repID, err := n.directory.CustomerDefaultRep(ctx, row.Customer.ID); err == nil && repID != "" {
			return repID
		}
	}

	return entity.GroupKeyUnassigned
}
