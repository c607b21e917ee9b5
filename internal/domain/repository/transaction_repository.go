package repository

import (
	"context"

	"github.com/salesops/sales-rep-mailer-go/internal/domain/entity"
)

// TransactionRepository defines the interface for the external row source.
// O chamador deve consumir o conjunto inteiro antes de finalizar qualquer
// grupo; falha aqui é o único erro fatal da execução.
type TransactionRepository interface {
	FetchRows(ctx context.Context, period entity.ReportingPeriod) ([]entity.RawTransactionRow, error)
}
