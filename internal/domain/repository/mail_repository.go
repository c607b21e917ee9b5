package repository

import (
	"context"

	"github.com/salesops/sales-rep-mailer-go/internal/domain/entity"
)

// MailRepository defines the interface for the outbound mail service.
// Uma tentativa de entrega por mensagem; falha é recuperável (o despacho do
// grupo vira Skipped) e nunca derruba o lote.
type MailRepository interface {
	Send(ctx context.Context, msg entity.MailMessage) error
}
