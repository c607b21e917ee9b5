package mail

import (
	"context"

	"github.com/salesops/sales-rep-mailer-go/internal/domain/entity"
	"github.com/salesops/sales-rep-mailer-go/internal/domain/repository"
	"github.com/salesops/sales-rep-mailer-go/internal/shared/types"
)

// DryRunMailer implementa o MailRepository sem entregar nada: registra a
// mensagem no console. Usado com --dry-run; artefatos e outcomes ainda são
// produzidos normalmente.
type DryRunMailer struct {
	console types.ConsoleInterface
}

// NewDryRunMailer cria um mailer de simulação.
func NewDryRunMailer(console types.ConsoleInterface) repository.MailRepository {
	return &DryRunMailer{console: console}
}

func (m *DryRunMailer) Send(ctx context.Context, msg entity.MailMessage) error {
	if msg.To == "" {
		return types.ErrNoRecipientAddress
	}
	m.console.LogInfo("[dry-run] would send %q to %s <%s> with %d attachment(s)",
		msg.Subject, msg.ToName, msg.To, len(msg.Attachments))
	return nil
}
