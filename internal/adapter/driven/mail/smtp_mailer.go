package mail

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/smtp"

	"github.com/salesops/sales-rep-mailer-go/internal/domain/entity"
	"github.com/salesops/sales-rep-mailer-go/internal/domain/repository"
	"github.com/salesops/sales-rep-mailer-go/internal/shared/types"
)

const mimeBoundary = "sales-rep-mailer-attachment-boundary"

// SMTPMailer implementa o MailRepository via SMTP com autenticação PLAIN.
// Uma tentativa por mensagem; retry e agendamento ficam a cargo do job
// runner externo.
type SMTPMailer struct {
	cfg types.SMTPConfig
}

// NewSMTPMailer cria um mailer com as credenciais configuradas.
func NewSMTPMailer(cfg types.SMTPConfig) repository.MailRepository {
	return &SMTPMailer{cfg: cfg}
}

// Send monta a mensagem MIME e tenta uma entrega. O context limita a
// duração total da tentativa.
func (m *SMTPMailer) Send(ctx context.Context, msg entity.MailMessage) error {
	if m.cfg.Host == "" {
		return fmt.Errorf("mailer: SMTP host is not configured")
	}
	if msg.To == "" {
		return types.ErrNoRecipientAddress
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	from := m.cfg.FromAddress

	payload := BuildMessage(m.cfg.FromName, from, msg)

	// smtp.SendMail não aceita context; corremos em goroutine e honramos o
	// deadline do chamador, tratando timeout como falha recuperável.
	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, from, []string{msg.To}, payload)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("mailer: delivery to %s failed: %w", msg.To, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("mailer: delivery to %s timed out: %w", msg.To, ctx.Err())
	}
}

// BuildMessage serializa uma MailMessage como MIME multipart/mixed: corpo
// text/plain seguido dos anexos em base64.
func BuildMessage(fromName, fromAddress string, msg entity.MailMessage) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s <%s>\r\n", fromName, fromAddress)
	if msg.ToName != "" {
		fmt.Fprintf(&buf, "To: %s <%s>\r\n", msg.ToName, msg.To)
	} else {
		fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	}
	fmt.Fprintf(&buf, "Subject: %s\r\n", msg.Subject)
	buf.WriteString("MIME-Version: 1.0\r\n")

	if len(msg.Attachments) == 0 {
		buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
		buf.WriteString(msg.Body)
		return buf.Bytes()
	}

	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", mimeBoundary)

	fmt.Fprintf(&buf, "--%s\r\n", mimeBoundary)
	buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	buf.WriteString(msg.Body)
	buf.WriteString("\r\n")

	for _, att := range msg.Attachments {
		contentType := att.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		fmt.Fprintf(&buf, "--%s\r\n", mimeBoundary)
		fmt.Fprintf(&buf, "Content-Type: %s; name=%q\r\n", contentType, att.Name)
		buf.WriteString("Content-Transfer-Encoding: base64\r\n")
		fmt.Fprintf(&buf, "Content-Disposition: attachment; filename=%q\r\n\r\n", att.Name)

		encoded := base64.StdEncoding.EncodeToString(att.Content)
		// Quebra em linhas de 76 colunas por exigência do RFC 2045.
		for len(encoded) > 76 {
			buf.WriteString(encoded[:76])
			buf.WriteString("\r\n")
			encoded = encoded[76:]
		}
		buf.WriteString(encoded)
		buf.WriteString("\r\n")
	}

	fmt.Fprintf(&buf, "--%s--\r\n", mimeBoundary)
	return buf.Bytes()
}
