package usecase

import (
	"fmt"

	"github.com/salesops/sales-rep-mailer-go/internal/domain/entity"
)

// Modelos de assunto/corpo, parametrizados por tipo de destinatário e rótulo
// do período.

func composeSubject(recipient entity.Recipient, period entity.ReportingPeriod) string {
	if recipient.Kind == entity.RecipientAdmin {
		return fmt.Sprintf("Unassigned Sales Report - %s", period.Label())
	}
	return fmt.Sprintf("Sales Report - %s", period.Label())
}

func composeBody(recipient entity.Recipient, period entity.ReportingPeriod, items int) string {
	if recipient.Kind == entity.RecipientAdmin {
		return fmt.Sprintf(
			"Hello %s,\n\n"+
				"Attached is the sales report for transactions with no assigned sales representative "+
				"for %s (%s). It contains %d transaction(s) that may need manual assignment.\n\n"+
				"This message was generated automatically.\n",
			recipient.Name, period.Label(), period.DateRange(), items,
		)
	}
	return fmt.Sprintf(
		"Hello %s,\n\n"+
			"Attached is your sales report for %s (%s), covering %d transaction(s) "+
			"assigned to you.\n\n"+
			"This message was generated automatically.\n",
		recipient.Name, period.Label(), period.DateRange(), items,
	)
}
