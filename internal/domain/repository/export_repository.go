package repository

import (
	"github.com/salesops/sales-rep-mailer-go/internal/domain/entity"
)

// ExportRepository renderiza relatórios por grupo e exporta a trilha de
// auditoria dos despachos.
type ExportRepository interface {
	// RenderGroupCSV serializa os itens de um grupo em texto CSV com linha
	// de cabeçalho. Determinístico: a mesma entrada produz bytes idênticos.
	RenderGroupCSV(group *entity.Group) ([]byte, error)

	// RenderGroupPDF produz o resumo PDF opcional de um grupo.
	RenderGroupPDF(group *entity.Group, recipient entity.Recipient, period entity.ReportingPeriod) ([]byte, error)

	// Outcome audit trail
	ExportOutcomesToCSV(outcomes []entity.DispatchOutcome, filename, outputDir string) (string, error)
	ExportOutcomesToJSON(outcomes []entity.DispatchOutcome, filename, outputDir string) (string, error)
}
