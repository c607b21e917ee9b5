package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/salesops/sales-rep-mailer-go/internal/domain/entity"
	"github.com/salesops/sales-rep-mailer-go/internal/domain/repository"
)

// ReportHeader é a linha de cabeçalho fixa do CSV por representante.
var ReportHeader = []string{"Customer Name", "Customer Email", "Document Number", "Sales Amount"}

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// RenderGroupCSV serializa os itens de um grupo na ordem de acumulação.
// O escaping acontece exatamente aqui e apenas aqui: encoding/csv coloca
// entre aspas qualquer campo que contenha o delimitador, então um valor como
// `Acme, Inc.` sai como `"Acme, Inc."` sem risco de aspas duplicadas — os
// LineItems guardam valores crus.
func (r *ExportRepositoryImpl) RenderGroupCSV(group *entity.Group) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(ReportHeader); err != nil {
		return nil, fmt.Errorf("error writing CSV header: %w", err)
	}

	for i, item := range group.Items {
		record := []string{
			item.CustomerName,
			item.CustomerEmail,
			item.DocumentNumber,
			item.Amount,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("error writing CSV record %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("error flushing CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderGroupPDF produz o resumo PDF opcional de um grupo, anexado junto
// do CSV quando --report-type inclui "pdf".
func (r *ExportRepositoryImpl) RenderGroupPDF(group *entity.Group, recipient entity.Recipient, period entity.ReportingPeriod) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  Sales Report: %s", recipient.Name)), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Period: %s (%s)", period.Label(), period.DateRange())), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	// Tabela de transações
	colWidths := []float64{60, 55, 40, 35}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range ReportHeader {
		pdf.CellFormat(colWidths[i], 7, tr(h), "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	for _, item := range group.Items {
		cells := []string{item.CustomerName, item.CustomerEmail, item.DocumentNumber, item.Amount}
		for i, c := range cells {
			if len(c) > 40 {
				c = c[:37] + "..."
			}
			pdf.CellFormat(colWidths[i], 6, tr(c), "B", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Transactions: %d", len(group.Items))))

	// Rodapé
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Generated by Sales Rep Mailer | %s", time.Now().Format("2006-01-02"))), "", 0, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error rendering PDF report: %w", err)
	}
	return buf.Bytes(), nil
}

// --- Trilha de auditoria dos despachos ---

func (r *ExportRepositoryImpl) ExportOutcomesToCSV(outcomes []entity.DispatchOutcome, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating outcome CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"Group", "Recipient", "Email", "Status", "Reason", "Items", "Artifacts", "Duration"}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, o := range outcomes {
		record := []string{
			o.GroupKey,
			o.Recipient.Name,
			o.Recipient.Email,
			string(o.Status),
			o.Reason,
			fmt.Sprintf("%d", o.Items),
			joinLines(o.Artifacts),
			o.Duration.Round(time.Millisecond).String(),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportOutcomesToJSON(outcomes []entity.DispatchOutcome, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating outcome JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(outcomes); err != nil {
		return "", fmt.Errorf("error encoding outcome JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
