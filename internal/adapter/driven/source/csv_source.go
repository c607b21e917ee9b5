package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/salesops/sales-rep-mailer-go/internal/domain/entity"
	"github.com/salesops/sales-rep-mailer-go/internal/domain/repository"
)

// CSVSource implementa o TransactionRepository sobre um extrato CSV de
// transações exportado da plataforma (o serviço de consulta real fica do
// lado do ERP; este adaptador cobre execuções locais e agendadas via cron).
//
// Colunas reconhecidas (cabeçalho obrigatório, nomes case-insensitive):
// date, document_number, customer_id, customer_name, customer_email,
// amount, rep_id, rep_name. Colunas extras são ignoradas.
type CSVSource struct {
	path string
}

// NewCSVSource cria uma fonte de transações a partir de um arquivo CSV.
func NewCSVSource(path string) repository.TransactionRepository {
	return &CSVSource{path: path}
}

// FetchRows lê o extrato inteiro, filtrando pela janela do período quando a
// coluna de data está presente e parseável. Registros com erro de parse CSV
// são pulados (contenção por linha); falha em abrir o arquivo é fatal para a
// execução.
func (s *CSVSource) FetchRows(ctx context.Context, period entity.ReportingPeriod) ([]entity.RawTransactionRow, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("error opening transaction source %s: %w", s.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading transaction source header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(record []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var rows []entity.RawTransactionRow
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Linha com quoting inválido: pula e segue; uma linha ruim
			// nunca aborta o lote.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, fmt.Errorf("error reading transaction source: %w", err)
		}

		// Filtro de período: só aplicado quando a data é parseável.
		if dateStr := field(record, "date"); dateStr != "" {
			if t, perr := time.Parse("2006-01-02", dateStr); perr == nil && !period.Contains(t) {
				continue
			}
		}

		row := entity.RawTransactionRow{
			DocumentNumber: field(record, "document_number"),
			CustomerEmail:  field(record, "customer_email"),
			Amount:         field(record, "amount"),
		}
		if id, name := field(record, "customer_id"), field(record, "customer_name"); id != "" || name != "" {
			row.Customer = &entity.EntityRef{ID: id, Name: name}
		}
		if id, name := field(record, "rep_id"), field(record, "rep_name"); id != "" || name != "" {
			row.Representative = &entity.EntityRef{ID: id, Name: name}
		}

		rows = append(rows, row)
	}

	return rows, nil
}
