package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesops/sales-rep-mailer-go/internal/domain/entity"
)

func writeSourceFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func julyPeriod() entity.ReportingPeriod {
	return entity.PreviousMonth(time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC))
}

func TestFetchRowsParsesColumns(t *testing.T) {
	path := writeSourceFile(t, `date,document_number,customer_id,customer_name,customer_email,amount,rep_id,rep_name
2026-07-03,INV-001,77,"Acme, Inc.",billing@acme.example,100.00,12,Jo Field
2026-07-10,INV-002,79,Initech,,42.00,,
`)

	rows, err := NewCSVSource(path).FetchRows(context.Background(), julyPeriod())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "INV-001", rows[0].DocumentNumber)
	require.NotNil(t, rows[0].Customer)
	assert.Equal(t, "77", rows[0].Customer.ID)
	assert.Equal(t, "Acme, Inc.", rows[0].Customer.Name)
	assert.Equal(t, "billing@acme.example", rows[0].CustomerEmail)
	assert.Equal(t, "100.00", rows[0].Amount)
	require.NotNil(t, rows[0].Representative)
	assert.Equal(t, "12", rows[0].Representative.ID)

	// Sem rep_id/rep_name: Representative fica nulo
	assert.Nil(t, rows[1].Representative)
	assert.Equal(t, "", rows[1].CustomerEmail)
}

func TestFetchRowsHeaderIsCaseInsensitive(t *testing.T) {
	path := writeSourceFile(t, `Date,Document_Number,Customer_ID,Customer_Name,Customer_Email,Amount,Rep_ID,Rep_Name
2026-07-03,INV-001,77,Acme,a@b.example,10.00,12,Jo
`)

	rows, err := NewCSVSource(path).FetchRows(context.Background(), julyPeriod())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "INV-001", rows[0].DocumentNumber)
}

func TestFetchRowsFiltersByPeriod(t *testing.T) {
	path := writeSourceFile(t, `date,document_number,amount
2026-06-30,INV-OLD,1.00
2026-07-01,INV-IN,2.00
2026-07-31,INV-IN-TOO,3.00
2026-08-01,INV-NEW,4.00
`)

	rows, err := NewCSVSource(path).FetchRows(context.Background(), julyPeriod())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "INV-IN", rows[0].DocumentNumber)
	assert.Equal(t, "INV-IN-TOO", rows[1].DocumentNumber)
}

func TestFetchRowsKeepsRowsWithUnparseableDate(t *testing.T) {
	// Sem data parseável o filtro de período não se aplica; a decisão de
	// pular a linha fica com o normalizador.
	path := writeSourceFile(t, `date,document_number,amount
soon,INV-001,1.00
,INV-002,2.00
`)

	rows, err := NewCSVSource(path).FetchRows(context.Background(), julyPeriod())
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestFetchRowsSkipsMalformedRecords(t *testing.T) {
	path := writeSourceFile(t, `date,document_number,customer_name,amount
2026-07-03,INV-001,Acme,100.00
2026-07-04,INV-BAD,"unterminated,1.00
2026-07-05,INV-002,Globex,50.00
`)

	rows, err := NewCSVSource(path).FetchRows(context.Background(), julyPeriod())
	require.NoError(t, err)

	docs := make([]string, len(rows))
	for i, r := range rows {
		docs[i] = r.DocumentNumber
	}
	assert.Contains(t, docs, "INV-001")
	assert.NotContains(t, docs, "INV-BAD")
}

func TestFetchRowsMissingFileIsFatal(t *testing.T) {
	_, err := NewCSVSource("/nonexistent/transactions.csv").FetchRows(context.Background(), julyPeriod())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error opening transaction source")
}

func TestFetchRowsHonorsContextCancellation(t *testing.T) {
	path := writeSourceFile(t, `date,document_number,amount
2026-07-03,INV-001,1.00
`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCSVSource(path).FetchRows(ctx, julyPeriod())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
