package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/salesops/sales-rep-mailer-go/internal/domain/entity"
	"github.com/salesops/sales-rep-mailer-go/internal/shared/types"
)

// Dublês de teste para os colaboradores externos do pipeline.

type fakeSource struct {
	rows []entity.RawTransactionRow
	err  error
}

func (s *fakeSource) FetchRows(ctx context.Context, period entity.ReportingPeriod) ([]entity.RawTransactionRow, error) {
	return s.rows, s.err
}

type fakeDirectory struct {
	admin        entity.Recipient
	adminErr     error
	reps         map[string]entity.Recipient
	customerReps map[string]string
}

func (d *fakeDirectory) LookupRepresentative(ctx context.Context, id string) (entity.Recipient, error) {
	rep, ok := d.reps[id]
	if !ok {
		return entity.Recipient{}, fmt.Errorf("representative %s: %w", id, types.ErrUnknownIdentity)
	}
	return rep, nil
}

func (d *fakeDirectory) AdminRecipient(ctx context.Context) (entity.Recipient, error) {
	if d.adminErr != nil {
		return entity.Recipient{}, d.adminErr
	}
	return d.admin, nil
}

func (d *fakeDirectory) CustomerDefaultRep(ctx context.Context, customerID string) (string, error) {
	repID, ok := d.customerReps[customerID]
	if !ok {
		return "", fmt.Errorf("customer %s: %w", customerID, types.ErrUnknownIdentity)
	}
	return repID, nil
}

type fakeArtifacts struct {
	mu    sync.Mutex
	saved map[string][]byte
	err   error
}

func newFakeArtifacts() *fakeArtifacts {
	return &fakeArtifacts{saved: make(map[string][]byte)}
}

func (a *fakeArtifacts) Save(ctx context.Context, name string, content []byte) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.saved[name] = content
	return "/artifacts/" + name, nil
}

type fakeMailer struct {
	mu     sync.Mutex
	sent   []entity.MailMessage
	failTo map[string]error
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{failTo: make(map[string]error)}
}

func (m *fakeMailer) Send(ctx context.Context, msg entity.MailMessage) error {
	if err, ok := m.failTo[msg.To]; ok {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *fakeMailer) sentTo(address string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range m.sent {
		if msg.To == address {
			return true
		}
	}
	return false
}

type fakeExport struct {
	failCSVFor string
}

func (e *fakeExport) RenderGroupCSV(group *entity.Group) ([]byte, error) {
	if e.failCSVFor != "" && group.Key == e.failCSVFor {
		return nil, fmt.Errorf("render blew up for %s", group.Key)
	}
	return []byte("csv for " + group.Key), nil
}

func (e *fakeExport) RenderGroupPDF(group *entity.Group, recipient entity.Recipient, period entity.ReportingPeriod) ([]byte, error) {
	return []byte("pdf for " + group.Key), nil
}

func (e *fakeExport) ExportOutcomesToCSV(outcomes []entity.DispatchOutcome, filename, outputDir string) (string, error) {
	return outputDir + "/" + filename + ".csv", nil
}

func (e *fakeExport) ExportOutcomesToJSON(outcomes []entity.DispatchOutcome, filename, outputDir string) (string, error) {
	return outputDir + "/" + filename + ".json", nil
}

type noopConsole struct{}

func (noopConsole) Print(a ...interface{})                  {}
func (noopConsole) Printf(format string, a ...interface{})  {}
func (noopConsole) Println(a ...interface{})                {}
func (noopConsole) LogInfo(format string, a ...interface{}) {}
func (noopConsole) LogWarning(string, ...interface{})       {}
func (noopConsole) LogError(string, ...interface{})         {}
func (noopConsole) LogSuccess(string, ...interface{})       {}

func (noopConsole) Status(message string) types.StatusHandle     { return noopStatus{} }
func (noopConsole) ProgressWithTotal(int) types.ProgressHandle   { return noopProgress{} }
func (noopConsole) CreateTable() types.TableInterface            { return &noopTable{} }

type noopStatus struct{}

func (noopStatus) Update(string) {}
func (noopStatus) Stop()         {}

type noopProgress struct{}

func (noopProgress) Increment() {}
func (noopProgress) Stop()      {}

type noopTable struct{}

func (*noopTable) AddColumn(string, ...interface{}) {}
func (*noopTable) AddRow(...interface{})            {}
func (*noopTable) Render() string                   { return "" }
