package entity

import (
	"fmt"
	"time"
)

// Period identifiers accepted on the CLI and in config files.
const (
	PeriodPreviousMonth = "previous-month"
	PeriodCurrentMonth  = "current-month"
)

// ReportingPeriod é a janela de calendário cujas transações entram no
// relatório. Start é inclusivo, End é exclusivo (primeiro dia do mês
// seguinte), convenção dos serviços de consulta por período.
type ReportingPeriod struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// PreviousMonth devolve o mês de calendário anterior a now.
func PreviousMonth(now time.Time) ReportingPeriod {
	firstOfThis := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	firstOfPrev := firstOfThis.AddDate(0, -1, 0)
	return ReportingPeriod{
		Name:  PeriodPreviousMonth,
		Start: firstOfPrev,
		End:   firstOfThis,
	}
}

// CurrentMonth devolve o mês de calendário corrente de now.
func CurrentMonth(now time.Time) ReportingPeriod {
	firstOfThis := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return ReportingPeriod{
		Name:  PeriodCurrentMonth,
		Start: firstOfThis,
		End:   firstOfThis.AddDate(0, 1, 0),
	}
}

// Label devolve o rótulo legível do período, usado em assuntos de e-mail e
// nomes de arquivo. Ex.: "July 2026".
func (p ReportingPeriod) Label() string {
	return p.Start.Format("January 2006")
}

// DateRange devolve a janela como datas. Ex.: "2026-07-01 to 2026-07-31".
func (p ReportingPeriod) DateRange() string {
	lastDay := p.End.AddDate(0, 0, -1)
	return fmt.Sprintf("%s to %s", p.Start.Format("2006-01-02"), lastDay.Format("2006-01-02"))
}

// Contains reporta se t cai dentro da janela do período.
func (p ReportingPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}
