package entity

import "time"

// DispatchStatus é o estado terminal do despacho de um grupo.
// Máquina de estados por grupo: Accumulating -> Rendered -> terminal.
// Não há transição de volta nem retry automático dentro de uma execução.
type DispatchStatus string

const (
	DispatchDelivered DispatchStatus = "delivered"
	DispatchSkipped   DispatchStatus = "skipped"
	DispatchFailed    DispatchStatus = "failed"
)

// DispatchOutcome registra o resultado por grupo, usado apenas para a trilha
// de auditoria.
type DispatchOutcome struct {
	GroupKey  string         `json:"group_key"`
	Recipient Recipient      `json:"recipient"`
	Status    DispatchStatus `json:"status"`
	Reason    string         `json:"reason,omitempty"`
	Items     int            `json:"items"`
	Artifacts []string       `json:"artifacts,omitempty"`
	Duration  time.Duration  `json:"duration"`
}
