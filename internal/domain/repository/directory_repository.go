package repository

import (
	"context"

	"github.com/salesops/sales-rep-mailer-go/internal/domain/entity"
)

// DirectoryRepository defines the interface for identity lookups.
// Consultas podem falhar por identificador sem abortar o lote; o chamador
// usa um rótulo genérico como fallback.
type DirectoryRepository interface {
	// LookupRepresentative resolve nome e endereço de contato de um
	// representante pelo seu identificador.
	LookupRepresentative(ctx context.Context, id string) (entity.Recipient, error)

	// AdminRecipient devolve a identidade do administrador que recebe o
	// grupo "Unassigned".
	AdminRecipient(ctx context.Context) (entity.Recipient, error)

	// CustomerDefaultRep devolve o representante padrão de um cliente,
	// usado apenas pela política de fallback do normalizador.
	CustomerDefaultRep(ctx context.Context, customerID string) (string, error)
}
