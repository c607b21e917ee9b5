package directory

import (
	"context"
	"fmt"

	"github.com/salesops/sales-rep-mailer-go/internal/domain/entity"
	"github.com/salesops/sales-rep-mailer-go/internal/domain/repository"
	"github.com/salesops/sales-rep-mailer-go/internal/shared/types"
)

// ConfigDirectory implementa o DirectoryRepository a partir das entradas do
// arquivo de configuração. Na plataforma de origem o diretório era o cadastro
// de funcionários do ERP; aqui é um colaborador substituível por qualquer
// backend.
type ConfigDirectory struct {
	admin     types.AdminConfig
	reps      map[string]types.RepresentativeConfig
	customers map[string]string
}

// NewConfigDirectory indexa os representantes e clientes configurados.
func NewConfigDirectory(cfg *types.Config) repository.DirectoryRepository {
	reps := make(map[string]types.RepresentativeConfig, len(cfg.Representatives))
	for _, rep := range cfg.Representatives {
		reps[rep.ID] = rep
	}
	customers := make(map[string]string, len(cfg.Customers))
	for _, c := range cfg.Customers {
		customers[c.ID] = c.RepID
	}
	return &ConfigDirectory{
		admin:     cfg.Admin,
		reps:      reps,
		customers: customers,
	}
}

func (d *ConfigDirectory) LookupRepresentative(ctx context.Context, id string) (entity.Recipient, error) {
	rep, ok := d.reps[id]
	if !ok {
		return entity.Recipient{}, fmt.Errorf("representative %s: %w", id, types.ErrUnknownIdentity)
	}
	return entity.Recipient{
		Kind:  entity.RecipientRepresentative,
		ID:    rep.ID,
		Name:  rep.Name,
		Email: rep.Email,
	}, nil
}

func (d *ConfigDirectory) AdminRecipient(ctx context.Context) (entity.Recipient, error) {
	if d.admin.Email == "" {
		return entity.Recipient{}, types.ErrNoAdminRecipient
	}
	name := d.admin.Name
	if name == "" {
		name = "Administrator"
	}
	return entity.Recipient{
		Kind:  entity.RecipientAdmin,
		ID:    d.admin.ID,
		Name:  name,
		Email: d.admin.Email,
	}, nil
}

func (d *ConfigDirectory) CustomerDefaultRep(ctx context.Context, customerID string) (string, error) {
	repID, ok := d.customers[customerID]
	if !ok || repID == "" {
		return "", fmt.Errorf("customer %s has no default representative: %w", customerID, types.ErrUnknownIdentity)
	}
	return repID, nil
}
