package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/salesops/sales-rep-mailer-go/internal/domain/entity"
	"github.com/salesops/sales-rep-mailer-go/internal/domain/repository"
	"github.com/salesops/sales-rep-mailer-go/internal/shared/types"
)

// Options são as opções resolvidas de uma execução (config mesclada com as
// flags da CLI).
type Options struct {
	Period                entity.ReportingPeriod
	ReportName            string
	ReportTypes           []string
	Parallel              int
	DispatchTimeout       time.Duration
	FallbackToCustomerRep bool
	OutcomeLog            bool
	OutcomeTypes          []string
	OutcomeDir            string
}

// ResolveOptions mescla o arquivo de configuração com os argumentos da CLI
// (flag explícita vence) e aplica os defaults.
func ResolveOptions(cfg *types.Config, args *types.CLIArgs, now time.Time) (Options, error) {
	opts := Options{
		ReportName:            cfg.ReportName,
		ReportTypes:           cfg.ReportType,
		Parallel:              cfg.Parallel,
		FallbackToCustomerRep: cfg.Policy.FallbackToCustomerRep,
		OutcomeLog:            cfg.OutcomeLog,
		OutcomeTypes:          cfg.OutcomeType,
		OutcomeDir:            cfg.Dir,
	}

	if args.ReportName != "" {
		opts.ReportName = args.ReportName
	}
	if opts.ReportName == "" {
		opts.ReportName = "sales_report"
	}

	if len(args.ReportType) > 0 {
		opts.ReportTypes = args.ReportType
	}
	if len(opts.ReportTypes) == 0 {
		opts.ReportTypes = []string{"csv"}
	}

	if args.Parallel > 0 {
		opts.Parallel = args.Parallel
	}
	if opts.Parallel <= 0 {
		opts.Parallel = 4
	}

	if args.OutcomeLog {
		opts.OutcomeLog = true
	}
	if len(args.OutcomeType) > 0 {
		opts.OutcomeTypes = args.OutcomeType
	}
	if len(opts.OutcomeTypes) == 0 {
		opts.OutcomeTypes = []string{"csv"}
	}
	if args.Dir != "" {
		opts.OutcomeDir = args.Dir
	}

	opts.DispatchTimeout = 30 * time.Second
	if cfg.Policy.DispatchTimeoutSeconds > 0 {
		opts.DispatchTimeout = time.Duration(cfg.Policy.DispatchTimeoutSeconds) * time.Second
	}

	periodName := cfg.Period
	if args.Period != "" {
		periodName = args.Period
	}
	switch periodName {
	case "", entity.PeriodPreviousMonth:
		opts.Period = entity.PreviousMonth(now)
	case entity.PeriodCurrentMonth:
		opts.Period = entity.CurrentMonth(now)
	default:
		return Options{}, fmt.Errorf("%w (got %q)", types.ErrUnknownPeriod, periodName)
	}

	return opts, nil
}

// ReportUseCase orquestra o pipeline completo: fonte de linhas ->
// normalização -> acumulação por chave -> renderização -> despacho por
// grupo.
type ReportUseCase struct {
	source     repository.TransactionRepository
	directory  repository.DirectoryRepository
	artifacts  repository.ArtifactRepository
	mailer     repository.MailRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
	opts       Options
}

// NewReportUseCase cria o caso de uso com todos os colaboradores externos.
func NewReportUseCase(
	source repository.TransactionRepository,
	directory repository.DirectoryRepository,
	artifacts repository.ArtifactRepository,
	mailer repository.MailRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
	opts Options,
) *ReportUseCase {
	return &ReportUseCase{
		source:     source,
		directory:  directory,
		artifacts:  artifacts,
		mailer:     mailer,
		exportRepo: exportRepo,
		console:    console,
		opts:       opts,
	}
}

// Run executa o lote inteiro e devolve o outcome de cada grupo. A única
// falha fatal é não conseguir obter as linhas da fonte; tudo o mais fica
// contido na linha ou no grupo onde aconteceu.
func (uc *ReportUseCase) Run(ctx context.Context) ([]entity.DispatchOutcome, error) {
	status := uc.console.Status(fmt.Sprintf("Fetching transactions for %s...", uc.opts.Period.Label()))

	rows, err := uc.source.FetchRows(ctx, uc.opts.Period)
	if err != nil {
		status.Stop()
		return nil, fmt.Errorf("failed to fetch transaction rows: %w", err)
	}

	status.Update("Normalizing and grouping transactions...")

	normalizer := NewNormalizer(uc.directory, uc.opts.FallbackToCustomerRep)
	accumulator := NewAccumulator()
	skipped := 0

	for i, row := range rows {
		item, err := normalizer.Normalize(ctx, row)
		if err != nil {
			// Contenção por linha: loga e segue para a próxima.
			uc.console.LogWarning("Skipping malformed row %d: %s", i+1, err)
			skipped++
			continue
		}
		accumulator.Add(item)
	}

	groups := accumulator.Finalize()
	status.Stop()

	uc.console.LogInfo("Fetched %d row(s): %d grouped into %d report(s), %d skipped",
		len(rows), accumulator.Items(), len(groups), skipped)

	if len(groups) == 0 {
		uc.console.LogWarning("No reports to dispatch for %s", uc.opts.Period.Label())
		return nil, nil
	}

	// Fase de despacho: cada grupo é independente, então renderização e
	// entrega correm em paralelo limitado (serviços de e-mail estrangulam).
	outcomes := make([]entity.DispatchOutcome, len(groups))
	progress := uc.console.ProgressWithTotal(len(groups))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.opts.Parallel)
	for i, group := range groups {
		i, group := i, group
		g.Go(func() error {
			outcomes[i] = uc.dispatchGroup(gctx, group)
			progress.Increment()
			// Falha de um grupo nunca propaga: o outcome já a registrou.
			return nil
		})
	}
	_ = g.Wait()
	progress.Stop()

	uc.displaySummary(outcomes)

	if uc.opts.OutcomeLog {
		uc.exportOutcomes(outcomes)
	}

	uc.console.LogSuccess("Completed: all %d group(s) attempted", len(groups))
	return outcomes, nil
}

// dispatchGroup leva um grupo de Rendered até um estado terminal:
// Delivered, Skipped ou Failed. Nunca devolve erro — qualquer falha vira
// parte do outcome.
func (uc *ReportUseCase) dispatchGroup(ctx context.Context, group *entity.Group) entity.DispatchOutcome {
	start := time.Now()
	outcome := entity.DispatchOutcome{
		GroupKey: group.Key,
		Items:    len(group.Items),
	}

	recipient := uc.resolveRecipient(ctx, group)
	outcome.Recipient = recipient
	if recipient.Kind == entity.RecipientAdmin && recipient.Email == "" {
		outcome.Status = entity.DispatchFailed
		outcome.Reason = types.ErrNoAdminRecipient.Error()
		outcome.Duration = time.Since(start)
		return outcome
	}

	report, err := uc.renderReport(group, recipient)
	if err != nil {
		uc.console.LogError("Render failed for group %s: %s", group.Key, err)
		outcome.Status = entity.DispatchFailed
		outcome.Reason = fmt.Sprintf("render failed: %s", err)
		outcome.Duration = time.Since(start)
		return outcome
	}

	if err := uc.persistArtifacts(ctx, report); err != nil {
		uc.console.LogError("Artifact store failed for group %s: %s", group.Key, err)
		outcome.Status = entity.DispatchFailed
		outcome.Reason = fmt.Sprintf("artifact store failed: %s", err)
		outcome.Duration = time.Since(start)
		return outcome
	}
	outcome.Artifacts = report.Artifacts

	if recipient.Email == "" {
		uc.console.LogWarning("Skipping group %s: %s", group.Key, types.ErrNoRecipientAddress)
		outcome.Status = entity.DispatchSkipped
		outcome.Reason = types.ErrNoRecipientAddress.Error()
		outcome.Duration = time.Since(start)
		return outcome
	}

	msg := entity.MailMessage{
		To:      recipient.Email,
		ToName:  recipient.Name,
		Subject: composeSubject(recipient, uc.opts.Period),
		Body:    composeBody(recipient, uc.opts.Period, len(group.Items)),
		Attachments: []entity.Attachment{
			{Name: artifactName(uc.opts.ReportName, group.Key, "csv"), ContentType: "text/csv", Content: report.CSV},
		},
	}
	if len(report.PDF) > 0 {
		msg.Attachments = append(msg.Attachments, entity.Attachment{
			Name:        artifactName(uc.opts.ReportName, group.Key, "pdf"),
			ContentType: "application/pdf",
			Content:     report.PDF,
		})
	}

	sendCtx, cancel := context.WithTimeout(ctx, uc.opts.DispatchTimeout)
	defer cancel()

	if err := uc.mailer.Send(sendCtx, msg); err != nil {
		// Falha de entrega é recuperável: vira Skipped, sem retry nesta
		// execução, e os demais grupos seguem normalmente.
		uc.console.LogWarning("Delivery skipped for group %s: %s", group.Key, err)
		outcome.Status = entity.DispatchSkipped
		outcome.Reason = err.Error()
		outcome.Duration = time.Since(start)
		return outcome
	}

	outcome.Status = entity.DispatchDelivered
	outcome.Duration = time.Since(start)
	return outcome
}

// resolveRecipient determina quem recebe o relatório do grupo: o
// administrador para o sentinela, senão o representante da chave. Falha de
// consulta não aborta: cai no rótulo genérico sem endereço (o grupo vira
// Skipped adiante).
func (uc *ReportUseCase) resolveRecipient(ctx context.Context, group *entity.Group) entity.Recipient {
	if group.IsUnassigned() {
		admin, err := uc.directory.AdminRecipient(ctx)
		if err != nil {
			uc.console.LogError("Could not resolve administrator recipient: %s", err)
			return entity.Recipient{Kind: entity.RecipientAdmin, Name: "Administrator"}
		}
		return admin
	}

	recipient, err := uc.directory.LookupRepresentative(ctx, group.Key)
	if err != nil {
		uc.console.LogWarning("Representative lookup failed for %s: %s", group.Key, err)
		return entity.Recipient{
			Kind: entity.RecipientRepresentative,
			ID:   group.Key,
			Name: entity.FallbackRepresentativeName,
		}
	}
	if recipient.Name == "" {
		recipient.Name = entity.FallbackRepresentativeName
	}
	return recipient
}

// renderReport produz o CSV do grupo (obrigatório) e o resumo PDF quando
// pedido. Falha no PDF degrada para só CSV; falha no CSV falha o grupo.
func (uc *ReportUseCase) renderReport(group *entity.Group, recipient entity.Recipient) (*entity.Report, error) {
	csvData, err := uc.exportRepo.RenderGroupCSV(group)
	if err != nil {
		return nil, err
	}

	report := &entity.Report{
		Group:     group,
		Recipient: recipient,
		CSV:       csvData,
	}

	if containsType(uc.opts.ReportTypes, "pdf") {
		pdfData, err := uc.exportRepo.RenderGroupPDF(group, recipient, uc.opts.Period)
		if err != nil {
			uc.console.LogWarning("PDF summary failed for group %s, sending CSV only: %s", group.Key, err)
		} else {
			report.PDF = pdfData
		}
	}

	return report, nil
}

// persistArtifacts grava os artefatos no file store e anota os handles no
// relatório.
func (uc *ReportUseCase) persistArtifacts(ctx context.Context, report *entity.Report) error {
	handle, err := uc.artifacts.Save(ctx, artifactName(uc.opts.ReportName, report.Group.Key, "csv"), report.CSV)
	if err != nil {
		return err
	}
	report.Artifacts = append(report.Artifacts, handle)

	if len(report.PDF) > 0 {
		handle, err := uc.artifacts.Save(ctx, artifactName(uc.opts.ReportName, report.Group.Key, "pdf"), report.PDF)
		if err != nil {
			return err
		}
		report.Artifacts = append(report.Artifacts, handle)
	}

	return nil
}

// displaySummary imprime a tabela de outcomes por grupo.
func (uc *ReportUseCase) displaySummary(outcomes []entity.DispatchOutcome) {
	table := uc.console.CreateTable()
	table.AddColumn("Group")
	table.AddColumn("Recipient")
	table.AddColumn("Items")
	table.AddColumn("Status")
	table.AddColumn("Reason")

	delivered, skippedCount, failed := 0, 0, 0
	for _, o := range outcomes {
		switch o.Status {
		case entity.DispatchDelivered:
			delivered++
		case entity.DispatchSkipped:
			skippedCount++
		case entity.DispatchFailed:
			failed++
		}
		table.AddRow(o.GroupKey, o.Recipient.Name, o.Items, string(o.Status), o.Reason)
	}

	uc.console.Print(table.Render())
	uc.console.LogInfo("Dispatch summary: %d delivered, %d skipped, %d failed", delivered, skippedCount, failed)
}

// exportOutcomes grava a trilha de auditoria nos formatos pedidos.
func (uc *ReportUseCase) exportOutcomes(outcomes []entity.DispatchOutcome) {
	base := uc.opts.ReportName + "_outcomes"
	for _, format := range uc.opts.OutcomeTypes {
		switch format {
		case "csv":
			path, err := uc.exportRepo.ExportOutcomesToCSV(outcomes, base, uc.opts.OutcomeDir)
			if err != nil {
				uc.console.LogError("Failed to export outcome log to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported outcome log to CSV: %s", path)
			}
		case "json":
			path, err := uc.exportRepo.ExportOutcomesToJSON(outcomes, base, uc.opts.OutcomeDir)
			if err != nil {
				uc.console.LogError("Failed to export outcome log to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported outcome log to JSON: %s", path)
			}
		default:
			uc.console.LogWarning("Unknown outcome log format: %s", format)
		}
	}
}

// artifactName monta o nome de arquivo de um artefato de grupo.
func artifactName(base, groupKey, ext string) string {
	return fmt.Sprintf("%s_%s.%s", base, sanitizeKey(groupKey), ext)
}

// sanitizeKey troca caracteres fora de [A-Za-z0-9_-] por '-' para uso em
// nomes de arquivo e chaves de objeto.
func sanitizeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}

func containsType(list []string, want string) bool {
	for _, t := range list {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}
