package cli

import (
	"context"
	"path/filepath"
	"time"

	"github.com/salesops/sales-rep-mailer-go/pkg/version"

	"github.com/salesops/sales-rep-mailer-go/internal/adapter/driven/artifact"
	"github.com/salesops/sales-rep-mailer-go/internal/adapter/driven/directory"
	"github.com/salesops/sales-rep-mailer-go/internal/adapter/driven/mail"
	"github.com/salesops/sales-rep-mailer-go/internal/adapter/driven/source"
	"github.com/salesops/sales-rep-mailer-go/internal/application/usecase"
	"github.com/salesops/sales-rep-mailer-go/internal/domain/repository"
	"github.com/salesops/sales-rep-mailer-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	configRepo repository.ConfigRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
	version    string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "sales-rep-mailer",
		Short:   "Sales Rep Mailer CLI",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	// Personaliza a template para incluir mais informações de versão
	rootCmd.SetVersionTemplate(`{{printf "Sales Rep Mailer version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("input", "i", "", "Path to the CSV file with the period's sales transactions")
	rootCmd.PersistentFlags().StringP("period", "p", "", "Reporting period: previous-month (default) or current-month")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report files (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Specify report types to attach: csv, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save report artifacts and outcome logs (default: current directory)")
	rootCmd.PersistentFlags().StringP("admin-email", "a", "", "Administrator address for the Unassigned report (overrides config)")
	rootCmd.PersistentFlags().Int("parallel", 0, "Maximum number of groups dispatched concurrently")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Render and store reports but only log deliveries instead of sending")
	rootCmd.PersistentFlags().Bool("outcome-log", false, "Export an audit trail of per-group dispatch outcomes")
	rootCmd.PersistentFlags().StringSlice("outcome-type", nil, "Outcome log formats: csv, json")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	input, _ := app.rootCmd.Flags().GetString("input")
	period, _ := app.rootCmd.Flags().GetString("period")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")
	adminEmail, _ := app.rootCmd.Flags().GetString("admin-email")
	parallel, _ := app.rootCmd.Flags().GetInt("parallel")
	dryRun, _ := app.rootCmd.Flags().GetBool("dry-run")
	outcomeLog, _ := app.rootCmd.Flags().GetBool("outcome-log")
	outcomeType, _ := app.rootCmd.Flags().GetStringSlice("outcome-type")

	// Dir só é preenchido quando a flag foi realmente passada; vazio deixa
	// valer o `dir` do arquivo de configuração (ou o diretório corrente).
	if app.rootCmd.Flags().Changed("dir") {
		// Convert to absolute path
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:  configFile,
		Input:       input,
		Period:      period,
		ReportName:  reportName,
		ReportType:  reportType,
		Dir:         dir,
		AdminEmail:  adminEmail,
		Parallel:    parallel,
		DryRun:      dryRun,
		OutcomeLog:  outcomeLog,
		OutcomeType: outcomeType,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	// Lida com o arquivo de configuração, se especificado
	cfg := &types.Config{}
	if cliArgs.ConfigFile != "" {
		loaded, err := app.configRepo.LoadConfigFile(cliArgs.ConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Overrides de linha de comando que não passam por ResolveOptions
	if cliArgs.AdminEmail != "" {
		cfg.Admin.Email = cliArgs.AdminEmail
	}
	if cliArgs.Input != "" {
		cfg.Input = cliArgs.Input
	}
	if cliArgs.DryRun {
		cfg.DryRun = true
	}
	if cfg.Input == "" {
		return types.ErrNoInputSource
	}

	opts, err := usecase.ResolveOptions(cfg, cliArgs, time.Now())
	if err != nil {
		return err
	}

	// Monta os adaptadores de saída a partir da configuração carregada
	rowSource := source.NewCSVSource(cfg.Input)
	dirRepo := directory.NewConfigDirectory(cfg)

	var artifactRepo repository.ArtifactRepository
	if cfg.Artifact.Backend == "s3" {
		artifactRepo = artifact.NewS3Store(cfg.Artifact)
	} else {
		artifactDir := cfg.Artifact.Dir
		if artifactDir == "" {
			artifactDir = cliArgs.Dir
		}
		artifactRepo = artifact.NewLocalStore(artifactDir)
	}

	var mailer repository.MailRepository
	if cfg.DryRun {
		mailer = mail.NewDryRunMailer(app.console)
	} else {
		mailer = mail.NewSMTPMailer(cfg.SMTP)
	}

	reportUseCase := usecase.NewReportUseCase(
		rowSource,
		dirRepo,
		artifactRepo,
		mailer,
		app.exportRepo,
		app.console,
		opts,
	)

	ctx := context.Background()
	_, err = reportUseCase.Run(ctx)
	return err
}

// SetConfigRepository sets the configuration repository for the CLI app.
func (app *CLIApp) SetConfigRepository(repo repository.ConfigRepository) {
	app.configRepo = repo
}

// SetExportRepository sets the export repository for the CLI app.
func (app *CLIApp) SetExportRepository(repo repository.ExportRepository) {
	app.exportRepo = repo
}

// SetConsole sets the console implementation for the CLI app.
func (app *CLIApp) SetConsole(console types.ConsoleInterface) {
	app.console = console
}
