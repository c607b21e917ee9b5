package main

import (
	"fmt"
	"os"

	"github.com/salesops/sales-rep-mailer-go/internal/adapter/driven/config"
	"github.com/salesops/sales-rep-mailer-go/internal/adapter/driven/export"
	"github.com/salesops/sales-rep-mailer-go/internal/adapter/driving/cli"
	"github.com/salesops/sales-rep-mailer-go/pkg/console"
	"github.com/salesops/sales-rep-mailer-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios que não dependem da configuração carregada;
	// os adaptadores de fonte, e-mail e artefatos são montados após a leitura
	// do arquivo de configuração.
	configRepo := config.NewConfigRepository()
	exportRepo := export.NewExportRepository()
	consoleImpl := console.NewConsole()

	app.SetConfigRepository(configRepo)
	app.SetExportRepository(exportRepo)
	app.SetConsole(consoleImpl)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
