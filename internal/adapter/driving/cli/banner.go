package cli

import (
	"fmt"

	"github.com/salesops/sales-rep-mailer-go/pkg/console"
	"github.com/salesops/sales-rep-mailer-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$            /$$                     /$$$$$$$
        /$$__  $$          | $$                    | $$__  $$
       | $$  \__/  /$$$$$$ | $$  /$$$$$$   /$$$$$$$| $$  \ $$  /$$$$$$   /$$$$$$
       |  $$$$$$  |____  $$| $$ /$$__  $$ /$$_____/| $$$$$$$/ /$$__  $$ /$$__  $$
        \____  $$  /$$$$$$$| $$| $$$$$$$$|  $$$$$$ | $$__  $$| $$$$$$$$| $$  \ $$
        /$$  \ $$ /$$__  $$| $$| $$_____/ \____  $$| $$  \ $$| $$_____/| $$  | $$
       |  $$$$$$/|  $$$$$$$| $$|  $$$$$$$ /$$$$$$$/| $$  | $$|  $$$$$$$| $$$$$$$/
        \______/  \_______/|__/ \_______/|_______/ |__/  |__/ \_______/| $$____/
                                                                       | $$
                                                                       | $$
                                                                       |__/
        `
	fmt.Println(console.BrightCyan(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(console.BrightBlue(fmt.Sprintf("Sales Rep Mailer CLI (v%s)", formattedVersion)))
}
