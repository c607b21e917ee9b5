package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgsLeavesDirEmptyWhenFlagAbsent(t *testing.T) {
	app := NewCLIApp("0.0.0-dev")
	require.NoError(t, app.rootCmd.ParseFlags([]string{"--input", "transactions.csv"}))

	args, err := app.parseArgs()
	require.NoError(t, err)

	// Sem --dir o valor do arquivo de configuração deve prevalecer adiante
	assert.Empty(t, args.Dir)
	assert.Equal(t, "transactions.csv", args.Input)
}

func TestParseArgsResolvesDirFlagToAbsolutePath(t *testing.T) {
	app := NewCLIApp("0.0.0-dev")
	require.NoError(t, app.rootCmd.ParseFlags([]string{"--dir", "out"}))

	args, err := app.parseArgs()
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(args.Dir))
	assert.Equal(t, "out", filepath.Base(args.Dir))
}

func TestParseArgsCollectsFlags(t *testing.T) {
	app := NewCLIApp("0.0.0-dev")
	require.NoError(t, app.rootCmd.ParseFlags([]string{
		"--config-file", "config.toml",
		"--period", "current-month",
		"--report-type", "csv,pdf",
		"--admin-email", "admin@corp.example",
		"--parallel", "2",
		"--dry-run",
		"--outcome-log",
	}))

	args, err := app.parseArgs()
	require.NoError(t, err)

	assert.Equal(t, "config.toml", args.ConfigFile)
	assert.Equal(t, "current-month", args.Period)
	assert.Equal(t, []string{"csv", "pdf"}, args.ReportType)
	assert.Equal(t, "admin@corp.example", args.AdminEmail)
	assert.Equal(t, 2, args.Parallel)
	assert.True(t, args.DryRun)
	assert.True(t, args.OutcomeLog)
}
