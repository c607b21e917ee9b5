package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile  string
	Input       string
	Period      string
	ReportName  string
	ReportType  []string
	Dir         string
	AdminEmail  string
	Parallel    int
	DryRun      bool
	OutcomeLog  bool
	OutcomeType []string
}
