package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Input       string   `json:"input" yaml:"input" toml:"input"`
	Period      string   `json:"period" yaml:"period" toml:"period"`
	ReportName  string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType  []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir         string   `json:"dir" yaml:"dir" toml:"dir"`
	Parallel    int      `json:"parallel" yaml:"parallel" toml:"parallel"`
	DryRun      bool     `json:"dry_run" yaml:"dry_run" toml:"dry_run"`
	OutcomeLog  bool     `json:"outcome_log" yaml:"outcome_log" toml:"outcome_log"`
	OutcomeType []string `json:"outcome_type" yaml:"outcome_type" toml:"outcome_type"`

	SMTP     SMTPConfig     `json:"smtp" yaml:"smtp" toml:"smtp"`
	Admin    AdminConfig    `json:"admin" yaml:"admin" toml:"admin"`
	Policy   PolicyConfig   `json:"policy" yaml:"policy" toml:"policy"`
	Artifact ArtifactConfig `json:"artifact" yaml:"artifact" toml:"artifact"`

	Representatives []RepresentativeConfig `json:"representatives" yaml:"representatives" toml:"representatives"`
	Customers       []CustomerConfig       `json:"customers" yaml:"customers" toml:"customers"`
}

// SMTPConfig agrupa as credenciais do servidor de e-mail de saída.
type SMTPConfig struct {
	Host        string `json:"host" yaml:"host" toml:"host"`
	Port        int    `json:"port" yaml:"port" toml:"port"`
	User        string `json:"user" yaml:"user" toml:"user"`
	Password    string `json:"password" yaml:"password" toml:"password"`
	FromName    string `json:"from_name" yaml:"from_name" toml:"from_name"`
	FromAddress string `json:"from_address" yaml:"from_address" toml:"from_address"`
}

// AdminConfig identifica o administrador que recebe o relatório do grupo
// "Unassigned". Era uma constante global na plataforma de origem; aqui é
// configuração explícita.
type AdminConfig struct {
	ID    string `json:"id" yaml:"id" toml:"id"`
	Name  string `json:"name" yaml:"name" toml:"name"`
	Email string `json:"email" yaml:"email" toml:"email"`
}

// PolicyConfig controla decisões de pipeline que variavam entre revisões do
// sistema de origem.
type PolicyConfig struct {
	// FallbackToCustomerRep: quando uma transação não tem representante,
	// tenta o representante padrão do cliente antes de agrupar como
	// "Unassigned". Desativado por padrão.
	FallbackToCustomerRep bool `json:"fallback_to_customer_rep" yaml:"fallback_to_customer_rep" toml:"fallback_to_customer_rep"`

	// DispatchTimeoutSeconds limita cada tentativa de entrega. 0 = 30s.
	DispatchTimeoutSeconds int `json:"dispatch_timeout_seconds" yaml:"dispatch_timeout_seconds" toml:"dispatch_timeout_seconds"`
}

// ArtifactConfig seleciona onde os CSVs gerados são persistidos.
type ArtifactConfig struct {
	// Backend: "local" (default) ou "s3".
	Backend string `json:"backend" yaml:"backend" toml:"backend"`
	Dir     string `json:"dir" yaml:"dir" toml:"dir"`
	Bucket  string `json:"bucket" yaml:"bucket" toml:"bucket"`
	Prefix  string `json:"prefix" yaml:"prefix" toml:"prefix"`
	Region  string `json:"region" yaml:"region" toml:"region"`
	Profile string `json:"profile" yaml:"profile" toml:"profile"`
}

// RepresentativeConfig é uma entrada do diretório de representantes.
type RepresentativeConfig struct {
	ID    string `json:"id" yaml:"id" toml:"id"`
	Name  string `json:"name" yaml:"name" toml:"name"`
	Email string `json:"email" yaml:"email" toml:"email"`
}

// CustomerConfig mapeia um cliente para seu representante padrão, usado
// apenas quando a política FallbackToCustomerRep está ativa.
type CustomerConfig struct {
	ID    string `json:"id" yaml:"id" toml:"id"`
	RepID string `json:"rep_id" yaml:"rep_id" toml:"rep_id"`
}
