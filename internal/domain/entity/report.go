package entity

// RecipientKind distingue o destinatário de um relatório.
type RecipientKind string

const (
	RecipientAdmin          RecipientKind = "administrator"
	RecipientRepresentative RecipientKind = "representative"
)

// FallbackRepresentativeName é usado quando a consulta ao diretório falha:
// a entrega continua com um rótulo genérico em vez de abortar o grupo.
const FallbackRepresentativeName = "Sales Representative"

// Recipient é a identidade resolvida que recebe o relatório de um grupo.
type Recipient struct {
	Kind  RecipientKind `json:"kind"`
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Email string        `json:"email"`
}

// Report é o artefato renderizado de um grupo: o texto CSV mais os metadados
// do destinatário. Produzido uma vez por grupo, consumido uma vez pelo
// despacho.
type Report struct {
	Group     *Group    `json:"-"`
	Recipient Recipient `json:"recipient"`
	CSV       []byte    `json:"-"`
	PDF       []byte    `json:"-"`
	Artifacts []string  `json:"artifacts,omitempty"`
}

// Attachment é um anexo de e-mail já persistido no file store.
type Attachment struct {
	Name        string
	ContentType string
	Content     []byte
}

// MailMessage é o que o colaborador de e-mail aceita: destinatário, assunto,
// corpo e anexos. Uma tentativa de entrega, sem retry no nível da aplicação.
type MailMessage struct {
	To          string
	ToName      string
	Subject     string
	Body        string
	Attachments []Attachment
}
