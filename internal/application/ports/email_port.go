package ports

import "context"

// EmailSender define o porto de saída para envio de e-mails transacionais.
type EmailSender interface {
	// SendAccessEmail envia as credenciais provisórias de um colaborador recém
	// cadastrado.
	SendAccessEmail(ctx context.Context, to, nome, email, senhaProvisoria string) error
	// SendPasswordResetEmail envia o link de redefinição de senha.
	SendPasswordResetEmail(ctx context.Context, to, nome, link string) error
	// SendNewsEmail avisa um colaborador que saiu uma nova edição do informativo.
	SendNewsEmail(ctx context.Context, to, nome, titulo, url string) error
}
