// Package email implementa o porto EmailSender via SMTP (gomail).
package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/enviagora/hub-api/internal/application/ports"
	"github.com/enviagora/hub-api/pkg/config"
)

var _ ports.EmailSender = (*SMTPSender)(nil)

// SMTPSender envia os e-mails transacionais do portal.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender constrói o remetente a partir da configuração SMTP.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// SendAccessEmail envia as credenciais de primeiro acesso de um colaborador.
func (s *SMTPSender) SendAccessEmail(ctx context.Context, to, nome, email, senhaProvisoria string) error {
	body := fmt.Sprintf(acessoTemplate, nome, email, senhaProvisoria)
	return s.send(ctx, to, "Seu acesso ao Enviagora Hub", body)
}

// SendPasswordResetEmail envia o link de redefinição de senha.
func (s *SMTPSender) SendPasswordResetEmail(ctx context.Context, to, nome, link string) error {
	body := fmt.Sprintf(redefinicaoTemplate, nome, link, link)
	return s.send(ctx, to, "Redefinição de senha", body)
}

// SendNewsEmail avisa um colaborador sobre uma nova edição do informativo.
func (s *SMTPSender) SendNewsEmail(ctx context.Context, to, nome, titulo, url string) error {
	body := fmt.Sprintf(informativoTemplate, nome, titulo, url)
	return s.send(ctx, to, "Novo informativo: "+titulo, body)
}

func (s *SMTPSender) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
