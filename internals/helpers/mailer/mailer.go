package mailer

import (
	"errors"
	"fmt"
	"net/smtp"

	"harmonia_backend/internals/configs"
)

var ErrMailDisabled = errors.New("envio de e-mail desabilitado")

// Mailer é o colaborador externo de e-mail. A operação é um ponto de
// suspensão de I/O e devolve erro tipado — nada de callback fire-and-forget.
type Mailer interface {
	Send(to, subject, body string) error
}

// =======================
// SMTP
// =======================
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewSMTPMailer(cfg *configs.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.MailFrom,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s\r\n",
		m.from, to, subject, body,
	))

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, msg)
}

// =======================
// DISABLED (sem credenciais SMTP)
// =======================
type DisabledMailer struct{}

func (DisabledMailer) Send(to, subject, body string) error {
	return ErrMailDisabled
}

// FromConfig escolhe a implementação conforme as credenciais presentes.
func FromConfig(cfg *configs.Config) Mailer {
	if cfg.MailEnabled() {
		return NewSMTPMailer(cfg)
	}
	return DisabledMailer{}
}
