package infra

import (
	"fmt"
	"net/smtp"

	"dokan/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for sending alert emails. Delivery goes
// through a circuit breaker so a dead SMTP server does not stall the worker
// pool with timeouts on every job.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	addr     string
	cb       *CircuitBreaker
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		cb:       NewCircuitBreaker(DefaultCBConfig()),
	}
}

// Send delivers a plain-text email, optionally attaching a file.
func (m *Mailer) Send(to, subject, body, attachPath string) error {
	return m.cb.Execute(func() error {
		e := email.NewEmail()
		e.From = m.user
		e.To = []string{to}
		e.Subject = subject
		e.Text = []byte(body)

		if attachPath != "" {
			if _, err := e.AttachFile(attachPath); err != nil {
				return fmt.Errorf("mailer: attach file: %w", err)
			}
		}

		auth := smtp.PlainAuth("", m.user, m.password, m.host)
		return e.Send(m.addr, auth)
	})
}

// BreakerState exposes the SMTP circuit breaker state for health reporting.
func (m *Mailer) BreakerState() string {
	return m.cb.State().String()
}
