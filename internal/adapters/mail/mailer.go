// Package mail contains the SMTP implementation of the Mailer port.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/NiyaziPro/taskmeister/internal/config"
	"github.com/NiyaziPro/taskmeister/internal/core/domain"
	"github.com/NiyaziPro/taskmeister/internal/ports/secondary"
)

// SMTPMailer implements secondary.Mailer over SMTP with STARTTLS and
// the configured send timeout. A timeout or refused connection counts
// as a failed send; there is no automatic retry.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer creates a mailer from SMTP configuration.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send transmits a single message.
func (m *SMTPMailer) Send(ctx context.Context, msg secondary.Message) error {
	out := gomail.NewMsg()
	if err := out.From(m.cfg.From); err != nil {
		return fmt.Errorf("%w: invalid sender address %q: %v", domain.ErrTransport, m.cfg.From, err)
	}
	if err := out.AddToFormat(msg.ToName, msg.To); err != nil {
		return fmt.Errorf("%w: invalid recipient address %q: %v", domain.ErrTransport, msg.To, err)
	}
	out.Subject(msg.Subject)
	out.SetBodyString(gomail.TypeTextPlain, msg.Body)

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(m.cfg.Timeout),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}

	if err := client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}

	return nil
}

// Ensure SMTPMailer implements the interface.
var _ secondary.Mailer = (*SMTPMailer)(nil)
