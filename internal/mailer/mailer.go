// Package mailer delivers transactional email.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"careerflow/internal/config"
	"careerflow/internal/middleware"

	"github.com/wneessen/go-mail"
)

const sendTimeout = 10 * time.Second

// Message is a single outbound email with a plain-text body and an HTML alternative.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer sends email. Implementations must be safe for concurrent use.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// New returns an SMTP mailer when SMTP is configured and a logging mailer otherwise.
func New(cfg *config.Config) Mailer {
	if cfg.MailEnabled() {
		return NewSMTPMailer(cfg)
	}
	middleware.Logger.Info("SMTP not configured; outbound email will be logged only")
	return NewLogMailer(middleware.Logger)
}

// SMTPMailer sends mail through a single SMTP relay. One client and its
// connection are shared by all sends; a dropped connection is redialed once.
type SMTPMailer struct {
	from string

	mu        sync.Mutex
	client    *mail.Client
	clientErr error
	connected bool
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(sendTimeout),
	}
	if cfg.SMTPUsername != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUsername),
			mail.WithPassword(cfg.SMTPPassword),
		)
	}
	c, err := mail.NewClient(cfg.SMTPHost, opts...)
	return &SMTPMailer{from: cfg.MailFrom, client: c, clientErr: err}
}

func (m *SMTPMailer) buildMessage(msg Message) (*mail.Msg, error) {
	out := mail.NewMsg()
	if err := out.From(m.from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", m.from, err)
	}
	if err := out.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		out.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}
	return out, nil
}

// Send delivers msg over the shared connection, dialing when none is open.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	out, err := m.buildMessage(msg)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.clientErr != nil {
		return fmt.Errorf("failed to create smtp client: %w", m.clientErr)
	}

	if m.connected {
		if err := m.client.Send(out); err == nil {
			return nil
		}
		m.disconnect()
	}

	if err := m.client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to smtp relay: %w", err)
	}
	m.connected = true
	if err := m.client.Send(out); err != nil {
		m.disconnect()
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// Close ends the shared SMTP session.
func (m *SMTPMailer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.connected {
		return nil
	}
	m.connected = false
	return m.client.Close()
}

func (m *SMTPMailer) disconnect() {
	_ = m.client.Close()
	m.connected = false
}

// LogMailer records messages in the log instead of sending them.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.logger.InfoContext(ctx, "Email not sent (SMTP disabled)",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	return nil
}
