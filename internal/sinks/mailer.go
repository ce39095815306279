package sinks

import (
	"bytes"
	"context"
	"fmt"

	"github.com/lugorito/pedidos-http/internal/config"
	"github.com/lugorito/pedidos-http/internal/entities"

	"github.com/wneessen/go-mail"
)

// SMTPMailer envia o aviso de pedido novo para o operador. Os timeouts
// de conexão e socket vêm do cliente SMTP, para que a tarefa de
// notificação nunca fique pendurada indefinidamente.
type SMTPMailer struct {
	client *mail.Client
	from   string
	to     string
}

func NewSMTPMailer(cfg config.SMTP) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(cfg.Timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTPMailer{client: client, from: cfg.From, to: cfg.To}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, n entities.Notification) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(m.to); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	if n.ReplyTo != "" {
		// respostas do operador vão direto para o cliente
		if err := msg.ReplyTo(n.ReplyTo); err != nil {
			return fmt.Errorf("invalid reply-to address: %w", err)
		}
	}

	msg.Subject(n.Subject)
	msg.SetBodyString(mail.TypeTextPlain, n.Body)
	if err := msg.AttachReader(n.AttachmentName, bytes.NewReader(n.Attachment)); err != nil {
		return fmt.Errorf("failed to attach order json: %w", err)
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}
	return nil
}
