package mail

import (
	"context"

	"github.com/ONSdigital/dp-applications-api/config"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/log.go/v2/log"
)

//go:generate moq -out mailtest/sender.go -pkg mailtest . Sender

// Sender dispatches a single plain text message to one recipient.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
	Checker(ctx context.Context, state *healthcheck.CheckState) error
}

// New returns an SMTP backed sender, or a NopSender when no mail host is
// configured so the rest of the service never has to care.
func New(cfg config.MailConfig) Sender {
	if !cfg.Enabled() {
		return &NopSender{}
	}
	return NewSMTPSender(cfg)
}

// NopSender discards every message. It stands in for SMTP in environments
// without an outbound mail relay.
type NopSender struct{}

// Send logs and drops the message.
func (n *NopSender) Send(ctx context.Context, to, subject, body string) error {
	log.Info(ctx, "mail disabled, discarding message", log.Data{"to": to, "subject": subject})
	return nil
}

// Checker updates the provided CheckState. A disabled sender is healthy.
func (n *NopSender) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	return state.Update(healthcheck.StatusOK, "mail sending is disabled", 0)
}
