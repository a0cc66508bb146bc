package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/ONSdigital/dp-applications-api/config"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/log.go/v2/log"
	retry "github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
)

const (
	checkDialTimeout = 5 * time.Second
	sendRetryDelay   = 500 * time.Millisecond
)

// SMTPSender delivers messages through a single SMTP relay, upgrading the
// connection with STARTTLS when configured to.
type SMTPSender struct {
	cfg config.MailConfig
}

// NewSMTPSender creates a sender for the given relay configuration
func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send delivers the message to the relay, retrying failed attempts
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	attempts := s.cfg.SendRetries
	if attempts == 0 {
		attempts = 1
	}

	err := retry.Do(
		func() error {
			return s.send(to, subject, body)
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(sendRetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			log.Warn(ctx, "mail send failed, retrying", log.Data{
				"attempt": attempt + 1,
				"to":      to,
				"error":   err.Error(),
			})
		}),
	)

	return errors.Wrap(err, "failed to send mail")
}

func (s *SMTPSender) send(to, subject, body string) error {
	client, err := smtp.Dial(s.addr())
	if err != nil {
		return err
	}
	defer client.Close()

	if s.cfg.StartTLS {
		if ok, _ := client.Extension("STARTTLS"); !ok {
			return errors.New("smtp relay does not support STARTTLS")
		}
		tlsConfig := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err := client.StartTLS(tlsConfig); err != nil {
			return err
		}
	}

	if s.cfg.Username != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(message(s.cfg.From, to, subject, body)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}

// Checker dials the relay to confirm it is reachable
func (s *SMTPSender) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	conn, err := net.DialTimeout("tcp", s.addr(), checkDialTimeout)
	if err != nil {
		return state.Update(healthcheck.StatusCritical, err.Error(), 0)
	}
	_ = conn.Close()

	return state.Update(healthcheck.StatusOK, "smtp relay is reachable", 0)
}

func (s *SMTPSender) addr() string {
	return fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
}

// message assembles an RFC 5322 message. Header values are collapsed onto a
// single line so a crafted recipient or subject cannot inject extra headers.
func message(from, to, subject, body string) []byte {
	var b strings.Builder
	writeHeader(&b, "From", from)
	writeHeader(&b, "To", to)
	writeHeader(&b, "Subject", mime.QEncoding.Encode("utf-8", sanitizeHeader(subject)))
	writeHeader(&b, "MIME-Version", "1.0")
	writeHeader(&b, "Content-Type", `text/plain; charset="utf-8"`)
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

func writeHeader(b *strings.Builder, name, value string) {
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(sanitizeHeader(value))
	b.WriteString("\r\n")
}

var headerSanitizer = strings.NewReplacer("\r", "", "\n", "")

func sanitizeHeader(value string) string {
	return headerSanitizer.Replace(value)
}
