package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/smtp"
	"net/textproto"
	"strings"
	"time"

	"cadebeck-hr/internal/shared/config"

	"go.uber.org/zap"
)

const maxRetries = 3

type Attachment struct {
	FileName    string
	ContentType string
	Data        []byte
}

type Message struct {
	To          string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// New returns a no-op mailer when SMTP is not configured.
func New(cfg config.SMTPConfig, logger ...*zap.Logger) Mailer {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	l = l.Named("mailer")

	if cfg.Host == "" {
		return noopMailer{logger: l}
	}
	return &smtpMailer{cfg: cfg, send: smtp.SendMail, logger: l, backoff: time.Second}
}

type noopMailer struct {
	logger *zap.Logger
}

func (m noopMailer) Send(ctx context.Context, msg Message) error {
	m.logger.Warn("SMTP not configured, skipping email send",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}

type smtpMailer struct {
	cfg     config.SMTPConfig
	send    sendFunc
	logger  *zap.Logger
	backoff time.Duration
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) error {
	raw, err := buildMessage(m.cfg.From, m.cfg.FromName, msg)
	if err != nil {
		return err
	}

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		lastErr = m.send(addr, auth, m.cfg.From, []string{msg.To}, raw)
		if lastErr == nil {
			m.logger.Info("email sent",
				zap.String("to", msg.To),
				zap.String("subject", msg.Subject),
				zap.Int("attempt", attempt),
			)
			return nil
		}

		m.logger.Warn("send email failed",
			zap.String("to", msg.To),
			zap.Int("attempt", attempt),
			zap.Error(lastErr),
		)

		if attempt < maxRetries {
			// 1s, 2s, 4s
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(m.backoff * time.Duration(1<<(attempt-1))):
			}
		}
	}

	return fmt.Errorf("send email after %d attempts: %w", maxRetries, lastErr)
}

func buildMessage(from, fromName string, msg Message) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("From", (&mailAddress{name: fromName, addr: from}).String())
	header.Set("To", msg.To)
	header.Set("Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	header.Set("MIME-Version", "1.0")
	header.Set("Content-Type", "multipart/mixed; boundary="+w.Boundary())

	var head strings.Builder
	for _, k := range []string{"From", "To", "Subject", "MIME-Version", "Content-Type"} {
		head.WriteString(k + ": " + header.Get(k) + "\r\n")
	}
	head.WriteString("\r\n")

	body, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {`text/html; charset="UTF-8"`},
		"Content-Transfer-Encoding": {"quoted-printable"},
	})
	if err != nil {
		return nil, err
	}
	if err := writeQuotedPrintable(body, msg.HTMLBody); err != nil {
		return nil, err
	}

	for _, att := range msg.Attachments {
		contentType := att.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		part, err := w.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {contentType},
			"Content-Transfer-Encoding": {"base64"},
			"Content-Disposition":       {fmt.Sprintf(`attachment; filename="%s"`, att.FileName)},
		})
		if err != nil {
			return nil, err
		}
		if err := writeBase64Lines(part, att.Data); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return append([]byte(head.String()), buf.Bytes()...), nil
}

type mailAddress struct {
	name string
	addr string
}

func (a *mailAddress) String() string {
	if a.name == "" {
		return a.addr
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", a.name), a.addr)
}

// RFC 2045 caps encoded lines at 76 characters.
func writeBase64Lines(w io.Writer, data []byte) error {
	encoded := base64.StdEncoding.EncodeToString(data)
	for len(encoded) > 76 {
		if _, err := w.Write([]byte(encoded[:76] + "\r\n")); err != nil {
			return err
		}
		encoded = encoded[76:]
	}
	_, err := w.Write([]byte(encoded + "\r\n"))
	return err
}

func writeQuotedPrintable(w io.Writer, s string) error {
	qp := quotedprintable.NewWriter(w)
	if _, err := qp.Write([]byte(s)); err != nil {
		return err
	}
	return qp.Close()
}
