package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"time"

	"placement_service/internal/config"
	"placement_service/internal/domain/entities"
	"placement_service/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var ErrMissingSMTPCredentials = errors.New("missing BREVO_SMTP_LOGIN or BREVO_SMTP_KEY")

// SMTPMailer delivers over implicit TLS (port 465) with PLAIN auth.
type SMTPMailer struct {
	host      string
	port      int
	login     string
	key       string
	from      string
	recipient string
	timeout   time.Duration

	// dial is replaced in tests to skip TLS.
	dial func(ctx context.Context, addr string) (net.Conn, error)
}

var _ interfaces.IMailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg config.MailConfig) (*SMTPMailer, error) {
	if cfg.SMTPLogin == "" || cfg.SMTPKey == "" {
		return nil, ErrMissingSMTPCredentials
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	m := &SMTPMailer{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		login:     cfg.SMTPLogin,
		key:       cfg.SMTPKey,
		from:      FormatFrom(cfg.FromName, cfg.FromEmail),
		recipient: cfg.Recipient,
		timeout:   timeout,
	}
	m.dial = m.dialTLS
	return m, nil
}

func (m *SMTPMailer) dialTLS(ctx context.Context, addr string) (net.Conn, error) {
	d := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: m.timeout},
		Config:    &tls.Config{ServerName: m.host, MinVersion: tls.VersionTLS12},
	}
	return d.DialContext(ctx, "tcp", addr)
}

func (m *SMTPMailer) SendConsultationNotice(ctx context.Context, c entities.Consultation) error {
	msg, err := BuildConsultationMessage(m.from, []string{m.recipient}, c)
	if err != nil {
		return fmt.Errorf("render consultation mail: %w", err)
	}
	return m.Send(ctx, msg)
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	addr := net.JoinHostPort(m.host, strconv.Itoa(m.port))
	conn, err := m.dial(ctx, addr)
	if err != nil {
		return fmt.Errorf("smtp dial %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("AUTH"); ok {
		if err := client.Auth(smtp.PlainAuth("", m.login, m.key, m.host)); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	fromAddr, err := mail.ParseAddress(msg.From)
	if err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := client.Mail(fromAddr.Address); err != nil {
		return fmt.Errorf("smtp MAIL FROM: %w", err)
	}
	for _, rcpt := range msg.To {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("smtp RCPT TO %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA: %w", err)
	}
	raw, err := encodeMIME(msg)
	if err != nil {
		_ = w.Close()
		return err
	}
	if _, err := w.Write(raw); err != nil {
		_ = w.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp DATA close: %w", err)
	}

	log.Info().Str("subject", msg.Subject).Int("recipients", len(msg.To)).Msg("[mail][smtp] message sent")
	return client.Quit()
}

// encodeMIME writes a multipart/alternative message with base64 parts.
func encodeMIME(msg Message) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", encodeAddress(msg.From))
	for _, to := range msg.To {
		fmt.Fprintf(&buf, "To: %s\r\n", to)
	}
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.BEncoding.Encode("UTF-8", msg.Subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", mw.Boundary())

	parts := []struct{ contentType, body string }{
		{"text/plain; charset=UTF-8", msg.TextBody},
		{"text/html; charset=UTF-8", msg.HTMLBody},
	}
	for _, p := range parts {
		h := textproto.MIMEHeader{}
		h.Set("Content-Type", p.contentType)
		h.Set("Content-Transfer-Encoding", "base64")
		pw, err := mw.CreatePart(h)
		if err != nil {
			return nil, err
		}
		if err := writeBase64Lines(pw, []byte(p.body)); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeAddress(s string) string {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return s
	}
	return addr.String()
}

func writeBase64Lines(w interface{ Write([]byte) (int, error) }, data []byte) error {
	enc := base64.StdEncoding.EncodeToString(data)
	for len(enc) > 76 {
		if _, err := w.Write([]byte(enc[:76] + "\r\n")); err != nil {
			return err
		}
		enc = enc[76:]
	}
	_, err := w.Write([]byte(enc + "\r\n"))
	return err
}
