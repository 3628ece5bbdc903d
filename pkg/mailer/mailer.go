package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"fastqr.backend/pkg/logger"
)

const brand = "FASTQR"

// ErrNotConfigured is returned when no SMTP host is configured
var ErrNotConfigured = errors.New("smtp is not configured")

// Config holds SMTP settings
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends transactional emails over SMTP
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

var dialAndSend = func(d *gomail.Dialer, m ...*gomail.Message) error {
	return d.DialAndSend(m...)
}

// New builds a Mailer. Port 465 uses implicit TLS, anything else STARTTLS.
func New(cfg Config) *Mailer {
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	var d *gomail.Dialer
	if cfg.Host != "" {
		d = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
		d.SSL = cfg.Port == 465
	}
	return &Mailer{dialer: d, from: from}
}

// SendVerificationOTP emails an account verification code
func (m *Mailer) SendVerificationOTP(ctx context.Context, to, name, otp string) error {
	return m.sendOTP(ctx, to, brand+" Account Verification OTP", verificationTemplate, name, otp)
}

// SendPasswordResetOTP emails a password reset code
func (m *Mailer) SendPasswordResetOTP(ctx context.Context, to, name, otp string) error {
	return m.sendOTP(ctx, to, brand+" Password Reset OTP", passwordTemplate, name, otp)
}

func (m *Mailer) sendOTP(ctx context.Context, to, subject string, tmpl *template.Template, name, otp string) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, otpTemplateData{Name: name, OTP: otp, Brand: brand}); err != nil {
		return fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return m.Send(ctx, to, subject, body.String())
}

// Send delivers an HTML email
func (m *Mailer) Send(ctx context.Context, to, subject, html string) error {
	if m.dialer == nil {
		return ErrNotConfigured
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	if err := dialAndSend(m.dialer, msg); err != nil {
		logger.Error(ctx, "Failed to send email", zap.String("subject", subject), zap.Error(err))
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.Info(ctx, "Email sent", zap.String("subject", subject))
	return nil
}
