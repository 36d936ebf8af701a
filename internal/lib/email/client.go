// Package email provides an email sending client.
//
// It uses Resend (resend-go) as the email provider and renders HTML
// templates from the filesystem into email bodies.
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/deppfellow/portfolio-api/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// DefaultTemplateDir is resolved relative to the working directory.
const DefaultTemplateDir = "templates/emails"

// Sender is the part of the Resend API the client uses.
type Sender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type Client struct {
	sender      Sender
	from        string
	templateDir string
	logger      *zerolog.Logger
}

// NewClient creates a Resend-backed client. Without an API key the client
// renders templates but skips delivery.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	var sender Sender
	if cfg.Integration.ResendAPIKey != "" {
		sender = resend.NewClient(cfg.Integration.ResendAPIKey).Emails
	}
	return NewClientWithSender(sender, cfg.Integration.FromEmail, DefaultTemplateDir, logger)
}

// NewClientWithSender builds a client around any Sender.
func NewClientWithSender(sender Sender, from, templateDir string, logger *zerolog.Logger) *Client {
	if from == "" {
		from = "onboarding@resend.dev"
	}
	return &Client{
		sender:      sender,
		from:        from,
		templateDir: templateDir,
		logger:      logger,
	}
}

// Enabled reports whether emails are actually delivered.
func (c *Client) Enabled() bool {
	return c.sender != nil
}

// Render executes a template file with data.
func (c *Client) Render(templateName Template, data any) (string, error) {
	tmplPath := filepath.Join(c.templateDir, string(templateName)+".html")

	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse email template %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", templateName)
	}
	return body.String(), nil
}

// SendEmail renders templateName and sends it to a single recipient.
func (c *Client) SendEmail(to, subject string, templateName Template, data any) error {
	html, err := c.Render(templateName, data)
	if err != nil {
		return err
	}

	if !c.Enabled() {
		c.logger.Warn().
			Str("template", string(templateName)).
			Str("to", to).
			Msg("resend api key not configured, skipping email delivery")
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", "Portfolio", c.from),
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	if _, err := c.sender.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
