package email

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "msg_1"}, nil
}

// projectTemplates points at the real templates shipped with the repo.
func projectTemplates(t *testing.T) string {
	t.Helper()
	dir := filepath.Join("..", "..", "..", DefaultTemplateDir)
	_, err := os.Stat(filepath.Join(dir, string(TemplateHireRequest)+".html"))
	require.NoError(t, err)
	return dir
}

func TestSendHireRequestNotification(t *testing.T) {
	sender := &fakeSender{}
	logger := zerolog.Nop()
	client := NewClientWithSender(sender, "hello@portfolio.dev", projectTemplates(t), &logger)

	data := PreviewData[TemplateHireRequest].(HireRequestData)
	require.NoError(t, client.SendHireRequestNotification("owner@portfolio.dev", data))

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, []string{"owner@portfolio.dev"}, msg.To)
	assert.Equal(t, "Portfolio <hello@portfolio.dev>", msg.From)
	assert.Equal(t, "New hire request from Jane Doe (Acme Corp)", msg.Subject)
	assert.Contains(t, msg.Html, "jane@example.com")
	assert.Contains(t, msg.Html, "Senior Backend Engineer")
}

func TestSendEmail_EscapesUserInput(t *testing.T) {
	sender := &fakeSender{}
	logger := zerolog.Nop()
	client := NewClientWithSender(sender, "", projectTemplates(t), &logger)

	require.NoError(t, client.SendHireRequestNotification("owner@portfolio.dev", HireRequestData{
		Name:    "Eve",
		Email:   "eve@example.com",
		Message: "<script>alert(1)</script>",
	}))

	require.Len(t, sender.sent, 1)
	assert.NotContains(t, sender.sent[0].Html, "<script>")
	assert.Equal(t, "Portfolio <onboarding@resend.dev>", sender.sent[0].From)
}

func TestSendEmail_DisabledSkipsDelivery(t *testing.T) {
	logger := zerolog.Nop()
	client := NewClientWithSender(nil, "", projectTemplates(t), &logger)

	assert.False(t, client.Enabled())
	assert.NoError(t, client.SendHireRequestNotification("owner@portfolio.dev", HireRequestData{Name: "A"}))
}

func TestSendEmail_ProviderError(t *testing.T) {
	logger := zerolog.Nop()
	client := NewClientWithSender(&fakeSender{err: errors.New("rate limited")}, "", projectTemplates(t), &logger)

	err := client.SendHireRequestNotification("owner@portfolio.dev", HireRequestData{Name: "A"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send email")
}

func TestRender_MissingTemplate(t *testing.T) {
	logger := zerolog.Nop()
	client := NewClientWithSender(nil, "", t.TempDir(), &logger)

	_, err := client.Render(TemplateHireRequest, nil)
	require.Error(t, err)
}
