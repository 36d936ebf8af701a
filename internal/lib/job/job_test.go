package job

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/deppfellow/portfolio-api/internal/lib/email"
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/hibiken/asynq"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []*resend.SendEmailRequest
}

func (r *recordingSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	r.sent = append(r.sent, params)
	return &resend.SendEmailResponse{Id: "msg"}, nil
}

func newTestService(sender email.Sender, notify string) *JobService {
	logger := zerolog.Nop()
	dir := filepath.Join("..", "..", "..", email.DefaultTemplateDir)
	return &JobService{
		logger:      &logger,
		email:       email.NewClientWithSender(sender, "", dir, &logger),
		notifyEmail: notify,
	}
}

func TestNewHireRequestTask(t *testing.T) {
	p := HireRequestPayloadFrom(42, model.HireRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Company: "Acme",
		Message: "Let's talk about a long term contract.",
	})

	task, err := NewHireRequestTask(p)
	require.NoError(t, err)
	assert.Equal(t, TaskHireRequest, task.Type())

	var decoded HireRequestPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, p, decoded)
	assert.Equal(t, int64(42), decoded.ID)
}

func TestHandleHireRequestTask_SendsToOwner(t *testing.T) {
	sender := &recordingSender{}
	j := newTestService(sender, "owner@portfolio.dev")

	task, err := NewHireRequestTask(HireRequestPayload{ID: 7, Name: "Jane", Email: "jane@example.com", Message: "Hello there, hiring!"})
	require.NoError(t, err)

	require.NoError(t, j.Mux().ProcessTask(context.Background(), task))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"owner@portfolio.dev"}, sender.sent[0].To)
	assert.Contains(t, sender.sent[0].Html, "Hello there, hiring!")
}

func TestHandleHireRequestTask_NoRecipientSkips(t *testing.T) {
	sender := &recordingSender{}
	j := newTestService(sender, "")

	task, err := NewHireRequestTask(HireRequestPayload{ID: 1, Name: "A"})
	require.NoError(t, err)

	require.NoError(t, j.handleHireRequestTask(context.Background(), task))
	assert.Empty(t, sender.sent)
}

func TestHandleHireRequestTask_BadPayloadSkipsRetry(t *testing.T) {
	j := newTestService(&recordingSender{}, "owner@portfolio.dev")

	err := j.handleHireRequestTask(context.Background(), asynq.NewTask(TaskHireRequest, []byte("{")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}
