package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/portfolio-api/internal/lib/email"
	"github.com/hibiken/asynq"
)

func (j *JobService) handleHireRequestTask(ctx context.Context, t *asynq.Task) error {
	var p HireRequestPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal hire request payload: %w: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", TaskHireRequest).
		Int64("hire_request_id", p.ID).
		Logger()

	if j.email == nil || j.notifyEmail == "" {
		log.Warn().Msg("notification recipient not configured, skipping hire request email")
		return nil
	}

	log.Info().Msg("Processing hire request notification")

	err := j.email.SendHireRequestNotification(j.notifyEmail, email.HireRequestData{
		ID:            p.ID,
		Name:          p.Name,
		Email:         p.Email,
		Company:       p.Company,
		Position:      p.Position,
		Message:       p.Message,
		Budget:        p.Budget,
		Timeline:      p.Timeline,
		ContactMethod: p.ContactMethod,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to send hire request notification")
		return err
	}

	log.Info().Msg("Successfully sent hire request notification")
	return nil
}
