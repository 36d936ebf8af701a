package job

import (
	"encoding/json"
	"time"

	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/hibiken/asynq"
)

// TaskHireRequest notifies the site owner about a new hire request.
const TaskHireRequest = "notify:hire_request"

// HireRequestPayload is the JSON stored in Redis for TaskHireRequest.
type HireRequestPayload struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Company       string `json:"company,omitempty"`
	Position      string `json:"position,omitempty"`
	Message       string `json:"message"`
	Budget        string `json:"budget,omitempty"`
	Timeline      string `json:"timeline,omitempty"`
	ContactMethod string `json:"contact_method,omitempty"`
}

// HireRequestPayloadFrom copies the fields the notification needs.
func HireRequestPayloadFrom(id int64, h model.HireRequest) HireRequestPayload {
	return HireRequestPayload{
		ID:            id,
		Name:          h.Name,
		Email:         h.Email,
		Company:       h.Company,
		Position:      h.Position,
		Message:       h.Message,
		Budget:        h.Budget,
		Timeline:      h.Timeline,
		ContactMethod: h.ContactMethod,
	}
}

// NewHireRequestTask builds the task: 3 retries, default queue, 30s timeout.
func NewHireRequestTask(p HireRequestPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskHireRequest,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
