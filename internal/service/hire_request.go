package service

import (
	"context"

	"github.com/deppfellow/portfolio-api/internal/lib/job"
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/rs/zerolog"
)

type HireRequestStore interface {
	List(ctx context.Context) ([]model.HireRequest, error)
	Get(ctx context.Context, id int64) (*model.HireRequest, error)
	Create(ctx context.Context, h model.HireRequest) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// Notifier schedules the owner notification for a new hire request.
type Notifier interface {
	EnqueueHireRequest(ctx context.Context, p job.HireRequestPayload) error
}

type HireRequestService struct {
	store    HireRequestStore
	notifier Notifier
}

// NewHireRequestService builds the service. notifier may be nil.
func NewHireRequestService(store HireRequestStore, notifier Notifier) *HireRequestService {
	return &HireRequestService{store: store, notifier: notifier}
}

// Submit stores the request and schedules a notification. A failed
// enqueue is logged; the request itself is already saved.
func (s *HireRequestService) Submit(ctx context.Context, req model.CreateHireRequest) (model.WriteResult, error) {
	h := req.HireRequest()

	id, err := s.store.Create(ctx, h)
	if err != nil {
		return model.WriteResult{}, err
	}

	log := zerolog.Ctx(ctx)
	if s.notifier == nil {
		log.Debug().Int64("hire_request_id", id).Msg("job queue unavailable, skipping hire request notification")
	} else if err := s.notifier.EnqueueHireRequest(ctx, job.HireRequestPayloadFrom(id, h)); err != nil {
		log.Error().Err(err).Int64("hire_request_id", id).Msg("failed to enqueue hire request notification")
	}

	return model.WriteResult{ID: id, Affected: true}, nil
}

func (s *HireRequestService) List(ctx context.Context) ([]model.HireRequest, error) {
	return s.store.List(ctx)
}

func (s *HireRequestService) Get(ctx context.Context, id int64) (*model.HireRequest, error) {
	return s.store.Get(ctx, id)
}

func (s *HireRequestService) UpdateStatus(ctx context.Context, id int64, status string) (model.WriteResult, error) {
	if err := s.store.UpdateStatus(ctx, id, status); err != nil {
		return model.WriteResult{}, err
	}
	return model.WriteResult{ID: id, Affected: true}, nil
}
