package service

import (
	"context"

	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/deppfellow/portfolio-api/internal/normalize"
)

type ExperienceService struct {
	crud[model.Experience]
}

func NewExperienceService(store Store[model.Experience]) *ExperienceService {
	return &ExperienceService{crud[model.Experience]{store: store, shape: normalize.Experience}}
}

func (s *ExperienceService) List(ctx context.Context) ([]model.Experience, error) {
	experiences, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return normalize.Each(experiences, normalize.Experience), nil
}

func (s *ExperienceService) Create(ctx context.Context, p model.ExperiencePayload) (model.WriteResult, error) {
	return s.create(ctx, p.Experience())
}

func (s *ExperienceService) Update(ctx context.Context, id int64, p model.ExperiencePayload) (model.WriteResult, error) {
	return s.update(ctx, id, p.Experience())
}
