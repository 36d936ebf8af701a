package service

import (
	"context"

	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/deppfellow/portfolio-api/internal/normalize"
)

type TechnologyService struct {
	crud[model.Technology]
}

func NewTechnologyService(store Store[model.Technology]) *TechnologyService {
	return &TechnologyService{crud[model.Technology]{store: store, shape: identity[model.Technology]}}
}

// List returns technologies grouped by category and the stored row count.
func (s *TechnologyService) List(ctx context.Context) (model.TechnologyBuckets, int, error) {
	techs, err := s.store.List(ctx)
	if err != nil {
		return model.TechnologyBuckets{}, 0, err
	}

	buckets, unmatched := normalize.GroupTechnologies(techs)
	logUnmatched(ctx, "technologies", categoriesOf(unmatched, func(t model.Technology) string { return t.Category }))

	return buckets, len(techs), nil
}

func (s *TechnologyService) Create(ctx context.Context, p model.TechnologyPayload) (model.WriteResult, error) {
	return s.create(ctx, p.Technology())
}

func (s *TechnologyService) Update(ctx context.Context, id int64, p model.TechnologyPayload) (model.WriteResult, error) {
	return s.update(ctx, id, p.Technology())
}
