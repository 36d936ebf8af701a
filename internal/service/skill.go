package service

import (
	"context"

	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/deppfellow/portfolio-api/internal/normalize"
)

// TechnicalSkillCount is how many skill names the hero section shows.
const TechnicalSkillCount = 4

type SkillStore interface {
	Store[model.Skill]
	TopNames(ctx context.Context, limit int) ([]string, error)
}

type SkillService struct {
	crud[model.Skill]
	skills SkillStore
}

func NewSkillService(store SkillStore) *SkillService {
	return &SkillService{
		crud:   crud[model.Skill]{store: store, shape: normalize.Skill},
		skills: store,
	}
}

// SkillSummary is the grouped skill list with aggregates over every row.
type SkillSummary struct {
	Buckets      model.SkillBuckets
	Total        int
	AverageLevel int
}

func (s *SkillService) List(ctx context.Context) (SkillSummary, error) {
	skills, err := s.store.List(ctx)
	if err != nil {
		return SkillSummary{}, err
	}
	skills = normalize.Each(skills, normalize.Skill)

	buckets, unmatched := normalize.GroupSkills(skills)
	logUnmatched(ctx, "skills", categoriesOf(unmatched, func(s model.Skill) string { return s.Category }))

	return SkillSummary{
		Buckets:      buckets,
		Total:        len(skills),
		AverageLevel: normalize.AverageLevel(skills),
	}, nil
}

// TechnicalSkills returns the names of the highest rated skills.
func (s *SkillService) TechnicalSkills(ctx context.Context) ([]string, error) {
	names, err := s.skills.TopNames(ctx, TechnicalSkillCount)
	if err != nil {
		return nil, err
	}
	return normalize.List(names), nil
}

func (s *SkillService) Create(ctx context.Context, p model.SkillPayload) (model.WriteResult, error) {
	return s.create(ctx, p.Skill())
}

func (s *SkillService) Update(ctx context.Context, id int64, p model.SkillPayload) (model.WriteResult, error) {
	return s.update(ctx, id, p.Skill())
}
