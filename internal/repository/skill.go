package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/portfolio-api/internal/database"
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/jackc/pgx/v5"
)

const skillColumns = `id, name, category, level, timeline, start_year, description, projects, certifications, icon`

type SkillRepository struct {
	db database.DBTX
}

func NewSkillRepository(db database.DBTX) *SkillRepository {
	return &SkillRepository{db: db}
}

// List returns every skill by level descending.
func (r *SkillRepository) List(ctx context.Context) ([]model.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT `+skillColumns+` FROM skills ORDER BY level DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return collectAll[model.Skill](rows, "skills")
}

// TopNames returns the names of the limit highest-level skills.
func (r *SkillRepository) TopNames(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT name FROM skills ORDER BY level DESC, id ASC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top skills: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan top skills: %w", err)
	}
	return names, nil
}

func (r *SkillRepository) Get(ctx context.Context, id int64) (*model.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return collectOne[model.Skill](rows, "skills", id)
}

func (r *SkillRepository) Create(ctx context.Context, s model.Skill) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO skills (name, category, level, timeline, start_year, description, projects, certifications, icon)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		s.Name, s.Category, s.Level, s.Timeline, s.StartYear, s.Description, s.Projects, s.Certifications, s.Icon,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create skill: %w", err)
	}
	return id, nil
}

func (r *SkillRepository) Update(ctx context.Context, id int64, s model.Skill) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE skills
		SET name = $1, category = $2, level = $3, timeline = $4, start_year = $5,
		    description = $6, projects = $7, certifications = $8, icon = $9
		WHERE id = $10`,
		s.Name, s.Category, s.Level, s.Timeline, s.StartYear, s.Description, s.Projects, s.Certifications, s.Icon, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}
	return expectAffected(tag, "skills", id)
}

func (r *SkillRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return expectAffected(tag, "skills", id)
}
