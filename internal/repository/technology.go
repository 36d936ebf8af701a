package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/portfolio-api/internal/database"
	"github.com/deppfellow/portfolio-api/internal/model"
)

const technologyColumns = `id, name, category, description, usage_level, icon`

// technologyOrder ranks usage by frequency, most frequent first.
const technologyOrder = `
	ORDER BY CASE usage_level
		WHEN 'Daily' THEN 0
		WHEN 'Weekly' THEN 1
		WHEN 'Monthly' THEN 2
		ELSE 3
	END, name ASC, id ASC`

type TechnologyRepository struct {
	db database.DBTX
}

func NewTechnologyRepository(db database.DBTX) *TechnologyRepository {
	return &TechnologyRepository{db: db}
}

// List returns technologies by usage (Daily, Weekly, Monthly, Rarely),
// then name.
func (r *TechnologyRepository) List(ctx context.Context) ([]model.Technology, error) {
	rows, err := r.db.Query(ctx, `SELECT `+technologyColumns+` FROM technologies`+technologyOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to list technologies: %w", err)
	}
	return collectAll[model.Technology](rows, "technologies")
}

func (r *TechnologyRepository) Get(ctx context.Context, id int64) (*model.Technology, error) {
	rows, err := r.db.Query(ctx, `SELECT `+technologyColumns+` FROM technologies WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get technology: %w", err)
	}
	return collectOne[model.Technology](rows, "technologies", id)
}

func (r *TechnologyRepository) Create(ctx context.Context, t model.Technology) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO technologies (name, category, description, usage_level, icon)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		t.Name, t.Category, t.Description, t.UsageLevel, t.Icon,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create technology: %w", err)
	}
	return id, nil
}

func (r *TechnologyRepository) Update(ctx context.Context, id int64, t model.Technology) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE technologies
		SET name = $1, category = $2, description = $3, usage_level = $4, icon = $5
		WHERE id = $6`,
		t.Name, t.Category, t.Description, t.UsageLevel, t.Icon, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update technology: %w", err)
	}
	return expectAffected(tag, "technologies", id)
}

func (r *TechnologyRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM technologies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete technology: %w", err)
	}
	return expectAffected(tag, "technologies", id)
}
