package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/portfolio-api/internal/database"
	"github.com/deppfellow/portfolio-api/internal/model"
)

const experienceColumns = `id, company, position, duration, start_date, end_date, location, type,
	description, responsibilities, technologies, achievements, current`

type ExperienceRepository struct {
	db database.DBTX
}

func NewExperienceRepository(db database.DBTX) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

// List returns experiences by start_date descending. Payload validation
// keeps start_date as YYYY-MM-DD or empty, so text order is date order and
// undated rows sort last.
func (r *ExperienceRepository) List(ctx context.Context) ([]model.Experience, error) {
	rows, err := r.db.Query(ctx, `SELECT `+experienceColumns+` FROM experiences ORDER BY start_date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	return collectAll[model.Experience](rows, "experiences")
}

func (r *ExperienceRepository) Get(ctx context.Context, id int64) (*model.Experience, error) {
	rows, err := r.db.Query(ctx, `SELECT `+experienceColumns+` FROM experiences WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}
	return collectOne[model.Experience](rows, "experiences", id)
}

func (r *ExperienceRepository) Create(ctx context.Context, e model.Experience) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO experiences (company, position, duration, start_date, end_date, location, type,
			description, responsibilities, technologies, achievements, current)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		e.Company, e.Position, e.Duration, e.StartDate, e.EndDate, e.Location, e.Type,
		e.Description, e.Responsibilities, e.Technologies, e.Achievements, e.Current,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create experience: %w", err)
	}
	return id, nil
}

func (r *ExperienceRepository) Update(ctx context.Context, id int64, e model.Experience) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE experiences
		SET company = $1, position = $2, duration = $3, start_date = $4, end_date = $5,
		    location = $6, type = $7, description = $8, responsibilities = $9,
		    technologies = $10, achievements = $11, current = $12
		WHERE id = $13`,
		e.Company, e.Position, e.Duration, e.StartDate, e.EndDate, e.Location, e.Type,
		e.Description, e.Responsibilities, e.Technologies, e.Achievements, e.Current, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update experience: %w", err)
	}
	return expectAffected(tag, "experiences", id)
}

func (r *ExperienceRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	return expectAffected(tag, "experiences", id)
}
