package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/portfolio-api/internal/database"
	"github.com/deppfellow/portfolio-api/internal/model"
)

const hireRequestColumns = `id, name, email, company, position, message, budget, timeline,
	contact_method, status, created_at, updated_at`

type HireRequestRepository struct {
	db database.DBTX
}

func NewHireRequestRepository(db database.DBTX) *HireRequestRepository {
	return &HireRequestRepository{db: db}
}

// List returns hire requests newest first.
func (r *HireRequestRepository) List(ctx context.Context) ([]model.HireRequest, error) {
	rows, err := r.db.Query(ctx, `SELECT `+hireRequestColumns+` FROM hire_requests ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list hire requests: %w", err)
	}
	return collectAll[model.HireRequest](rows, "hire_requests")
}

func (r *HireRequestRepository) Get(ctx context.Context, id int64) (*model.HireRequest, error) {
	rows, err := r.db.Query(ctx, `SELECT `+hireRequestColumns+` FROM hire_requests WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get hire request: %w", err)
	}
	return collectOne[model.HireRequest](rows, "hire_requests", id)
}

func (r *HireRequestRepository) Create(ctx context.Context, h model.HireRequest) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO hire_requests (name, email, company, position, message, budget, timeline, contact_method, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		h.Name, h.Email, h.Company, h.Position, h.Message, h.Budget, h.Timeline, h.ContactMethod, h.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create hire request: %w", err)
	}
	return id, nil
}

// UpdateStatus changes the status and stamps updated_at.
func (r *HireRequestRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.db.Exec(ctx, `UPDATE hire_requests SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update hire request status: %w", err)
	}
	return expectAffected(tag, "hire_requests", id)
}
