package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/portfolio-api/internal/database"
	"github.com/deppfellow/portfolio-api/internal/model"
)

const contactColumns = `id, platform, url, username, icon, color, description, type, followers`

type ContactRepository struct {
	db database.DBTX
}

func NewContactRepository(db database.DBTX) *ContactRepository {
	return &ContactRepository{db: db}
}

// List returns every contact by id ascending.
func (r *ContactRepository) List(ctx context.Context) ([]model.Contact, error) {
	rows, err := r.db.Query(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return collectAll[model.Contact](rows, "contacts")
}

func (r *ContactRepository) Get(ctx context.Context, id int64) (*model.Contact, error) {
	rows, err := r.db.Query(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return collectOne[model.Contact](rows, "contacts", id)
}

func (r *ContactRepository) Create(ctx context.Context, c model.Contact) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO contacts (platform, url, username, icon, color, description, type, followers)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		c.Platform, c.URL, c.Username, c.Icon, c.Color, c.Description, c.Type, c.Followers,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create contact: %w", err)
	}
	return id, nil
}

func (r *ContactRepository) Update(ctx context.Context, id int64, c model.Contact) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE contacts
		SET platform = $1, url = $2, username = $3, icon = $4, color = $5,
		    description = $6, type = $7, followers = $8
		WHERE id = $9`,
		c.Platform, c.URL, c.Username, c.Icon, c.Color, c.Description, c.Type, c.Followers, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	return expectAffected(tag, "contacts", id)
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return expectAffected(tag, "contacts", id)
}
