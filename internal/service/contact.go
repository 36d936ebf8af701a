package service

import (
	"context"

	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/deppfellow/portfolio-api/internal/normalize"
)

type ContactService struct {
	crud[model.Contact]
}

func NewContactService(store Store[model.Contact]) *ContactService {
	return &ContactService{crud[model.Contact]{store: store, shape: identity[model.Contact]}}
}

// List returns contacts grouped by type, plus the number of stored rows.
func (s *ContactService) List(ctx context.Context) (model.ContactBuckets, int, error) {
	contacts, err := s.store.List(ctx)
	if err != nil {
		return model.ContactBuckets{}, 0, err
	}

	buckets, unmatched := normalize.GroupContacts(contacts)
	logUnmatched(ctx, "contacts", categoriesOf(unmatched, func(c model.Contact) string { return c.Type }))

	return buckets, len(contacts), nil
}

func (s *ContactService) Create(ctx context.Context, p model.ContactPayload) (model.WriteResult, error) {
	return s.create(ctx, p.Contact())
}

func (s *ContactService) Update(ctx context.Context, id int64, p model.ContactPayload) (model.WriteResult, error) {
	return s.update(ctx, id, p.Contact())
}
