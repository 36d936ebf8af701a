// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated requests from handlers, shapes stored rows into the responses
// the site expects and calls repositories to reach the data.
package service

import (
	"context"

	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/rs/zerolog"
)

// Store is the persistence contract shared by the simple resources.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, v T) (int64, error)
	Update(ctx context.Context, id int64, v T) error
	Delete(ctx context.Context, id int64) error
}

// crud implements the single-row operations on top of a Store.
// shape fills list columns left NULL by the driver.
type crud[T any] struct {
	store Store[T]
	shape func(T) T
}

func (c crud[T]) Get(ctx context.Context, id int64) (*T, error) {
	v, err := c.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := c.shape(*v)
	return &out, nil
}

func (c crud[T]) create(ctx context.Context, v T) (model.WriteResult, error) {
	id, err := c.store.Create(ctx, v)
	if err != nil {
		return model.WriteResult{}, err
	}
	return model.WriteResult{ID: id, Affected: true}, nil
}

func (c crud[T]) update(ctx context.Context, id int64, v T) (model.WriteResult, error) {
	if err := c.store.Update(ctx, id, v); err != nil {
		return model.WriteResult{}, err
	}
	return model.WriteResult{ID: id, Affected: true}, nil
}

func (c crud[T]) Delete(ctx context.Context, id int64) (model.WriteResult, error) {
	if err := c.store.Delete(ctx, id); err != nil {
		return model.WriteResult{}, err
	}
	return model.WriteResult{ID: id, Affected: true}, nil
}

func identity[T any](v T) T { return v }

// logUnmatched reports rows that fell outside every bucket of a grouping
// table. They are left out of the response.
func logUnmatched(ctx context.Context, resource string, categories []string) {
	if len(categories) == 0 {
		return
	}
	zerolog.Ctx(ctx).Warn().
		Str("resource", resource).
		Strs("categories", categories).
		Int("dropped", len(categories)).
		Msg("rows matched no bucket and were omitted from the grouped response")
}

func categoriesOf[T any](items []T, category func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, category(item))
	}
	return out
}

