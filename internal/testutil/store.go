// Package testutil holds in-memory stand-ins for the repositories and
// helpers for building multipart uploads in tests.
package testutil

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/deppfellow/portfolio-api/internal/lib/job"
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/deppfellow/portfolio-api/internal/sqlerr"
)

// MemStore keeps rows in insertion order. Err, when set, fails every call.
type MemStore[T any] struct {
	mu    sync.Mutex
	table string
	setID func(*T, int64)
	rows  map[int64]T
	ids   []int64
	next  int64

	Err error
}

func NewMemStore[T any](table string, setID func(*T, int64)) *MemStore[T] {
	return &MemStore[T]{table: table, setID: setID, rows: map[int64]T{}}
}

func (m *MemStore[T]) notFound(id int64) error {
	return fmt.Errorf("id %d: %w", id, sqlerr.NotFound(m.table))
}

func (m *MemStore[T]) List(_ context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]T, 0, len(m.ids))
	for _, id := range m.ids {
		out = append(out, m.rows[id])
	}
	return out, nil
}

func (m *MemStore[T]) Get(_ context.Context, id int64) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	v, ok := m.rows[id]
	if !ok {
		return nil, m.notFound(id)
	}
	return &v, nil
}

func (m *MemStore[T]) Create(_ context.Context, v T) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	m.next++
	m.setID(&v, m.next)
	m.rows[m.next] = v
	m.ids = append(m.ids, m.next)
	return m.next, nil
}

func (m *MemStore[T]) Update(_ context.Context, id int64, v T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.rows[id]; !ok {
		return m.notFound(id)
	}
	m.setID(&v, id)
	m.rows[id] = v
	return nil
}

func (m *MemStore[T]) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.rows[id]; !ok {
		return m.notFound(id)
	}
	delete(m.rows, id)
	m.ids = slices.DeleteFunc(m.ids, func(x int64) bool { return x == id })
	return nil
}

func NewContacts() *MemStore[model.Contact] {
	return NewMemStore("contacts", func(c *model.Contact, id int64) { c.ID = id })
}

func NewTechnologies() *MemStore[model.Technology] {
	return NewMemStore("technologies", func(t *model.Technology, id int64) { t.ID = id })
}

func NewExperiences() *MemStore[model.Experience] {
	return NewMemStore("experiences", func(e *model.Experience, id int64) { e.ID = id })
}

type MemSkills struct {
	*MemStore[model.Skill]
}

func NewSkills() *MemSkills {
	return &MemSkills{NewMemStore("skills", func(s *model.Skill, id int64) { s.ID = id })}
}

// TopNames orders by level descending, then id.
func (m *MemSkills) TopNames(ctx context.Context, limit int) ([]string, error) {
	skills, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(skills, func(a, b model.Skill) int { return cmp.Compare(b.Level, a.Level) })

	names := []string{}
	for i := 0; i < len(skills) && i < limit; i++ {
		names = append(names, skills[i].Name)
	}
	return names, nil
}

type MemPortfolios struct {
	*MemStore[model.Portfolio]
	gallery map[int64][]model.GalleryRow
	rowID   int64
}

func NewPortfolios() *MemPortfolios {
	return &MemPortfolios{
		MemStore: NewMemStore("portfolios", func(p *model.Portfolio, id int64) { p.ID = id }),
		gallery:  map[int64][]model.GalleryRow{},
	}
}

func (m *MemPortfolios) Gallery(_ context.Context, portfolioID int64) ([]model.GalleryRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return slices.Clone(m.gallery[portfolioID]), nil
}

func (m *MemPortfolios) Create(ctx context.Context, p model.Portfolio, gallery []model.GalleryImage) (int64, error) {
	id, err := m.MemStore.Create(ctx, p)
	if err != nil {
		return 0, err
	}
	m.replace(id, gallery)
	return id, nil
}

func (m *MemPortfolios) Update(ctx context.Context, id int64, p model.Portfolio, gallery []model.GalleryImage) error {
	if err := m.MemStore.Update(ctx, id, p); err != nil {
		return err
	}
	if gallery != nil {
		m.replace(id, gallery)
	}
	return nil
}

func (m *MemPortfolios) Delete(ctx context.Context, id int64) error {
	if err := m.MemStore.Delete(ctx, id); err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.gallery, id)
	m.mu.Unlock()
	return nil
}

func (m *MemPortfolios) replace(id int64, gallery []model.GalleryImage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := make([]model.GalleryRow, 0, len(gallery))
	for i, g := range gallery {
		m.rowID++
		rows = append(rows, model.GalleryRow{
			ID:           m.rowID,
			PortfolioID:  id,
			ImageURL:     g.URL,
			ImageCaption: g.Caption,
			SortOrder:    i + 1,
		})
	}
	m.gallery[id] = rows
}

type MemHireRequests struct {
	*MemStore[model.HireRequest]
}

func NewHireRequests() *MemHireRequests {
	return &MemHireRequests{NewMemStore("hire_requests", func(h *model.HireRequest, id int64) { h.ID = id })}
}

func (m *MemHireRequests) UpdateStatus(ctx context.Context, id int64, status string) error {
	h, err := m.Get(ctx, id)
	if err != nil {
		return err
	}
	h.Status = status
	return m.MemStore.Update(ctx, id, *h)
}

// Notifier records enqueued notifications.
type Notifier struct {
	mu       sync.Mutex
	Payloads []job.HireRequestPayload
	Err      error
}

func (n *Notifier) EnqueueHireRequest(_ context.Context, p job.HireRequestPayload) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.Err != nil {
		return n.Err
	}
	n.Payloads = append(n.Payloads, p)
	return nil
}
