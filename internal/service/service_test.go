package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/portfolio-api/internal/errs"
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/deppfellow/portfolio-api/internal/sqlerr"
	"github.com/deppfellow/portfolio-api/internal/testutil"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireNotFound(t *testing.T, err error, message string) {
	t.Helper()
	require.ErrorIs(t, err, pgx.ErrNoRows)
	var httpErr *errs.HTTPError
	require.ErrorAs(t, sqlerr.HandleError(err), &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, message, httpErr.Message)
}

func TestContactService_CreateAppliesDefaultsAndGroups(t *testing.T) {
	ctx := context.Background()
	svc := NewContactService(testutil.NewContacts())

	res, err := svc.Create(ctx, model.ContactPayload{Platform: "GitHub", URL: "https://github.com/x", Type: "Social"})
	require.NoError(t, err)
	assert.Equal(t, model.WriteResult{ID: 1, Affected: true}, res)

	_, err = svc.Create(ctx, model.ContactPayload{Platform: "Fax", URL: "tel:1", Type: "Unknown"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultContactColor, got.Color)
	assert.Zero(t, got.Followers)
	assert.Empty(t, got.Icon)

	buckets, total, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, buckets.SocialMedia, 1)
	assert.Equal(t, "GitHub", buckets.SocialMedia[0].Platform)
	assert.Empty(t, buckets.Professional)
	assert.Empty(t, buckets.Portfolio)
}

func TestContactService_MissingRows(t *testing.T) {
	ctx := context.Background()
	svc := NewContactService(testutil.NewContacts())

	_, err := svc.Get(ctx, 9)
	requireNotFound(t, err, "Contact not found")

	_, err = svc.Update(ctx, 9, model.ContactPayload{Platform: "X", URL: "u", Type: "Social"})
	requireNotFound(t, err, "Contact not found")

	_, err = svc.Delete(ctx, 9)
	requireNotFound(t, err, "Contact not found")
}

func TestContactService_StorageFailure(t *testing.T) {
	store := testutil.NewContacts()
	store.Err = errors.New("connection reset")

	_, _, err := NewContactService(store).List(context.Background())
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, sqlerr.HandleError(err), &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestSkillService_ListAggregates(t *testing.T) {
	ctx := context.Background()
	svc := NewSkillService(testutil.NewSkills())

	summary, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Zero(t, summary.AverageLevel)
	assert.Zero(t, summary.Total)
	assert.NotNil(t, summary.Buckets.Frontend)

	for _, p := range []model.SkillPayload{
		{Name: "React", Category: "Frontend Development", Level: 90},
		{Name: "Go", Category: "Backend Development", Level: 85},
		{Name: "Knitting", Category: "Unknown", Level: 20},
	} {
		_, err := svc.Create(ctx, p)
		require.NoError(t, err)
	}

	summary, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 65, summary.AverageLevel)
	require.Len(t, summary.Buckets.Frontend, 1)
	require.Len(t, summary.Buckets.Backend, 1)
	assert.Empty(t, summary.Buckets.Database)
	assert.Empty(t, summary.Buckets.DevOps)
	assert.Equal(t, []string{}, summary.Buckets.Frontend[0].Certifications)

	names, err := svc.TechnicalSkills(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"React", "Go", "Knitting"}, names)
}

func TestTechnologyService_LegacyUsageField(t *testing.T) {
	ctx := context.Background()
	svc := NewTechnologyService(testutil.NewTechnologies())

	res, err := svc.Create(ctx, model.TechnologyPayload{Name: "Git", Category: "Version Control", Usage: "Daily"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, model.TechnologyPayload{Name: "Vercel", Category: "Hosting Platform"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, model.UsageDaily, got.UsageLevel)

	buckets, total, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, buckets.VersionControl, 1)
	require.Len(t, buckets.Deployment, 1)
	assert.Equal(t, model.UsageMonthly, buckets.Deployment[0].UsageLevel)
}

func TestExperienceService_DefaultsAndLists(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewExperiences()
	svc := NewExperienceService(store)

	// rows written by older clients may carry NULL lists
	_, err := store.Create(ctx, model.Experience{Company: "Legacy", Position: "Dev"})
	require.NoError(t, err)

	res, err := svc.Create(ctx, model.ExperiencePayload{Company: "Acme", Position: "Engineer"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultExperienceType, got.Type)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, []string{}, list[0].Responsibilities)
	assert.Equal(t, []string{}, list[0].Achievements)
	assert.Equal(t, []string{}, list[0].Technologies)
}

func TestPortfolioService_GalleryLifecycle(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewPortfolios()
	svc := NewPortfolioService(store)

	gallery := []model.GalleryInput{{URL: "/a.jpg", Caption: "A"}, {URL: "/b.jpg", Caption: "B"}}
	res, err := svc.Create(ctx, model.PortfolioPayload{Title: "Site", Gallery: &gallery})
	require.NoError(t, err)

	detail, err := svc.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PortfolioStatusActive, detail.Status)
	assert.Equal(t, []string{}, detail.Technologies)
	assert.Equal(t, []model.GalleryImage{{URL: "/a.jpg", Caption: "A"}, {URL: "/b.jpg", Caption: "B"}}, detail.GalleryImages)

	// no gallery key: images stay
	_, err = svc.Update(ctx, res.ID, model.PortfolioPayload{Title: "Site v2"})
	require.NoError(t, err)
	detail, err = svc.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Site v2", detail.Title)
	assert.Len(t, detail.GalleryImages, 2)

	replacement := []model.GalleryInput{{URL: "/c.jpg"}}
	_, err = svc.Update(ctx, res.ID, model.PortfolioPayload{Title: "Site v3", Gallery: &replacement})
	require.NoError(t, err)

	rows, err := store.Gallery(ctx, res.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].SortOrder)

	detail, err = svc.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.GalleryImage{{URL: "/c.jpg", Caption: ""}}, detail.GalleryImages)

	empty := []model.GalleryInput{}
	_, err = svc.Update(ctx, res.ID, model.PortfolioPayload{Title: "Site v4", Gallery: &empty})
	require.NoError(t, err)
	detail, err = svc.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.GalleryImage{}, detail.GalleryImages)

	_, err = svc.Delete(ctx, res.ID)
	require.NoError(t, err)
	_, err = svc.Get(ctx, res.ID)
	requireNotFound(t, err, "Portfolio not found")
}

func TestHireRequestService_SubmitNotifies(t *testing.T) {
	ctx := context.Background()
	notifier := &testutil.Notifier{}
	svc := NewHireRequestService(testutil.NewHireRequests(), notifier)

	res, err := svc.Submit(ctx, model.CreateHireRequest{Name: "Jane", Email: "jane@example.com", Message: "Let's work together", Company: "Acme"})
	require.NoError(t, err)
	assert.True(t, res.Affected)

	require.Len(t, notifier.Payloads, 1)
	assert.Equal(t, res.ID, notifier.Payloads[0].ID)
	assert.Equal(t, "Acme", notifier.Payloads[0].Company)

	got, err := svc.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, model.HireStatusNew, got.Status)
	assert.Equal(t, model.DefaultContactMethod, got.ContactMethod)

	_, err = svc.UpdateStatus(ctx, res.ID, model.HireStatusContacted)
	require.NoError(t, err)
	got, err = svc.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, model.HireStatusContacted, got.Status)

	_, err = svc.UpdateStatus(ctx, 404, model.HireStatusAccepted)
	requireNotFound(t, err, "Hire Request not found")
}

func TestHireRequestService_EnqueueFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewHireRequests()

	svc := NewHireRequestService(store, &testutil.Notifier{Err: errors.New("redis down")})
	_, err := svc.Submit(ctx, model.CreateHireRequest{Name: "A", Email: "a@example.com", Message: "hello there"})
	require.NoError(t, err)

	svc = NewHireRequestService(store, nil)
	_, err = svc.Submit(ctx, model.CreateHireRequest{Name: "B", Email: "b@example.com", Message: "hello again"})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
