//go:build integration

package repository_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/deppfellow/portfolio-api/internal/config"
	"github.com/deppfellow/portfolio-api/internal/database"
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/deppfellow/portfolio-api/internal/normalize"
	"github.com/deppfellow/portfolio-api/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "portfolio",
				"POSTGRES_PASSWORD": "portfolio",
				"POSTGRES_DB":       "portfolio",
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort("5432/tcp"),
			).WithDeadline(90 * time.Second),
		},
		Started: true,
	}

	container, err := testcontainers.GenericContainer(ctx, req)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, container)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	cfg := config.Default().Database
	cfg.Host = host
	cfg.Port, err = strconv.Atoi(port.Port())
	require.NoError(t, err)
	cfg.User = "portfolio"
	cfg.Password = "portfolio"
	cfg.MaxOpenConns = 4

	logger := zerolog.Nop()
	require.NoError(t, database.Migrate(ctx, &logger, database.DSN(cfg)))

	poolCfg, err := database.PoolConfig(cfg)
	require.NoError(t, err)
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func TestIntegration_Repositories(t *testing.T) {
	pool := startPostgres(t)
	repos := repository.New(pool)
	ctx := context.Background()

	t.Run("contact round trip applies defaults", func(t *testing.T) {
		payload := model.ContactPayload{Platform: "GitHub", URL: "https://github.com/x", Type: "Social"}
		id, err := repos.Contact.Create(ctx, payload.Contact())
		require.NoError(t, err)

		got, err := repos.Contact.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "GitHub", got.Platform)
		assert.Equal(t, "#000000", got.Color)
		assert.Equal(t, 0, got.Followers)

		_, err = repos.Contact.Create(ctx, model.Contact{Platform: "Odd", URL: "u", Type: "Unknown"})
		require.Error(t, err, "type is constrained by the schema")

		list, err := repos.Contact.List(ctx)
		require.NoError(t, err)
		buckets, _ := normalize.GroupContacts(list)
		require.Len(t, buckets.SocialMedia, 1)
		assert.Equal(t, id, buckets.SocialMedia[0].ID)
	})

	t.Run("technologies order by usage then name", func(t *testing.T) {
		for _, usage := range []string{"Monthly", "Daily", "Weekly"} {
			_, err := repos.Technology.Create(ctx, model.Technology{Name: "Tool " + usage, Category: "Tool", UsageLevel: usage})
			require.NoError(t, err)
		}

		techs, err := repos.Technology.List(ctx)
		require.NoError(t, err)
		require.Len(t, techs, 3)
		assert.Equal(t, []string{"Daily", "Weekly", "Monthly"},
			[]string{techs[0].UsageLevel, techs[1].UsageLevel, techs[2].UsageLevel})
	})

	t.Run("skills order by level and keep certifications", func(t *testing.T) {
		_, err := repos.Skill.Create(ctx, model.Skill{Name: "SQL", Category: "Database", Level: 70, Certifications: []string{}})
		require.NoError(t, err)
		id, err := repos.Skill.Create(ctx, model.Skill{Name: "Go", Category: "Backend", Level: 90, Certifications: []string{"A", "B"}})
		require.NoError(t, err)

		skills, err := repos.Skill.List(ctx)
		require.NoError(t, err)
		require.Len(t, skills, 2)
		assert.Equal(t, id, skills[0].ID)
		assert.Equal(t, []string{"A", "B"}, skills[0].Certifications)
	})

	t.Run("gallery replace is atomic", func(t *testing.T) {
		p := model.PortfolioPayload{Title: "Site"}.Portfolio()
		id, err := repos.Portfolio.Create(ctx, p, []model.GalleryImage{{URL: "/a.jpg", Caption: "A"}, {URL: "/b.jpg", Caption: "B"}})
		require.NoError(t, err)

		rows, err := repos.Portfolio.Gallery(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []model.GalleryImage{{URL: "/a.jpg", Caption: "A"}, {URL: "/b.jpg", Caption: "B"}}, normalize.Gallery(rows))

		replacement := []model.GalleryImage{{URL: "/x.jpg"}, {URL: "/y.jpg"}, {URL: "/z.jpg"}}
		require.NoError(t, repos.Portfolio.Update(ctx, id, p, replacement))

		rows, err = repos.Portfolio.Gallery(ctx, id)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		for i, r := range rows {
			assert.Equal(t, i+1, r.SortOrder)
			assert.Equal(t, replacement[i].URL, r.ImageURL)
		}

		// a bad status aborts the update, and the gallery survives untouched
		bad := p
		bad.Status = "archived"
		require.Error(t, repos.Portfolio.Update(ctx, id, bad, []model.GalleryImage{{URL: "/lost.jpg"}}))

		rows, err = repos.Portfolio.Gallery(ctx, id)
		require.NoError(t, err)
		assert.Len(t, rows, 3)

		require.NoError(t, repos.Portfolio.Delete(ctx, id))
		rows, err = repos.Portfolio.Gallery(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("hire request status stamps updated_at", func(t *testing.T) {
		id, err := repos.HireRequest.Create(ctx, model.CreateHireRequest{Name: "Ann", Email: "ann@example.com", Message: "Hi"}.HireRequest())
		require.NoError(t, err)

		got, err := repos.HireRequest.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "new", got.Status)
		assert.Equal(t, "email", got.ContactMethod)
		assert.Nil(t, got.UpdatedAt)

		require.NoError(t, repos.HireRequest.UpdateStatus(ctx, id, "accepted"))
		got, err = repos.HireRequest.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "accepted", got.Status)
		assert.NotNil(t, got.UpdatedAt)
	})
}
