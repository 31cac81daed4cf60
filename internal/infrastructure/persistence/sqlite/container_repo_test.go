package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bessdsv/kitematic/internal/domain/entity"
	"github.com/bessdsv/kitematic/internal/domain/repository"
	"github.com/bessdsv/kitematic/internal/infrastructure/persistence/sqlite"
	"github.com/bessdsv/kitematic/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newRepo(t *testing.T) (context.Context, repository.ContainerRepository) {
	t.Helper()
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "kitematic.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	return ctx, sqlite.NewContainerRepository(db)
}

func webContainer() *entity.Container {
	return &entity.Container{
		ID:   "c0ffee",
		Name: "/web",
		Config: &entity.Config{
			Env:          []string{"PORT=80"},
			Tty:          true,
			ExposedPorts: map[string]struct{}{"80/tcp": {}},
		},
		HostConfig: &entity.HostConfig{Links: []string{"/db:/web/database"}},
		State:      entity.State{Running: true},
	}
}

func TestContainerRepository_CRUD(t *testing.T) {
	ctx, repo := newRepo(t)

	require.NoError(t, repo.Save(ctx, webContainer()))
	require.NoError(t, repo.Save(ctx, &entity.Container{ID: "d00d", Name: "db"}))

	got, err := repo.FindByName(ctx, "web")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "web", got.Name)
	assert.Equal(t, []string{"PORT=80"}, got.Config.Env)
	assert.True(t, got.Config.Tty)
	assert.Equal(t, []string{"/db:/web/database"}, got.HostConfig.Links)
	assert.True(t, got.State.Running)
	assert.Nil(t, got.NetworkSettings)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "db", list[0].Name)
	assert.Equal(t, "web", list[1].Name)

	require.NoError(t, repo.Delete(ctx, "db"))
	missing, err := repo.FindByName(ctx, "db")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestContainerRepository_SaveUpserts(t *testing.T) {
	ctx, repo := newRepo(t)

	c := webContainer()
	require.NoError(t, repo.Save(ctx, c))

	c.State.Updating = true
	c.Config.Env = nil
	require.NoError(t, repo.Save(ctx, c))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].State.Updating)
	assert.Empty(t, list[0].Config.Env)
}

func TestContainerRepository_SaveRecreatedContainer(t *testing.T) {
	ctx, repo := newRepo(t)
	require.NoError(t, repo.Save(ctx, webContainer()))

	recreated := webContainer()
	recreated.ID = "deadbeef"
	recreated.State.Running = false
	require.NoError(t, repo.Save(ctx, recreated))

	got, err := repo.FindByName(ctx, "web")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "deadbeef", got.ID)
	assert.False(t, got.State.Running)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestContainerRepository_SaveRenamedContainer(t *testing.T) {
	ctx, repo := newRepo(t)
	require.NoError(t, repo.Save(ctx, webContainer()))

	renamed := webContainer()
	renamed.Name = "/frontend"
	require.NoError(t, repo.Save(ctx, renamed))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "frontend", list[0].Name)
	assert.Equal(t, "c0ffee", list[0].ID)
}

func TestContainerRepository_SaveRejectsInvalid(t *testing.T) {
	ctx, repo := newRepo(t)

	err := repo.Save(ctx, &entity.Container{Name: "web"})
	assert.ErrorIs(t, err, entity.ErrInvalidContainer)
}

func TestContainerRepository_UpdateLinks(t *testing.T) {
	ctx, repo := newRepo(t)
	require.NoError(t, repo.Save(ctx, webContainer()))

	require.NoError(t, repo.UpdateLinks(ctx, "web", []string{"db:database", "cache:redis"}))
	got, err := repo.FindByName(ctx, "web")
	require.NoError(t, err)
	assert.Equal(t, []entity.Link{
		{Container: "db", Alias: "database"},
		{Container: "cache", Alias: "redis"},
	}, entity.Links(got))

	require.NoError(t, repo.UpdateLinks(ctx, "web", nil))
	got, err = repo.FindByName(ctx, "web")
	require.NoError(t, err)
	assert.Nil(t, got.HostConfig.Links)
}

func TestContainerRepository_UpdateLinksCreatesHostConfig(t *testing.T) {
	ctx, repo := newRepo(t)
	require.NoError(t, repo.Save(ctx, &entity.Container{ID: "1", Name: "api"}))

	require.NoError(t, repo.UpdateLinks(ctx, "api", []string{"db:db"}))
	got, err := repo.FindByName(ctx, "api")
	require.NoError(t, err)
	require.NotNil(t, got.HostConfig)
	assert.Equal(t, []string{"db:db"}, got.HostConfig.Links)
}

func TestContainerRepository_UpdateLinksUnknown(t *testing.T) {
	ctx, repo := newRepo(t)
	assert.Error(t, repo.UpdateLinks(ctx, "ghost", []string{"db:db"}))
}
