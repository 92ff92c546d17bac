package database

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/khushprajapati/portfolio-backend/errs"
	"github.com/khushprajapati/portfolio-backend/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func newProject(title string, published bool, createdAt time.Time) *models.Project {
	return &models.Project{
		ID:          uuid.New(),
		Title:       title,
		Slug:        models.Slugify(title),
		Description: "short description",
		Content:     "long description\n\n- feature one",
		Tech:        []string{"Go", "PostgreSQL"},
		Image:       models.DefaultProjectImage,
		Published:   published,
		CreatedAt:   createdAt,
	}
}

func TestProjectRepoFindPublished(t *testing.T) {
	repo := NewProjectRepo(openTestDB(t))

	base := time.Now().UTC().Truncate(time.Second)
	older := newProject("Older", true, base.Add(-time.Hour))
	newer := newProject("Newer", true, base)
	hidden := newProject("Hidden", false, base.Add(-time.Minute))

	for _, p := range []*models.Project{older, newer, hidden} {
		require.NoError(t, repo.Add(p))
	}

	projects, err := repo.FindPublished()
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Newer", projects[0].Title)
	assert.Equal(t, "Older", projects[1].Title)
}

func TestProjectRepoFindByID(t *testing.T) {
	repo := NewProjectRepo(openTestDB(t))

	project := newProject("TravelVista", true, time.Now().UTC())
	require.NoError(t, repo.Add(project))

	t.Run("found", func(t *testing.T) {
		got, err := repo.FindByID(project.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, project.Title, got.Title)
		assert.Equal(t, project.Tech, got.Tech)
	})

	t.Run("missing returns nil without error", func(t *testing.T) {
		got, err := repo.FindByID(uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestProjectRepoUpdatePreservesUntouchedFields(t *testing.T) {
	repo := NewProjectRepo(openTestDB(t))

	project := newProject("TravelVista", true, time.Now().UTC())
	require.NoError(t, repo.Add(project))

	stored, err := repo.FindByID(project.ID)
	require.NoError(t, err)

	demo := "https://example.com/demo"
	stored.Demo = &demo
	require.NoError(t, repo.Update(stored))

	got, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Demo)
	assert.Equal(t, demo, *got.Demo)
	assert.Equal(t, project.Title, got.Title)
	assert.Equal(t, project.Description, got.Description)
	assert.Equal(t, project.Content, got.Content)
	assert.Equal(t, project.Tech, got.Tech)
}

func TestProjectRepoDelete(t *testing.T) {
	repo := NewProjectRepo(openTestDB(t))

	project := newProject("TravelVista", true, time.Now().UTC())
	require.NoError(t, repo.Add(project))
	require.NoError(t, repo.Delete(project.ID))

	got, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSkillRepoDuplicateName(t *testing.T) {
	repo := NewSkillRepo(openTestDB(t))

	first := &models.Skill{ID: uuid.New(), Name: "Go", Category: "Languages", Level: 9, Order: 1}
	require.NoError(t, repo.Add(first))

	dup := &models.Skill{ID: uuid.New(), Name: "Go", Category: "Backend", Level: 5, Order: 2}
	err := repo.Add(dup)
	require.Error(t, err)

	apiErr := errs.NewDatabaseError("create", "skill", err)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)

	// Original record is unmodified
	got, err := repo.FindByID(first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Languages", got.Category)
	assert.Equal(t, 9, got.Level)
}

func TestSkillRepoOrdering(t *testing.T) {
	repo := NewSkillRepo(openTestDB(t))

	skills := []*models.Skill{
		{ID: uuid.New(), Name: "PostgreSQL", Category: "Databases", Level: 7, Order: 2},
		{ID: uuid.New(), Name: "React.js", Category: "Frontend", Level: 9, Order: 1},
		{ID: uuid.New(), Name: "MongoDB", Category: "Databases", Level: 7, Order: 1},
		{ID: uuid.New(), Name: "Angular", Category: "Frontend", Level: 6, Order: 1},
	}
	for _, s := range skills {
		require.NoError(t, repo.Add(s))
	}

	got, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, got, 4)

	names := make([]string, len(got))
	for i, s := range got {
		names[i] = s.Name
	}
	// Category asc, then order asc, then name asc
	assert.Equal(t, []string{"MongoDB", "PostgreSQL", "Angular", "React.js"}, names)
}

func TestSkillRepoNextOrder(t *testing.T) {
	repo := NewSkillRepo(openTestDB(t))

	next, err := repo.NextOrder()
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	require.NoError(t, repo.Add(&models.Skill{ID: uuid.New(), Name: "Go", Category: "Languages", Level: 9, Order: 7}))

	next, err = repo.NextOrder()
	require.NoError(t, err)
	assert.Equal(t, 8, next)
}

func TestNilHandleGuards(t *testing.T) {
	db := New(nil)

	_, err := db.ProjectRepo().FindPublished()
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)

	_, err = db.SkillRepo().FindAll()
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)

	err = db.ProjectRepo().Add(&models.Project{})
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	projects, err := NewProjectRepo(db).FindPublished()
	require.NoError(t, err)
	assert.Len(t, projects, 2)

	skills, err := NewSkillRepo(db).FindAll()
	require.NoError(t, err)
	assert.Len(t, skills, 8)
}
