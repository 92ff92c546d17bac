package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/khushprajapati/portfolio-backend/auth"
	"github.com/khushprajapati/portfolio-backend/models"
	"github.com/khushprajapati/portfolio-backend/services"
)

const testSecret = "test-jwt-secret-that-is-32-chars!"
const testPassword = "hunter2"

type fakeProjectStore struct {
	projects  map[uuid.UUID]*models.Project
	addErr    error
	mutations int
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: make(map[uuid.UUID]*models.Project)}
}

func (s *fakeProjectStore) FindPublished() ([]*models.Project, error) {
	var out []*models.Project
	for _, p := range s.projects {
		if p.Published {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	p, ok := s.projects[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (s *fakeProjectStore) Add(project *models.Project) error {
	if s.addErr != nil {
		return s.addErr
	}
	s.mutations++
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	clone := *project
	s.projects[project.ID] = &clone
	return nil
}

func (s *fakeProjectStore) Update(project *models.Project) error {
	s.mutations++
	clone := *project
	s.projects[project.ID] = &clone
	return nil
}

func (s *fakeProjectStore) Delete(id uuid.UUID) error {
	s.mutations++
	delete(s.projects, id)
	return nil
}

type fakeSkillStore struct {
	skills    map[uuid.UUID]*models.Skill
	mutations int
}

func newFakeSkillStore() *fakeSkillStore {
	return &fakeSkillStore{skills: make(map[uuid.UUID]*models.Skill)}
}

func (s *fakeSkillStore) FindAll() ([]*models.Skill, error) {
	var out []*models.Skill
	for _, skill := range s.skills {
		out = append(out, skill)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.Name < b.Name
	})
	return out, nil
}

func (s *fakeSkillStore) FindByID(id uuid.UUID) (*models.Skill, error) {
	skill, ok := s.skills[id]
	if !ok {
		return nil, nil
	}
	clone := *skill
	return &clone, nil
}

func (s *fakeSkillStore) NextOrder() (int, error) {
	max := 0
	for _, skill := range s.skills {
		if skill.Order > max {
			max = skill.Order
		}
	}
	return max + 1, nil
}

func (s *fakeSkillStore) Add(skill *models.Skill) error {
	for _, existing := range s.skills {
		if existing.Name == skill.Name {
			// Mirrors the storage layer's unique-constraint signal
			return errors.New("UNIQUE constraint failed: skills.name")
		}
	}
	s.mutations++
	clone := *skill
	s.skills[skill.ID] = &clone
	return nil
}

func (s *fakeSkillStore) Update(skill *models.Skill) error {
	for id, existing := range s.skills {
		if id != skill.ID && existing.Name == skill.Name {
			return errors.New("UNIQUE constraint failed: skills.name")
		}
	}
	s.mutations++
	clone := *skill
	s.skills[skill.ID] = &clone
	return nil
}

func (s *fakeSkillStore) Delete(id uuid.UUID) error {
	s.mutations++
	delete(s.skills, id)
	return nil
}

type fakeMessageStore struct {
	messages  map[uuid.UUID]*models.Message
	addErr    error
	mutations int
}

func newFakeMessageStore() *fakeMessageStore {
	return &fakeMessageStore{messages: make(map[uuid.UUID]*models.Message)}
}

func (s *fakeMessageStore) Add(ctx context.Context, message *models.Message) error {
	if s.addErr != nil {
		return s.addErr
	}
	s.mutations++
	clone := *message
	s.messages[message.ID] = &clone
	return nil
}

func (s *fakeMessageStore) FindAll(ctx context.Context) ([]*models.Message, error) {
	var out []*models.Message
	for _, m := range s.messages {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeMessageStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	m, ok := s.messages[id]
	if !ok {
		return nil, nil
	}
	clone := *m
	return &clone, nil
}

func (s *fakeMessageStore) MarkRead(ctx context.Context, id uuid.UUID) (bool, error) {
	m, ok := s.messages[id]
	if !ok {
		return false, nil
	}
	s.mutations++
	m.Read = true
	return true, nil
}

func (s *fakeMessageStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := s.messages[id]; !ok {
		return false, nil
	}
	s.mutations++
	delete(s.messages, id)
	return true, nil
}

type fakeDispatcher struct {
	dispatched []*services.ContactNotification
	err        error
}

func (d *fakeDispatcher) Dispatch(n *services.ContactNotification) error {
	if d.err != nil {
		return d.err
	}
	d.dispatched = append(d.dispatched, n)
	return nil
}

func (d *fakeDispatcher) IsAsync() bool { return false }
func (d *fakeDispatcher) Close() error  { return nil }

// testEnv bundles the route table wired onto fakes, plus the issuer for
// minting tokens in tests.
type testEnv struct {
	router     *chi.Mux
	issuer     auth.TokenIssuer
	projects   *fakeProjectStore
	skills     *fakeSkillStore
	messages   *fakeMessageStore
	dispatcher *fakeDispatcher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		issuer:     auth.NewTokenIssuer(testSecret, time.Hour),
		projects:   newFakeProjectStore(),
		skills:     newFakeSkillStore(),
		messages:   newFakeMessageStore(),
		dispatcher: &fakeDispatcher{},
	}

	verifier := auth.NewCredentialVerifier("khush", testPassword, "", env.issuer)
	handlers := initializeHandlers(verifier, env.projects, env.skills, env.messages, env.dispatcher)

	env.router = chi.NewRouter()
	// High limits so only the dedicated test exercises throttling
	setupRoutes(env.router, handlers, newAuthMiddleware(env.issuer), NewRateLimiter(10000, 10000))
	return env
}

func (env *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	token, _, err := env.issuer.Issue("admin", "khush", auth.RoleAdmin)
	require.NoError(t, err)
	return token
}

type testEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, router *chi.Mux, method, path, token string, body any) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(payload))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env testEnvelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func unmarshalData(t *testing.T, env testEnvelope, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}
