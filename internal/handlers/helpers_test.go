package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"TASK_MANAGER_API/internal/config"
	"TASK_MANAGER_API/internal/handlers"
	"TASK_MANAGER_API/internal/models"
	"TASK_MANAGER_API/internal/routes"
	"TASK_MANAGER_API/internal/store"
)

// fakeUserStore is an in-memory UserStore
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]models.User // keyed by email
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (s *fakeUserStore) Insert(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.Email]; ok {
		return store.ErrDuplicateEmail
	}
	s.users[u.Email] = *u
	return nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := u
	return &out, nil
}

// fakeTaskStore is an in-memory TaskStore mirroring the SQL semantics:
// newest-first ordering, page/per-page clamping, filter by owner and
// completion.
type fakeTaskStore struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]models.Task
	order []uuid.UUID // insertion order
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[uuid.UUID]models.Task)}
}

func (s *fakeTaskStore) Insert(_ context.Context, t *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[t.ID] = *t
	s.order = append(s.order, t.ID)
	return nil
}

func (s *fakeTaskStore) GetByID(_ context.Context, id uuid.UUID) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := t
	return &out, nil
}

func (s *fakeTaskStore) Update(_ context.Context, t *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[t.ID]; !ok {
		return store.ErrNotFound
	}
	s.tasks[t.ID] = *t
	return nil
}

func (s *fakeTaskStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *fakeTaskStore) List(_ context.Context, f store.TaskFilter) ([]models.Task, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.Normalize()

	matched := make([]models.Task, 0, len(s.order))
	for _, id := range s.order {
		t, ok := s.tasks[id]
		if !ok {
			continue
		}
		if f.OwnerID != nil && t.OwnerID != *f.OwnerID {
			continue
		}
		if f.Completed != nil && t.Completed != *f.Completed {
			continue
		}
		matched = append(matched, t)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	start := (f.Page - 1) * f.PerPage
	if start > total {
		start = total
	}
	end := start + f.PerPage
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (s *fakeTaskStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

// testEnv wires the real routes and middleware over fake stores
type testEnv struct {
	mux   *http.ServeMux
	users *fakeUserStore
	tasks *fakeTaskStore
	cfg   *config.Config
}

func newTestEnv() *testEnv {
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:         "test-secret",
			AccessTokenTTL: time.Hour,
		},
	}
	users := newFakeUserStore()
	tasks := newFakeTaskStore()

	mux := http.NewServeMux()
	routes.SetupRoutes(mux, cfg,
		handlers.NewAuthHandler(users, cfg),
		handlers.NewTasksHandler(tasks),
		handlers.NewHealthHandler(fakePinger{}))

	return &testEnv{mux: mux, users: users, tasks: tasks, cfg: cfg}
}

// do executes a request against the mux and returns the recorder
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.mux.ServeHTTP(w, req)
	return w
}

// decode unmarshals a recorded JSON body into dst
func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// register creates an account and returns its id
func (e *testEnv) register(t *testing.T, email, password, role string) string {
	t.Helper()

	body := map[string]string{"email": email, "password": password}
	if role != "" {
		body["role"] = role
	}
	w := e.do(t, http.MethodPost, "/auth/register", "", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: got status %d, body %s", email, w.Code, w.Body.String())
	}
	var resp struct {
		ID string `json:"id"`
	}
	decode(t, w, &resp)
	return resp.ID
}

// login returns an access token for existing credentials
func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()

	w := e.do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": email, "password": password})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: got status %d, body %s", email, w.Code, w.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	decode(t, w, &resp)
	if resp.AccessToken == "" {
		t.Fatal("login returned an empty access token")
	}
	return resp.AccessToken
}

// signup registers and logs in, returning a usable token
func (e *testEnv) signup(t *testing.T, email, password, role string) string {
	t.Helper()
	e.register(t, email, password, role)
	return e.login(t, email, password)
}
