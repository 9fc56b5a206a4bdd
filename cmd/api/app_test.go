package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"profrate/internal/config"
	"profrate/internal/memstore"
	"profrate/internal/user"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta map[string]any `json:"meta"`
}

type testServer struct {
	*httptest.Server
	app *application
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	cfg := config.Defaults()
	cfg.JWT.Secret = "routing-test-secret"
	cfg.RateLimit.RPS = 1000
	cfg.RateLimit.Burst = 1000

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	app := newApplication(ctx, cfg, memoryRepositories(memstore.New()), zerolog.Nop(), prometheus.NewRegistry())
	srv := httptest.NewServer(app.handler)
	t.Cleanup(srv.Close)
	return testServer{Server: srv, app: app}
}

func (s testServer) call(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	if resp.StatusCode != http.StatusNoContent {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
			require.NoError(t, json.Unmarshal(raw, &env), string(raw))
		}
	}
	return resp.StatusCode, env
}

func (s testServer) login(t *testing.T, username, password string) string {
	t.Helper()
	status, env := s.call(t, http.MethodPost, "/v1/auth/login", "", map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, status)
	var sess struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	return sess.Token
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func TestHealthEndpoints(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.Client().Get(s.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	resp, err = s.Client().Get(s.URL + "/readyz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestV1RoutesRequireAuth(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/v1/me", "/v1/module-instances", "/v1/professors", "/v1/ratings", "/v1/professors/1/average"} {
		status, env := s.call(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, status, path)
		assert.False(t, env.Success, path)
	}
}

func TestAdminRoutesRequireRole(t *testing.T) {
	s := newTestServer(t)
	status, _ := s.call(t, http.MethodPost, "/v1/auth/register", "", map[string]string{
		"username": "student", "email": "student@uni.test", "password": "Password1",
	})
	require.Equal(t, http.StatusCreated, status)
	token := s.login(t, "student", "Password1")

	status, env := s.call(t, http.MethodPost, "/v1/admin/professors", token, map[string]string{
		"name": "Ada", "email": "ada@uni.test", "department": "Computing",
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
}

// TestRatingFlow drives the service end to end over HTTP: catalog setup by an
// admin, a student rating, and every read operation.
func TestRatingFlow(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.app.users.Register(ctx, user.RegisterInput{Username: "admin", Email: "admin@uni.test", Password: "Password1", Role: user.RoleAdmin})
	require.NoError(t, err)
	adminToken := s.login(t, "admin", "Password1")

	status, env := s.call(t, http.MethodPost, "/v1/admin/professors", adminToken, map[string]string{
		"name": "Ada Lovelace", "email": "ada@uni.test", "department": "Computing",
	})
	require.Equal(t, http.StatusCreated, status, env.Error.Message)
	ada := decode[struct {
		ID int64 `json:"id"`
	}](t, env)

	status, env = s.call(t, http.MethodPost, "/v1/admin/professors", adminToken, map[string]string{
		"name": "Alan Turing", "email": "alan@uni.test", "department": "Maths",
	})
	require.Equal(t, http.StatusCreated, status)
	alan := decode[struct {
		ID int64 `json:"id"`
	}](t, env)

	status, _ = s.call(t, http.MethodPost, "/v1/admin/modules", adminToken, map[string]any{"code": "CS101", "title": "Programming"})
	require.Equal(t, http.StatusCreated, status)

	offering := map[string]any{"module_code": "CS101", "year": 2023, "semester": 1, "professor_ids": []int64{ada.ID}}
	status, env = s.call(t, http.MethodPost, "/v1/admin/module-instances", adminToken, offering)
	require.Equal(t, http.StatusCreated, status, env.Error.Message)
	inst := decode[struct {
		ID int64 `json:"id"`
	}](t, env)

	status, env = s.call(t, http.MethodPost, "/v1/admin/module-instances", adminToken, offering)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "INSTANCE_EXISTS", env.Error.Code)

	status, env = s.call(t, http.MethodPost, "/v1/auth/register", "", map[string]string{
		"username": "student", "email": "student@uni.test", "password": "Password1",
	})
	require.Equal(t, http.StatusCreated, status)
	token := decode[struct {
		Token string `json:"token"`
	}](t, env).Token

	status, env = s.call(t, http.MethodGet, "/v1/module-instances?module=cs101", token, nil)
	require.Equal(t, http.StatusOK, status)
	instances := decode[[]struct {
		ID         int64 `json:"id"`
		Professors []struct {
			Name string `json:"name"`
		} `json:"professors"`
	}](t, env)
	require.Len(t, instances, 1)
	assert.Equal(t, "Ada Lovelace", instances[0].Professors[0].Name)

	status, env = s.call(t, http.MethodGet, fmt.Sprintf("/v1/professors/%d/modules/CS101/average", ada.ID), token, nil)
	require.Equal(t, http.StatusOK, status)
	noRatings := decode[struct {
		AverageRating int    `json:"average_rating"`
		Message       string `json:"message"`
	}](t, env)
	assert.Equal(t, 0, noRatings.AverageRating)
	assert.Equal(t, "No ratings yet", noRatings.Message)

	status, env = s.call(t, http.MethodGet, fmt.Sprintf("/v1/professors/%d/modules/CS101/average", alan.ID), token, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "PROFESSOR_NOT_TEACHING", env.Error.Code)

	rate := func(score int) (int, envelope) {
		return s.call(t, http.MethodPost, "/v1/ratings", token, map[string]any{
			"professor_id": ada.ID, "module_instance_id": inst.ID, "score": score,
		})
	}
	status, _ = rate(4)
	assert.Equal(t, http.StatusCreated, status)
	status, _ = rate(5)
	assert.Equal(t, http.StatusOK, status)
	status, env = rate(6)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_SCORE", env.Error.Code)

	status, env = s.call(t, http.MethodPost, "/v1/ratings", token, map[string]any{
		"professor_id": alan.ID, "module_instance_id": inst.ID, "score": 3,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "PROFESSOR_NOT_ASSIGNED", env.Error.Code)

	status, env = s.call(t, http.MethodGet, "/v1/ratings", token, nil)
	require.Equal(t, http.StatusOK, status)
	mine := decode[[]struct {
		Score int `json:"score"`
	}](t, env)
	require.Len(t, mine, 1)
	assert.Equal(t, 5, mine[0].Score)

	status, env = s.call(t, http.MethodGet, "/v1/professors", token, nil)
	require.Equal(t, http.StatusOK, status)
	overview := decode[[]struct {
		ProfessorID   int64 `json:"professor_id"`
		AverageRating int   `json:"average_rating"`
	}](t, env)
	require.Len(t, overview, 2)
	assert.Equal(t, 5, overview[0].AverageRating)
	assert.Equal(t, 0, overview[1].AverageRating)

	status, _ = s.call(t, http.MethodPost, "/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = s.call(t, http.MethodGet, "/v1/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}
