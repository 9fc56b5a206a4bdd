package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"profrate/internal/httpx"
	"profrate/internal/module"
	"profrate/internal/rating"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONSuccess(w, r, map[string]any{"user_id": "u-1", "username": "bob", "token": "tok-1"}, nil)
	})
	mux.HandleFunc("POST /v1/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		httpx.JSONSuccessNoContent(w)
	})
	mux.HandleFunc("GET /v1/professors", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONSuccess(w, r, []rating.ProfessorAverage{
			{ProfessorID: 1, ProfessorName: "Ada Lovelace", AverageRating: 3},
			{ProfessorID: 2, ProfessorName: "Alan Turing", AverageRating: 0},
		}, nil)
	})
	mux.HandleFunc("GET /v1/module-instances", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONSuccess(w, r, []module.Instance{{
			ID: 5, ModuleCode: "CD1", ModuleTitle: "Computing for Dummies", Year: 2017, Semester: module.SemesterOne,
			Professors: []module.Teacher{{ID: 1, Name: "Ada Lovelace"}},
		}}, nil)
	})
	mux.HandleFunc("POST /v1/ratings", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONSuccessCreated(w, r, map[string]any{"outcome": "created", "rating": rating.Rating{ID: 9, Score: 4}})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRun_LoginRateLogout(t *testing.T) {
	srv := fakeAPI(t)
	tokenFile := filepath.Join(t.TempDir(), "token")
	global := []string{"-url", srv.URL, "-token-file", tokenFile}
	ctx := context.Background()

	var out bytes.Buffer
	err := run(ctx, append(global, "login"), strings.NewReader("bob\nPassword1\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Login successful")
	saved, err := os.ReadFile(tokenFile)
	require.NoError(t, err)
	assert.Equal(t, "tok-1\n", string(saved))

	out.Reset()
	err = run(ctx, append(global, "rate", "-professor", "1", "-module", "cd1", "-year", "2017", "-semester", "1", "-score", "4"), nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "Rating created successfully\n", out.String())

	out.Reset()
	require.NoError(t, run(ctx, append(global, "logout"), nil, &out))
	_, err = os.Stat(tokenFile)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_ViewAndList(t *testing.T) {
	srv := fakeAPI(t)
	global := []string{"-url", srv.URL, "-token-file", filepath.Join(t.TempDir(), "token")}

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), append(global, "view"), nil, &out))
	assert.Contains(t, out.String(), "The rating of Ada Lovelace (1) is ***\n")
	assert.Contains(t, out.String(), "The rating of Alan Turing (2) is \n")

	out.Reset()
	require.NoError(t, run(context.Background(), append(global, "list"), nil, &out))
	assert.Contains(t, out.String(), "Code: CD1")
	assert.Contains(t, out.String(), "Taught by: Ada Lovelace (1)")
}

func TestRun_Errors(t *testing.T) {
	srv := fakeAPI(t)
	global := []string{"-url", srv.URL, "-token-file", filepath.Join(t.TempDir(), "token")}
	ctx := context.Background()

	var out bytes.Buffer
	assert.ErrorContains(t, run(ctx, append(global, "bogus"), nil, &out), "unknown command")
	assert.ErrorContains(t, run(ctx, append(global, "average", "-professor", "1"), nil, &out), "-module")
	assert.Error(t, run(ctx, append(global, "logout"), nil, &out))
}
