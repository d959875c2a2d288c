package status_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizforge-lambda/internal/status"
)

type memoryRepo struct {
	checks   []status.StatusCheck
	lastSize int
	err      error
}

func (m *memoryRepo) Create(_ context.Context, sc *status.StatusCheck) error {
	if m.err != nil {
		return m.err
	}
	m.checks = append(m.checks, *sc)
	return nil
}

func (m *memoryRepo) List(_ context.Context, limit int) ([]status.StatusCheck, error) {
	m.lastSize = limit
	if m.err != nil {
		return nil, m.err
	}
	if len(m.checks) > limit {
		return m.checks[:limit], nil
	}
	return m.checks, nil
}

func newRouter(repo status.Repository) http.Handler {
	r := chi.NewRouter()
	status.Routes(r, status.NewHandler(status.NewService(repo)))
	return r
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRoot(t *testing.T) {
	rec := do(newRouter(&memoryRepo{}), http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Hello World"}`, rec.Body.String())
}

func TestCreateStatusCheck(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		repo := &memoryRepo{}
		rec := do(newRouter(repo), http.MethodPost, "/status", `{"client_name": "monitor-1"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var sc status.StatusCheck
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sc))
		assert.Equal(t, "monitor-1", sc.ClientName)
		assert.NotEmpty(t, sc.ID)
		assert.WithinDuration(t, time.Now(), sc.Timestamp, time.Minute)
		require.Len(t, repo.checks, 1)
		assert.Equal(t, time.UTC, repo.checks[0].Timestamp.Location())
		assert.Equal(t, sc.ID, repo.checks[0].ID)
	})

	t.Run("EmptyClientName", func(t *testing.T) {
		repo := &memoryRepo{}
		rec := do(newRouter(repo), http.MethodPost, "/status", `{"client_name": ""}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var sc status.StatusCheck
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sc))
		assert.Equal(t, "", sc.ClientName)
		require.Len(t, repo.checks, 1)
		assert.Equal(t, "", repo.checks[0].ClientName)
	})

	t.Run("MissingClientName", func(t *testing.T) {
		for _, body := range []string{`{}`, `{"client_name": null}`} {
			repo := &memoryRepo{}
			rec := do(newRouter(repo), http.MethodPost, "/status", body)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, body)
			assert.JSONEq(t, `{"detail":"client_name is required"}`, rec.Body.String())
			assert.Empty(t, repo.checks)
		}
	})

	t.Run("MalformedBody", func(t *testing.T) {
		rec := do(newRouter(&memoryRepo{}), http.MethodPost, "/status", `client_name=x`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("StorageFailure", func(t *testing.T) {
		rec := do(newRouter(&memoryRepo{err: errors.New("down")}), http.MethodPost, "/status", `{"client_name": "monitor"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"detail":"internal server error"}`, rec.Body.String())
	})
}

func TestListStatusChecks(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		rec := do(newRouter(&memoryRepo{}), http.MethodGet, "/status", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("StorageFailure", func(t *testing.T) {
		rec := do(newRouter(&memoryRepo{err: errors.New("down")}), http.MethodGet, "/status", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"detail":"internal server error"}`, rec.Body.String())
	})

	t.Run("CappedAtLimit", func(t *testing.T) {
		repo := &memoryRepo{}
		router := newRouter(repo)
		for i := 0; i < 3; i++ {
			do(router, http.MethodPost, "/status", `{"client_name": "monitor"}`)
		}

		rec := do(router, http.MethodGet, "/status", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var checks []status.StatusCheck
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &checks))
		assert.Len(t, checks, 3)
		assert.Equal(t, status.ListLimit, repo.lastSize)
	})
}
