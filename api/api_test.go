package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/inkwell-app/inkwell-backend/auth"
	"github.com/inkwell-app/inkwell-backend/database"
)

// stubVerifier treats the bearer token itself as the external identity,
// so tests can act as any user without minting real tokens.
type stubVerifier struct{}

func (stubVerifier) Verify(_ context.Context, token string) (auth.Identity, error) {
	if token == "invalid" {
		return auth.Identity{}, errors.New("token rejected")
	}
	return auth.Identity{ExternalID: token, Email: token + "@example.com"}, nil
}

func newTestRouter(t *testing.T) (*chi.Mux, database.Database) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api_test.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	d := database.New(db)
	return newRouter(d, stubVerifier{}, nil), d
}

func doRequest(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonData)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reqBody)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}
