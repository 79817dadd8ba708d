package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/natarchives/visitordesk/backend/internal/config"
	"github.com/natarchives/visitordesk/backend/internal/domain"
	"github.com/natarchives/visitordesk/backend/internal/repository"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "correct-horse"

type testEnv struct {
	server *httptest.Server
	client *http.Client
	repo   *repository.Repository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.Environment = "development"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 1
	cfg.InitialAdmin.Username = "admin"
	cfg.NewUser.PasswordLength = 12

	repo := repository.NewRepository(cfg)

	// MinCost keeps the test suite fast
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	for _, u := range []struct {
		username string
		role     domain.Role
	}{
		{"admin", domain.RoleAdmin},
		{"frontdesk", domain.RoleReceptionist},
		{"accounts", domain.RoleAccountant},
		{"library", domain.RoleLibraryOfficer},
	} {
		require.NoError(t, repo.CreateUser(&domain.User{
			Username:     u.username,
			PasswordHash: string(hash),
			FullName:     "Test " + u.username,
			Email:        u.username + "@archives.gov.zw",
			Role:         u.role,
		}))
	}

	h, err := NewHandler(cfg, repo)
	require.NoError(t, err)
	h.RegisterRoutes()

	server := httptest.NewServer(h.Mux)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testEnv{
		server: server,
		client: &http.Client{Jar: jar},
		repo:   repo,
	}
}

func (e *testEnv) login(t *testing.T, username string) {
	t.Helper()

	resp := e.do(t, http.MethodPost, "/api/auth/login", map[string]any{
		"username": username,
		"password": testPassword,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, e.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	require.NoError(t, err)

	return resp
}

func decodeResponse(t *testing.T, resp *http.Response) (Response, json.RawMessage) {
	t.Helper()
	defer resp.Body.Close()

	var envelope struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	return Response{Success: envelope.Success, Message: envelope.Message}, envelope.Data
}
