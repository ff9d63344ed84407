//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/glibera/readlogger/internal/adapter/postgres"
	auditlogrepo "github.com/glibera/readlogger/internal/adapter/postgres/auditlog"
	authorrepo "github.com/glibera/readlogger/internal/adapter/postgres/author"
	bookrepo "github.com/glibera/readlogger/internal/adapter/postgres/book"
	refdatarepo "github.com/glibera/readlogger/internal/adapter/postgres/refdata"
	"github.com/glibera/readlogger/internal/adapter/postgres/testhelper"
	userrepo "github.com/glibera/readlogger/internal/adapter/postgres/user"
	userbookrepo "github.com/glibera/readlogger/internal/adapter/postgres/userbook"
	jwtauth "github.com/glibera/readlogger/internal/auth"
	"github.com/glibera/readlogger/internal/config"
	"github.com/glibera/readlogger/internal/mail"
	"github.com/glibera/readlogger/internal/service/auditlog"
	authsvc "github.com/glibera/readlogger/internal/service/auth"
	"github.com/glibera/readlogger/internal/service/catalog"
	"github.com/glibera/readlogger/internal/service/shelf"
	"github.com/glibera/readlogger/internal/service/support"
	"github.com/glibera/readlogger/internal/transport/middleware"
	"github.com/glibera/readlogger/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *jwtauth.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper). Outgoing mail goes to the
// test log; confirmation tokens are read back from the database.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txManager := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	authors := authorrepo.New(pool)
	books := bookrepo.New(pool)
	entries := userbookrepo.New(pool)
	records := auditlogrepo.New(pool)
	refs := refdatarepo.New(pool)

	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		PasswordHashCost: bcrypt.MinCost,
	}
	apiCfg := config.APIConfig{
		PageSize:          10,
		MaxPageSize:       100,
		AuthRatePerMinute: 1000,
	}

	jwtManager := jwtauth.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)
	mailer := mail.NewConfirmMailer(mail.NewLogSender(logger), "http://localhost/email-confirm/%s")

	auditService := auditlog.NewService(logger, records, apiCfg.PageSize)
	authService := authsvc.NewService(logger, users, txManager, jwtManager, auditService, mailer, authCfg)
	shelfService := shelf.NewService(logger, entries, books, authors, refs, txManager, auditService, apiCfg)
	catalogService := catalog.NewService(logger, authors, books, apiCfg.PageSize)
	supportService := support.NewService(logger, refs)

	rl := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(rl.Stop)

	mux := rest.NewRouter(rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Shelf:   rest.NewShelfHandler(shelfService, logger),
		Catalog: rest.NewCatalogHandler(catalogService, logger),
		History: rest.NewHistoryHandler(auditService, logger),
		Support: rest.NewSupportHandler(supportService, logger),
		Health:  rest.NewHealthHandler(pool, "test-version"),
	}, rl.Limit(apiCfg.AuthRatePerMinute))

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(jwtManager),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtManager,
	}
}

// apiRequest sends a JSON request and returns status + decoded body.
// An empty body or a 204 yields a nil map.
func (ts *testServer) apiRequest(t *testing.T, method, path string, body map[string]any, token string) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return resp.StatusCode, nil
	}
	return resp.StatusCode, result
}

// data extracts the "data" object from a success envelope.
func data(t *testing.T, result map[string]any) map[string]any {
	t.Helper()
	d, ok := result["data"].(map[string]any)
	require.True(t, ok, "expected data object in response, got: %v", result)
	return d
}

// dataList extracts the "data" array from a success envelope.
func dataList(t *testing.T, result map[string]any) []any {
	t.Helper()
	d, ok := result["data"].([]any)
	require.True(t, ok, "expected data array in response, got: %v", result)
	return d
}

// meta extracts the "meta" object from a success envelope.
func meta(t *testing.T, result map[string]any) map[string]any {
	t.Helper()
	m, ok := result["meta"].(map[string]any)
	require.True(t, ok, "expected meta object in response, got: %v", result)
	return m
}

// uniqueEmail returns an address that does not collide across tests sharing
// one database container.
func uniqueEmail(t *testing.T) string {
	t.Helper()
	return fmt.Sprintf("reader-%d@example.com", time.Now().UnixNano())
}

// confirmTokenFor reads the stored confirmation token for the given email
// directly from the database, standing in for the user's mailbox.
func confirmTokenFor(t *testing.T, ts *testServer, email string) string {
	t.Helper()

	var token *string
	err := ts.Pool.QueryRow(context.Background(),
		`SELECT confirm_token FROM users WHERE email = $1`, email).Scan(&token)
	require.NoError(t, err)
	require.NotNil(t, token, "expected a confirmation token for %s", email)
	return *token
}

// registerConfirmLogin walks a fresh user through the whole onboarding flow
// and returns their email and access token.
func registerConfirmLogin(t *testing.T, ts *testServer) (string, string) {
	t.Helper()

	email := uniqueEmail(t)
	password := "secret-password"

	status, _ := ts.apiRequest(t, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    email,
		"password": password,
		"language": "en",
	}, "")
	require.Equal(t, http.StatusCreated, status)

	token := confirmTokenFor(t, ts, email)
	status, result := ts.apiRequest(t, http.MethodPost, "/api/auth/email-confirm", map[string]any{
		"email": email,
		"token": token,
	}, "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, data(t, result)["status"])

	status, result = ts.apiRequest(t, http.MethodPost, "/api/auth/login_check", map[string]any{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, status)

	accessToken, ok := data(t, result)["token"].(string)
	require.True(t, ok, "expected access token in login response")
	return email, accessToken
}
