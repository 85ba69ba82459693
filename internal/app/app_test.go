package app

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/localtime-bot/internal/config"
	"github.com/aidar/localtime-bot/internal/domain"
	"github.com/aidar/localtime-bot/internal/service"
)

type stubLocalTimes struct{}

func (stubLocalTimes) Roster() []domain.TeamMember {
	return []domain.TeamMember{{Name: "A", City: "X", Timezone: "UTC"}}
}

func (stubLocalTimes) MemberTimes() []domain.MemberTime {
	return []domain.MemberTime{{TeamMember: domain.TeamMember{Name: "A", City: "X", Timezone: "UTC"}, LocalTime: "12:34"}}
}

func (stubLocalTimes) LocalTimes() string { return "A: 12:34\n" }

func serve(t *testing.T, h http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicEndpoints(t *testing.T) {
	r := NewRouter(stubLocalTimes{}, nil)

	health := serve(t, r, "/health", "")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.JSONEq(t, `{"status":"ok"}`, health.Body.String())

	metrics := serve(t, r, "/metrics", "")
	assert.Equal(t, http.StatusOK, metrics.Code)
}

func TestRouter_APIDisabledWithoutSecret(t *testing.T) {
	r := NewRouter(stubLocalTimes{}, nil)

	assert.Equal(t, http.StatusNotFound, serve(t, r, "/api/roster", "").Code)
}

func TestRouter_APIRequiresToken(t *testing.T) {
	auth := service.NewAuthService("test-secret")
	token, err := auth.IssueToken("ops", time.Hour)
	require.NoError(t, err)

	r := NewRouter(stubLocalTimes{}, auth)

	assert.Equal(t, http.StatusUnauthorized, serve(t, r, "/api/roster", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(t, r, "/api/localtime", "bad").Code)

	roster := serve(t, r, "/api/roster", token)
	require.Equal(t, http.StatusOK, roster.Code)
	assert.JSONEq(t, `{"members":[{"name":"A","city":"X","timezone":"UTC"}]}`, roster.Body.String())

	times := serve(t, r, "/api/localtime", token)
	require.Equal(t, http.StatusOK, times.Code)
	assert.JSONEq(t, `{"members":[{"name":"A","city":"X","timezone":"UTC","local_time":"12:34"}],"text":"A: 12:34\n"}`, times.Body.String())
}

func TestNew(t *testing.T) {
	application, err := New(&config.Config{LogLevel: "debug"})
	require.NoError(t, err)
	assert.NotNil(t, application.Logger())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"key":"value"`)
}

func newTestApp(cfg *config.Config) (*App, *bytes.Buffer) {
	var buf bytes.Buffer
	return &App{config: cfg, logger: NewLogger(&buf, slog.LevelDebug)}, &buf
}

func TestSetupServer(t *testing.T) {
	application, _ := newTestApp(&config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: "9090"},
	})

	application.setupServer()

	require.NotNil(t, application.server)
	assert.Equal(t, "127.0.0.1:9090", application.server.Addr)
}

func TestSetupServer_DisabledWithEmptyPort(t *testing.T) {
	application, logs := newTestApp(&config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: ""},
	})

	application.setupServer()

	assert.Nil(t, application.server)
	assert.Contains(t, logs.String(), "HTTP server is disabled")
	assert.NoError(t, application.Shutdown(context.Background()))
}

func TestServeHTTP_PortInUseIsNotFatal(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	application, logs := newTestApp(&config.Config{})
	application.server = &http.Server{Addr: ln.Addr().String()}

	assert.NoError(t, application.serveHTTP())
	assert.Contains(t, logs.String(), "HTTP server failed")
	assert.Contains(t, logs.String(), ln.Addr().String())
}
