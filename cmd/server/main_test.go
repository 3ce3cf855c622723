package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobank/internal/adapter/http/middleware"
	"github.com/iho/gobank/internal/app"
	"github.com/iho/gobank/internal/infrastructure/config"
)

func newTestServer(t *testing.T, redisClient *goredis.Client) *httptest.Server {
	t.Helper()
	t.Setenv("DATA_DIR", t.TempDir())
	cfg, err := config.Load()
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	bank, err := app.New(cfg, reg, zerolog.Nop())
	require.NoError(t, err)
	_, err = bank.Start(t.Context())
	require.NoError(t, err)
	t.Cleanup(func() { bank.Shutdown(context.Background()) })

	stop := make(chan struct{})
	t.Cleanup(func() { close(stop) })

	srv := httptest.NewServer(newRouter(cfg, bank, redisClient, reg, zerolog.Nop(), func(error) {}, stop))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewRouter_Ready(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/ready")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNewRouter_IdempotencyWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	srv := newTestServer(t, client)
	body := `{"name":"Grace Hopper","age":45,"contact":"+1 202 555 0143","address":"1 Navy Yard, Arlington","kind":"checking","initial_deposit":"10.00"}`

	post := func() *http.Response {
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/accounts", strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set(middleware.IdempotencyKeyHeader, "open-once")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp
	}

	assert.Equal(t, http.StatusCreated, post().StatusCode)
	replay := post()
	assert.Equal(t, http.StatusCreated, replay.StatusCode)
	assert.Equal(t, "true", replay.Header.Get(middleware.IdempotencyReplayHeader))

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
