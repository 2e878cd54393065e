package ratelimit

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLimitedApp(burst int, stats Stats) *fiber.App {
	app := fiber.New()
	app.Use(New(Options{
		Store:             NewStore(0.001, burst, time.Minute),
		Stats:             stats,
		KeyHeader:         "X-Client-ID",
		RetryAfterSeconds: 2,
	}))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	return app
}

func TestMiddleware_RejectsOverBurst(t *testing.T) {
	stats := NewMemoryStats()
	app := setupLimitedApp(2, stats)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-Client-ID", "clinic-1")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	}

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Client-ID", "clinic-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 429, resp.StatusCode)
	assert.Equal(t, "2", resp.Header.Get("Retry-After"))

	// Different client is unaffected
	req = httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Client-ID", "clinic-2")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	totals, err := stats.Totals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Counters{Allowed: 3, Denied: 1}, totals)
}

func TestMiddleware_DistinctPathsShareCounters(t *testing.T) {
	stats := NewMemoryStats()
	app := fiber.New()
	app.Use(New(Options{
		Store:     NewStore(0.001, 3, time.Minute),
		Stats:     stats,
		KeyHeader: "X-Client-ID",
	}))
	app.Get("/api/appointments/:clientId", func(c *fiber.Ctx) error { return c.SendString(c.Params("clientId")) })

	for i := 1; i <= 5; i++ {
		req := httptest.NewRequest("GET", "/api/appointments/"+strconv.Itoa(i), nil)
		req.Header.Set("X-Client-ID", "clinic-1")
		_, err := app.Test(req)
		require.NoError(t, err)
	}

	totals, err := stats.Totals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Counters{Allowed: 3, Denied: 2}, totals)
}

func TestMiddleware_FallsBackToIP(t *testing.T) {
	app := setupLimitedApp(1, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, 429, resp.StatusCode)
}

func TestStatsHandler(t *testing.T) {
	stats := NewMemoryStats()
	_ = stats.Record(context.Background(), true)
	_ = stats.Record(context.Background(), false)

	app := fiber.New()
	app.Get("/ratelimit/stats", StatsHandler(stats))

	resp, err := app.Test(httptest.NewRequest("GET", "/ratelimit/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body Counters
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, Counters{Allowed: 1, Denied: 1}, body)
}

func TestRedisStats_Unreachable(t *testing.T) {
	rdb := NewRedisClient(Config{RedisAddr: "127.0.0.1:1"})
	defer rdb.Close()
	stats := NewRedisStats(rdb, "test:")

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := stats.Record(ctx, true)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record rate limit stats")

	_, err = stats.Totals(ctx)
	assert.Error(t, err)
	assert.Equal(t, "test:total", stats.totalKey())
}
