package server

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/chaosgame/chaos"
	"github.com/katalvlaran/chaosgame/config"
	"github.com/katalvlaran/chaosgame/store"
)

func testConfig() config.ServerConfig {
	cfg := config.Default().Server
	cfg.MaxPoints = 5000
	return cfg
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := store.New(db)
	require.NoError(t, repo.Init(t.Context()))

	return New(testConfig(), repo, zap.NewNop())
}

func do(t *testing.T, s *Server, method, path, body string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, data
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	code, body := do(t, s, http.MethodGet, "/health/live", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"alive"}`, string(body))

	code, body = do(t, s, http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ready"}`, string(body))
}

func TestPlayChaos(t *testing.T) {
	s := newTestServer(t)

	code, body := do(t, s, http.MethodPost, "/v1/chaos", `{"sides":3,"points":100,"seed":7}`)
	require.Equal(t, http.StatusOK, code, string(body))

	var out runResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Empty(t, out.ID)
	require.NotNil(t, out.Result)
	assert.Equal(t, chaos.ModeChaos, out.Result.Mode)
	assert.Len(t, out.Result.Points, 100)
	assert.Equal(t, []string{"A", "B", "C"}, out.Result.Labels)

	want, err := chaos.Game(3, 100, chaos.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, want.Points, out.Result.Points)
}

func TestPlayChaos_Validation(t *testing.T) {
	s := newTestServer(t)

	cases := map[string]string{
		"two sides":    `{"sides":2,"points":10}`,
		"no points":    `{"sides":4,"points":0}`,
		"too many":     `{"sides":4,"points":5001}`,
		"invalid json": `{"sides":`,
		"empty body":   ``,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			code, data := do(t, s, http.MethodPost, "/v1/chaos", body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Contains(t, string(data), `"error"`)
		})
	}
}

func TestPlaySequence_SaveAndFetch(t *testing.T) {
	s := newTestServer(t)

	code, body := do(t, s, http.MethodPost, "/v1/sequence",
		`{"sequence":">chrY\nacgt\nggca\n","skip_headers":true,"upper":true,"seed":3,"save":true}`)
	require.Equal(t, http.StatusCreated, code, string(body))

	var out runResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.ID)
	assert.Equal(t, []string{"A", "C", "G", "T"}, out.Result.Labels)
	assert.Len(t, out.Result.Points, 9)

	code, body = do(t, s, http.MethodGet, "/v1/runs/"+out.ID, "")
	require.Equal(t, http.StatusOK, code)
	var run store.Run
	require.NoError(t, json.Unmarshal(body, &run))
	assert.Equal(t, out.ID, run.ID)
	assert.Equal(t, out.Result.Points, run.Result.Points)

	code, body = do(t, s, http.MethodGet, "/v1/runs?limit=5", "")
	require.Equal(t, http.StatusOK, code)
	var list struct {
		Runs []store.Summary `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list.Runs, 1)
	assert.Equal(t, 4, list.Runs[0].Sides)

	code, _ = do(t, s, http.MethodDelete, "/v1/runs/"+out.ID, "")
	assert.Equal(t, http.StatusNoContent, code)

	code, _ = do(t, s, http.MethodGet, "/v1/runs/"+out.ID, "")
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = do(t, s, http.MethodDelete, "/v1/runs/"+out.ID, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestPlaySequence_Validation(t *testing.T) {
	s := newTestServer(t)

	code, _ := do(t, s, http.MethodPost, "/v1/sequence", `{"sequence":"ABABAB"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, s, http.MethodPost, "/v1/sequence", `{"sequence":"  \n "}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, s, http.MethodPost, "/v1/sequence", `{"sequence":"`+strings.Repeat("ACG", 2000)+`"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestListRuns_BadLimit(t *testing.T) {
	s := newTestServer(t)

	code, _ := do(t, s, http.MethodGet, "/v1/runs?limit=x", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, body := do(t, s, http.MethodGet, "/v1/runs", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"runs":[]}`, string(body))
}

func TestNoStore(t *testing.T) {
	s := New(testConfig(), nil, nil)

	code, _ := do(t, s, http.MethodGet, "/v1/runs", "")
	assert.Equal(t, http.StatusServiceUnavailable, code)

	code, _ = do(t, s, http.MethodPost, "/v1/chaos", `{"sides":3,"points":10,"save":true}`)
	assert.Equal(t, http.StatusServiceUnavailable, code)

	code, _ = do(t, s, http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusOK, code)
}

func TestPlayChaos_DivergingFraction(t *testing.T) {
	s := newTestServer(t)

	code, body := do(t, s, http.MethodPost, "/v1/chaos", `{"sides":3,"points":2000,"fraction":3,"seed":1,"save":true}`)
	require.Equal(t, http.StatusCreated, code, string(body))

	var out runResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.ID)
	require.Len(t, out.Result.Points, 2000)
	last := out.Result.Points[1999]
	assert.True(t, math.IsNaN(last.X) || math.IsInf(last.X, 0))
	assert.Equal(t, 3.0, out.Result.Fraction)

	code, body = do(t, s, http.MethodGet, "/v1/runs/"+out.ID, "")
	assert.Equal(t, http.StatusOK, code, string(body))
}

func TestPlay_SideLimit(t *testing.T) {
	s := newTestServer(t)

	code, body := do(t, s, http.MethodPost, "/v1/chaos", `{"sides":20000000,"points":1}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(body), "exceeds limit 1024")

	code, _ = do(t, s, http.MethodPost, "/v1/chaos", `{"sides":1024,"points":1}`)
	assert.Equal(t, http.StatusOK, code)

	var b strings.Builder
	for r := rune(0x4E00); r < 0x4E00+1100; r++ {
		b.WriteRune(r)
	}
	code, body = do(t, s, http.MethodPost, "/v1/sequence", `{"sequence":"`+b.String()+`"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(body), "distinct symbols exceed limit")
}

func TestUnknownRoute_JSONError(t *testing.T) {
	s := newTestServer(t)

	code, body := do(t, s, http.MethodGet, "/v2/nothing", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, string(body), `"error"`)
}

func TestDBContext_FollowsRequest(t *testing.T) {
	s := New(testConfig(), nil, nil)
	c := s.App().AcquireCtx(&fasthttp.RequestCtx{})
	defer s.App().ReleaseCtx(c)

	parent, cancel := context.WithCancel(context.Background())
	c.SetContext(parent)

	ctx, done := dbContext(c)
	defer done()
	_, hasDeadline := ctx.Deadline()
	assert.True(t, hasDeadline)
	require.NoError(t, ctx.Err())

	cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
