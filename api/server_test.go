package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/easecalc/curve"
	"github.com/matt-g-everett/easecalc/logger"
)

func get(t *testing.T, query url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/evaluate?"+query.Encode(), nil)
	rec := httptest.NewRecorder()
	NewApi().ServeHTTP(rec, req)
	return rec
}

func TestEvaluate(t *testing.T) {
	rec := get(t, url.Values{
		"curve": {"OutQuad,x_t0=100,x_tmax=200,duration=1.0"},
		"t":     {"0.2", "0.5", "1.0"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp evaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, evaluateResponse{
		Curve:    "OutQuad",
		Lower:    100,
		Upper:    200,
		Duration: 1,
		Results: []curve.Point{
			{Time: 0.2, Value: 136},
			{Time: 0.5, Value: 175},
			{Time: 1, Value: 200},
		},
	}, resp)
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
		msg   string
	}{
		{"missing curve", url.Values{"t": {"0.5"}}, "expected exactly 4 fields"},
		{"bad curve", url.Values{"curve": {"Linear,a=-1,b=2,c=1"}, "t": {"0.5"}}, "lower bound must not be negative"},
		{"missing time", url.Values{"curve": {"Linear,a=1,b=2,c=1"}}, "t parameter is required"},
		{"bad time", url.Values{"curve": {"Linear,a=1,b=2,c=1"}, "t": {"0.5", "soon"}}, "time must be a number"},
		{"time out of range", url.Values{"curve": {"Linear,a=1,b=2,c=1"}, "t": {"3"}}, "must be between 0 and 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, tt.query)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, tt.msg)
		})
	}
}

func TestEvaluateMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/evaluate", nil)
	rec := httptest.NewRecorder()
	NewApi().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestServeShutsDownOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewApi().Serve(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/evaluate?curve=Linear,a=0,b=10,c=1&t=0.5")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServeReportsListenFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	var buf bytes.Buffer
	logger.Logger = logger.New(&buf, log.DebugLevel, false)
	t.Cleanup(func() { logger.Logger = nil })

	err = NewApi().Serve(context.Background(), l.Addr().String())
	require.Error(t, err)
	assert.NotErrorIs(t, err, http.ErrServerClosed)
	assert.Contains(t, buf.String(), "server stopped")
}
