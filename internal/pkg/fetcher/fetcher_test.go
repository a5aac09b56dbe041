package fetcher

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ds124wfegd/ezgif-api/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserAgent = "test-agent/1.0"

func TestFetchSuccess(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, testUserAgent, r.Header.Get("User-Agent"))
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Add("X-Custom", "a")
		w.Header().Add("X-Custom", "b")
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "<html>ezgif</html>")
	}))
	defer server.Close()

	f := NewFetcher(time.Second, testUserAgent)
	result := f.Fetch(context.Background(), server.URL, nil)

	require.True(t, result.Success)
	assert.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, "<html>ezgif</html>", result.Data)
	assert.Equal(t, "text/html", result.Headers["content-type"])
	assert.Equal(t, "a, b", result.Headers["x-custom"])
	assert.Empty(t, result.Error)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetchNonOKStatusIsStillSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, "down")
	}))
	defer server.Close()

	result := NewFetcher(time.Second, testUserAgent).Fetch(context.Background(), server.URL, nil)

	require.True(t, result.Success)
	assert.Equal(t, http.StatusServiceUnavailable, result.Status)
	assert.Equal(t, "down", result.Data)
}

func TestFetchOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, testUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write(body)
	}))
	defer server.Close()

	opts := &entity.RequestOptions{Method: http.MethodPost, Body: []byte(`{"ping":true}`)}
	result := NewFetcher(time.Second, testUserAgent).Fetch(context.Background(), server.URL, opts)

	require.True(t, result.Success)
	assert.Equal(t, `{"ping":true}`, result.Data)
}

func TestFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer server.Close()
	defer close(release)

	start := time.Now()
	result := NewFetcher(50*time.Millisecond, testUserAgent).Fetch(context.Background(), server.URL, nil)

	assert.False(t, result.Success)
	assert.Equal(t, TimeoutMessage, result.Error)
	assert.Zero(t, result.Status)
	assert.Empty(t, result.Data)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestFetchTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	result := NewFetcher(time.Second, testUserAgent).Fetch(context.Background(), url, nil)

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.NotEqual(t, TimeoutMessage, result.Error)
	assert.Nil(t, result.Headers)
}

func TestFetchMalformedURL(t *testing.T) {
	result := NewFetcher(time.Second, testUserAgent).Fetch(context.Background(), "://missing-scheme", nil)

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestNewFetcherDefaultsNonPositiveTimeout(t *testing.T) {
	for _, timeout := range []time.Duration{0, -time.Second} {
		f, ok := NewFetcher(timeout, testUserAgent).(*httpFetcher)
		require.True(t, ok)
		assert.Equal(t, DefaultTimeout, f.timeout)
	}
}
