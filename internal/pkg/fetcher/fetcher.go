package fetcher

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ds124wfegd/ezgif-api/internal/entity"
	"github.com/sirupsen/logrus"
)

const (
	TimeoutMessage = "Request timeout"
	DefaultTimeout = 10 * time.Second
)

type Fetcher interface {
	Fetch(ctx context.Context, url string, opts *entity.RequestOptions) entity.RequestResult
}

type httpFetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// NewFetcher falls back to DefaultTimeout when timeout is not positive.
func NewFetcher(timeout time.Duration, userAgent string) Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &httpFetcher{
		client:    &http.Client{},
		timeout:   timeout,
		userAgent: userAgent,
	}
}

// Fetch performs exactly one request bounded by the fetcher timeout. Transport
// failures never escape as errors; they are folded into the result.
func (f *httpFetcher) Fetch(ctx context.Context, url string, opts *entity.RequestOptions) entity.RequestResult {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := f.newRequest(ctx, url, opts)
	if err != nil {
		return failure(ctx, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return failure(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(ctx, err)
	}

	return entity.RequestResult{
		Success: true,
		Status:  resp.StatusCode,
		Headers: flattenHeaders(resp.Header),
		Data:    string(body),
	}
}

func (f *httpFetcher) newRequest(ctx context.Context, url string, opts *entity.RequestOptions) (*http.Request, error) {
	method := http.MethodGet
	var body io.Reader
	if opts != nil {
		if opts.Method != "" {
			method = opts.Method
		}
		if opts.Body != nil {
			body = bytes.NewReader(opts.Body)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)
	return req, nil
}

func failure(ctx context.Context, err error) entity.RequestResult {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		logrus.WithError(err).Warn("outbound request timed out")
		return entity.RequestResult{Success: false, Error: TimeoutMessage}
	}
	logrus.WithError(err).Warn("outbound request failed")
	return entity.RequestResult{Success: false, Error: err.Error()}
}

func flattenHeaders(h http.Header) map[string]string {
	flat := make(map[string]string, len(h))
	for k, v := range h {
		flat[strings.ToLower(k)] = strings.Join(v, ", ")
	}
	return flat
}
