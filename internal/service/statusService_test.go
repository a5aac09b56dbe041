package service

import (
	"context"
	"testing"
	"time"

	"github.com/ds124wfegd/ezgif-api/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	result entity.RequestResult
	urls   []string
}

func (f *stubFetcher) Fetch(ctx context.Context, url string, opts *entity.RequestOptions) entity.RequestResult {
	f.urls = append(f.urls, url)
	return f.result
}

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 12, 30, 45, 123_000_000, time.UTC)
}

func TestStatusCheck(t *testing.T) {
	tests := []struct {
		name   string
		result entity.RequestResult
		check  func(*testing.T, *entity.StatusReport)
	}{
		{
			name:   "reachable website",
			result: entity.RequestResult{Success: true, Status: 200, Data: "hello"},
			check: func(t *testing.T, r *entity.StatusReport) {
				assert.True(t, r.Reachable)
				assert.Equal(t, 200, r.StatusCode)
				require.NotNil(t, r.ResponseSize)
				assert.Equal(t, 5, *r.ResponseSize)
				assert.Empty(t, r.Error)
			},
		},
		{
			name:   "reachable with empty body",
			result: entity.RequestResult{Success: true, Status: 204},
			check: func(t *testing.T, r *entity.StatusReport) {
				assert.True(t, r.Reachable)
				require.NotNil(t, r.ResponseSize)
				assert.Zero(t, *r.ResponseSize)
			},
		},
		{
			name:   "timeout",
			result: entity.RequestResult{Success: false, Error: "Request timeout"},
			check: func(t *testing.T, r *entity.StatusReport) {
				assert.False(t, r.Reachable)
				assert.Equal(t, "Request timeout", r.Error)
				assert.Zero(t, r.StatusCode)
				assert.Nil(t, r.ResponseSize)
			},
		},
		{
			name:   "network failure",
			result: entity.RequestResult{Success: false, Error: "dial tcp: connection refused"},
			check: func(t *testing.T, r *entity.StatusReport) {
				assert.False(t, r.Reachable)
				assert.Equal(t, "dial tcp: connection refused", r.Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &stubFetcher{result: tt.result}
			svc := &statusService{fetcher: f, website: "https://ezgif.com", now: fixedClock}

			report, err := svc.Check(context.Background())

			require.NoError(t, err)
			assert.Equal(t, ServiceName, report.Service)
			assert.Equal(t, "https://ezgif.com", report.Website)
			assert.Equal(t, "2024-05-01T12:30:45.123Z", report.Timestamp)
			assert.Equal(t, []string{"https://ezgif.com"}, f.urls)
			tt.check(t, report)
		})
	}
}

func TestStatusCheckFetchesEveryCall(t *testing.T) {
	f := &stubFetcher{result: entity.RequestResult{Success: true, Status: 200}}
	svc := NewStatusService(f, "https://ezgif.com")

	for i := 0; i < 3; i++ {
		_, err := svc.Check(context.Background())
		require.NoError(t, err)
	}

	assert.Len(t, f.urls, 3)
}

func TestStatusCheckWithoutWebsite(t *testing.T) {
	svc := NewStatusService(&stubFetcher{}, "")

	report, err := svc.Check(context.Background())

	assert.ErrorIs(t, err, entity.ErrNoWebsite)
	assert.Nil(t, report)
}
