package service

import (
	"context"

	"github.com/ds124wfegd/ezgif-api/internal/entity"
	"github.com/sirupsen/logrus"
)

// Check probes the upstream website on every call. An unreachable website is
// reported in the returned report, not as an error.
func (s *statusService) Check(ctx context.Context) (*entity.StatusReport, error) {
	if s.website == "" {
		return nil, entity.ErrNoWebsite
	}

	result := s.fetcher.Fetch(ctx, s.website, nil)

	report := &entity.StatusReport{
		Service:   ServiceName,
		Website:   s.website,
		Reachable: result.Success,
		Timestamp: entity.Timestamp(s.now()),
	}

	if !result.Success {
		report.Error = result.Error
		logrus.WithFields(logrus.Fields{
			"website": s.website,
			"error":   result.Error,
		}).Warn("Upstream website unreachable")
		return report, nil
	}

	size := len(result.Data)
	report.StatusCode = result.Status
	report.ResponseSize = &size
	return report, nil
}
