package service

import (
	"context"
	"time"

	"github.com/ds124wfegd/ezgif-api/internal/entity"
	"github.com/ds124wfegd/ezgif-api/internal/pkg/fetcher"
	"github.com/ds124wfegd/ezgif-api/internal/pkg/kafka"
)

const ServiceName = "EZGIF API"

type StatusService interface {
	Check(ctx context.Context) (*entity.StatusReport, error)
}

type ConvertService interface {
	Validate(req *entity.ConvertRequest) error
	Convert(ctx context.Context, req *entity.ConvertRequest) (*entity.ConvertResponse, error)
}

type statusService struct {
	fetcher fetcher.Fetcher
	website string
	now     func() time.Time
}

type convertService struct {
	producer  kafka.Producer
	outputURL string
	now       func() time.Time
}

func NewStatusService(fetcher fetcher.Fetcher, website string) StatusService {
	return &statusService{
		fetcher: fetcher,
		website: website,
		now:     time.Now,
	}
}

func NewConvertService(producer kafka.Producer, outputURL string) ConvertService {
	return &convertService{
		producer:  producer,
		outputURL: outputURL,
		now:       time.Now,
	}
}
