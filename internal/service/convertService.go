package service

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/ds124wfegd/ezgif-api/internal/entity"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultWidth  = 250
	defaultHeight = 250
)

// Validate checks the request in a fixed order and returns the first failure.
func (s *convertService) Validate(req *entity.ConvertRequest) error {
	if req.Action == "" {
		return entity.ErrMissingAction
	}
	if !entity.ConvertAction(req.Action).IsValid() {
		return entity.ErrInvalidAction
	}
	if !req.HasSource() {
		return entity.ErrMissingSource
	}
	return nil
}

// Convert never touches the input. Canned actions get a synthesized completed
// payload; the rest are acknowledged and forwarded to the conversion engine.
func (s *convertService) Convert(ctx context.Context, req *entity.ConvertRequest) (*entity.ConvertResponse, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	action := entity.ConvertAction(req.Action)
	if action.HasCannedResult() {
		return s.cannedResult(action, req)
	}

	now := s.now()
	event := entity.ConversionEvent{
		ID:         uuid.New().String(),
		Action:     action,
		URL:        req.URL,
		HasFile:    req.HasFile(),
		Options:    req.Options,
		ReceivedAt: now.UTC(),
	}
	if err := s.producer.SendMessage(ctx, string(action), event); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrPublishFailed, err)
	}

	logrus.WithFields(logrus.Fields{
		"action":   action,
		"event_id": event.ID,
	}).Info("Conversion request received")

	return &entity.ConvertResponse{
		Success:   true,
		Action:    string(action),
		Message:   "Conversion request received",
		Status:    entity.StatusProcessing,
		Timestamp: entity.Timestamp(now),
	}, nil
}

func (s *convertService) cannedResult(action entity.ConvertAction, req *entity.ConvertRequest) (*entity.ConvertResponse, error) {
	now := s.now()
	resp := &entity.ConvertResponse{
		Success:   true,
		Action:    string(action),
		Status:    entity.StatusCompleted,
		Input:     req.Input(),
		Timestamp: entity.Timestamp(now),
	}

	switch action {
	case entity.ActionGifToMP4:
		resp.Output = s.output(now.UnixMilli(), "mp4")
		resp.OriginalSize = "2.4 MB"
		resp.ConvertedSize = "856 KB"
		resp.CompressionRatio = "65%"
		resp.ProcessingTime = "2.3s"
	case entity.ActionVideoToGif:
		resp.Output = s.output(now.UnixMilli(), "gif")
		resp.Duration = "5s"
		resp.FPS = 10
		resp.Size = "1.8 MB"
		resp.ProcessingTime = "4.1s"
	case entity.ActionResize:
		width := dimension(req.Options, "width", defaultWidth)
		height := dimension(req.Options, "height", defaultHeight)
		resp.Output = s.output(now.UnixMilli(), "gif")
		resp.OriginalDimensions = "500x500"
		resp.NewDimensions = fmt.Sprintf("%dx%d", width, height)
		resp.Size = "640 KB"
		resp.ProcessingTime = "1.2s"
	case entity.ActionOptimize:
		resp.Output = s.output(now.UnixMilli(), "gif")
		resp.OriginalSize = "2.4 MB"
		resp.OptimizedSize = "1.1 MB"
		resp.Savings = "54%"
		resp.ProcessingTime = "1.8s"
	default:
		return nil, fmt.Errorf("%w: %s", entity.ErrUnknownVariant, action)
	}
	return resp, nil
}

func (s *convertService) output(stamp int64, ext string) string {
	return fmt.Sprintf("%s/%d.%s", s.outputURL, stamp, ext)
}

// dimension reads a positive integer option no larger than MaxInt32,
// accepting JSON numbers and numeric strings.
func dimension(options map[string]any, key string, def int) int {
	switch v := options[key].(type) {
	case float64:
		if v >= 1 && v <= math.MaxInt32 {
			return int(v)
		}
	case int:
		if v > 0 && v <= math.MaxInt32 {
			return v
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= math.MaxInt32 {
			return n
		}
	}
	return def
}
