package entity

import (
	"bytes"
	"encoding/json"
	"slices"
	"time"
)

type ConvertAction string

const (
	ActionGifToMP4   ConvertAction = "gif-to-mp4"
	ActionVideoToGif ConvertAction = "video-to-gif"
	ActionResize     ConvertAction = "resize"
	ActionOptimize   ConvertAction = "optimize"
	ActionCrop       ConvertAction = "crop"
	ActionReverse    ConvertAction = "reverse"
	ActionSpeed      ConvertAction = "speed"
	ActionRotate     ConvertAction = "rotate"
)

const (
	StatusCompleted  = "completed"
	StatusProcessing = "processing"
)

var validActions = []ConvertAction{
	ActionGifToMP4,
	ActionVideoToGif,
	ActionResize,
	ActionOptimize,
	ActionCrop,
	ActionReverse,
	ActionSpeed,
	ActionRotate,
}

// ValidActions returns the full action vocabulary in its canonical order.
func ValidActions() []ConvertAction {
	return slices.Clone(validActions)
}

func (a ConvertAction) IsValid() bool {
	return slices.Contains(validActions, a)
}

// HasCannedResult reports whether the action answers with a completed payload
// instead of a processing acknowledgment.
func (a ConvertAction) HasCannedResult() bool {
	switch a {
	case ActionGifToMP4, ActionVideoToGif, ActionResize, ActionOptimize:
		return true
	default:
		return false
	}
}

type ConvertRequest struct {
	Action  string          `json:"action"`
	URL     string          `json:"url,omitempty"`
	File    json.RawMessage `json:"file,omitempty"`
	Options map[string]any  `json:"options,omitempty"`

	// FileName is set when the file arrived as a multipart part.
	FileName string `json:"-"`
}

// UnmarshalJSON decodes fields by value rather than by type. Falsy values
// (null, false, 0, "") count as absent, other non-string action and url values
// keep their JSON text, and options that are not an object are dropped.
func (r *ConvertRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	r.Action = looseString(fields["action"])
	r.URL = looseString(fields["url"])
	r.File = fields["file"]
	r.Options = nil
	if raw, ok := fields["options"]; ok {
		var options map[string]any
		if json.Unmarshal(raw, &options) == nil {
			r.Options = options
		}
	}
	return nil
}

func (r *ConvertRequest) HasFile() bool {
	if r.FileName != "" {
		return true
	}
	return !isAbsent(r.File)
}

func (r *ConvertRequest) HasSource() bool {
	return r.URL != "" || r.HasFile()
}

// Input names the source of the request for response payloads.
func (r *ConvertRequest) Input() string {
	if r.URL != "" {
		return r.URL
	}
	if r.FileName != "" {
		return r.FileName
	}
	return "uploaded file"
}

func isAbsent(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "false", "0", `""`:
		return true
	}
	return false
}

func looseString(raw json.RawMessage) string {
	if isAbsent(raw) {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

// ConvertResponse covers every action variant; fields that do not apply to a
// variant stay empty and are omitted.
type ConvertResponse struct {
	Success bool   `json:"success"`
	Action  string `json:"action"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`

	Input  string `json:"input,omitempty"`
	Output string `json:"output,omitempty"`

	OriginalSize       string `json:"originalSize,omitempty"`
	ConvertedSize      string `json:"convertedSize,omitempty"`
	OptimizedSize      string `json:"optimizedSize,omitempty"`
	Size               string `json:"size,omitempty"`
	CompressionRatio   string `json:"compressionRatio,omitempty"`
	Savings            string `json:"savings,omitempty"`
	OriginalDimensions string `json:"originalDimensions,omitempty"`
	NewDimensions      string `json:"newDimensions,omitempty"`
	Duration           string `json:"duration,omitempty"`
	FPS                int    `json:"fps,omitempty"`
	ProcessingTime     string `json:"processingTime,omitempty"`

	Timestamp string `json:"timestamp"`
}

// ConversionEvent is handed to the external conversion engine for actions
// that are only acknowledged here.
type ConversionEvent struct {
	ID         string         `json:"id"`
	Action     ConvertAction  `json:"action"`
	URL        string         `json:"url,omitempty"`
	HasFile    bool           `json:"has_file"`
	Options    map[string]any `json:"options,omitempty"`
	ReceivedAt time.Time      `json:"received_at"`
}
