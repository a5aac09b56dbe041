package entity

import "errors"

var (
	ErrMissingAction  = errors.New("missing required field: action")
	ErrInvalidAction  = errors.New("invalid action")
	ErrMissingSource  = errors.New("either url or file must be provided")
	ErrNoWebsite      = errors.New("upstream website is not configured")
	ErrPublishFailed  = errors.New("failed to publish conversion request")
	ErrUnknownVariant = errors.New("no canned result for action")
)
