package entity

// RequestResult is the normalized outcome of a single outbound call.
// Either Status and Data are set (Success true) or Error is set.
type RequestResult struct {
	Success bool              `json:"success"`
	Status  int               `json:"status,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Data    string            `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
}

type RequestOptions struct {
	Method string
	Body   []byte
}
