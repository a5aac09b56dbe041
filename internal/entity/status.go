package entity

type StatusReport struct {
	Service      string `json:"service"`
	Website      string `json:"website"`
	Reachable    bool   `json:"reachable"`
	StatusCode   int    `json:"statusCode,omitempty"`
	ResponseSize *int   `json:"responseSize,omitempty"`
	Error        string `json:"error,omitempty"`
	Timestamp    string `json:"timestamp"`
}
