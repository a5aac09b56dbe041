package entity

import "time"

const timestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp renders t as an ISO-8601 UTC string with millisecond precision.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
