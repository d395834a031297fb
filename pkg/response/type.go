package response

import (
	"encoding/json"
	"time"
)

// Problem is an RFC 7807 error body.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	TraceID  string `json:"traceId,omitempty"`
}

// Timestamp is a time that marshals as TimestampFormat in UTC.
type Timestamp time.Time

// String formats t as TimestampFormat.
func (t Timestamp) String() string {
	return time.Time(t).UTC().Format(TimestampFormat)
}

// MarshalJSON implements json.Marshaler for Timestamp.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}
