package common

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/goccy/go-json"
)

// UnixTime is a timestamp carried on the wire as Unix epoch seconds, with a
// fractional part for sub-second precision.
type UnixTime struct {
	time.Time
}

// UnmarshalJSON accepts epoch seconds (integer or fractional) and, for
// hand-written payloads, RFC3339 strings. null leaves the zero time.
func (t *UnixTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var seconds float64
	if err := json.Unmarshal(data, &seconds); err == nil {
		// Millisecond precision avoids float artefacts in the fraction.
		millis := int64(math.Round(seconds * 1000))
		t.Time = time.Unix(millis/1000, (millis%1000)*int64(time.Millisecond))
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cannot unmarshal %s into UnixTime", data)
	}
	parsed, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return fmt.Errorf("cannot parse %s as RFC3339: %w", str, err)
	}
	t.Time = parsed
	return nil
}

// MarshalJSON writes epoch seconds rounded to milliseconds, or null for the
// zero time.
func (t UnixTime) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	seconds := float64(t.Time.UnixMilli()) / 1000
	return json.Marshal(seconds)
}

// MarshalYAML writes the same epoch seconds as MarshalJSON.
func (t UnixTime) MarshalYAML() (interface{}, error) {
	if t.Time.IsZero() {
		return nil, nil
	}
	return float64(t.Time.UnixMilli()) / 1000, nil
}

// NewUnixTime wraps t.
func NewUnixTime(t time.Time) *UnixTime {
	return &UnixTime{Time: t}
}

// ToTime converts a UnixTime pointer to a time.Time pointer.
func (t *UnixTime) ToTime() *time.Time {
	if t == nil {
		return nil
	}
	return &t.Time
}

// FromTime converts a time.Time pointer to a UnixTime pointer.
func FromTime(t *time.Time) *UnixTime {
	if t == nil {
		return nil
	}
	return &UnixTime{Time: *t}
}
