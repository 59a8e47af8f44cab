package common

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestUnixTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "fractional epoch seconds",
			input: `1755005925.233`,
			want:  time.Unix(1755005925, 233000000),
		},
		{
			name:  "integer epoch seconds",
			input: `1755005925`,
			want:  time.Unix(1755005925, 0),
		},
		{
			name:  "RFC3339 string",
			input: `"2025-01-10T15:30:00Z"`,
			want:  time.Date(2025, 1, 10, 15, 30, 0, 0, time.UTC),
		},
		{
			name:  "null value",
			input: `null`,
		},
		{
			name:    "invalid format",
			input:   `"not a timestamp"`,
			wantErr: true,
		},
		{
			name:    "boolean",
			input:   `true`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ut UnixTime
			err := json.Unmarshal([]byte(tt.input), &ut)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want.IsZero() {
				assert.True(t, ut.Time.IsZero(), "expected zero time, got %v", ut.Time)
				return
			}
			assert.True(t, ut.Time.Equal(tt.want), "expected %v, got %v", tt.want, ut.Time)
		})
	}
}

func TestUnixTime_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want string
	}{
		{
			name: "whole seconds",
			time: time.Unix(1755005925, 0),
			want: `1755005925`,
		},
		{
			name: "milliseconds",
			time: time.Unix(1755005925, 233000000),
			want: `1755005925.233`,
		},
		{
			name: "sub-millisecond precision is dropped",
			time: time.Unix(1755005925, 233999999),
			want: `1755005925.233`,
		},
		{
			name: "zero time",
			want: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(UnixTime{Time: tt.time})
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestUnixTime_InStruct(t *testing.T) {
	type payload struct {
		CreationDate *UnixTime `json:"creationDate,omitempty"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"creationDate":1700000000.5}`), &p))
	require.NotNil(t, p.CreationDate)
	assert.Equal(t, int64(1700000000), p.CreationDate.Unix())
	assert.Equal(t, 500*time.Millisecond, time.Duration(p.CreationDate.Nanosecond()))

	out, err := json.Marshal(payload{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out))
}

func TestConversions(t *testing.T) {
	assert.Nil(t, FromTime(nil))
	assert.Nil(t, (*UnixTime)(nil).ToTime())

	now := time.Now()
	ut := FromTime(&now)
	require.NotNil(t, ut)
	assert.True(t, ut.ToTime().Equal(now))
	assert.True(t, NewUnixTime(now).Equal(now))
}

func TestUnixTime_MarshalYAML(t *testing.T) {
	type payload struct {
		CreationDate *UnixTime
		UpdateDate   *UnixTime
	}

	instant := time.Unix(1700000000, 500*int64(time.Millisecond))
	utc, err := yaml.Marshal(payload{CreationDate: NewUnixTime(instant.UTC()), UpdateDate: &UnixTime{}})
	require.NoError(t, err)
	tokyo, err := yaml.Marshal(payload{CreationDate: NewUnixTime(instant.In(time.FixedZone("JST", 9*60*60))), UpdateDate: &UnixTime{}})
	require.NoError(t, err)

	assert.Equal(t, string(utc), string(tokyo))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(utc, &decoded))
	assert.Equal(t, 1700000000.5, decoded["creationdate"])
	assert.Nil(t, decoded["updatedate"])
}
