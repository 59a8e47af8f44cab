package iotsitewise

import "time"

// NewTimeInNanos splits t into whole epoch seconds and a nanosecond offset.
func NewTimeInNanos(t time.Time) *TimeInNanos {
	return (&TimeInNanos{}).
		SetTimeInSeconds(t.Unix()).
		SetOffsetInNanos(int32(t.Nanosecond()))
}

// Time returns the instant as a UTC time.Time. A nil receiver yields the zero
// time.
func (s *TimeInNanos) Time() time.Time {
	if s == nil {
		return time.Time{}
	}
	return time.Unix(s.GetTimeInSeconds(), int64(s.GetOffsetInNanos())).UTC()
}
