package ksuid

import "time"

// Time returns the id's timestamp as a calendar time in the host's
// local time zone. The unit must match the one used at generation.
func (id ID) Time(u Unit) (time.Time, error) {
	ts, err := id.Timestamp(u)
	if err != nil {
		return time.Time{}, err
	}

	if u == Millisecond {
		return time.UnixMilli(int64(ts) + EpochMilliseconds), nil
	}

	return time.Unix(int64(ts)+EpochSeconds, 0), nil
}

// LocalTime decodes a second-resolution id and returns the local time
// it was generated at.
func LocalTime(s string) (time.Time, error) {
	return LocalTimeWithUnit(s, Second)
}

// LocalTimeWithUnit decodes an id and returns the local time it was
// generated at, reading the timestamp field at the given resolution.
func LocalTimeWithUnit(s string, u Unit) (time.Time, error) {
	if !u.valid() {
		return time.Time{}, ErrInvalidUnit
	}

	id, err := Parse(s)
	if err != nil {
		return time.Time{}, err
	}

	return id.Time(u)
}
