package types

import "time"

// DateTime is a calendar timestamp with millisecond precision (spec §3
// "DateTime"). It is distinct from Date (spec §9 open question: the two
// share a conceptual "point in time" idea but are encoded under different
// tags, 6 and 22 respectively, and must be kept as separate Go types).
type DateTime struct {
	t time.Time
}

// NewDateTime truncates t to millisecond precision.
func NewDateTime(t time.Time) DateTime {
	return DateTime{t: t.Truncate(time.Millisecond)}
}

// DateTimeFromUnixMilli builds a DateTime from a signed Unix-epoch
// millisecond count.
func DateTimeFromUnixMilli(ms int64) DateTime {
	return DateTime{t: time.UnixMilli(ms).UTC()}
}

// UnixMilli returns the signed Unix-epoch millisecond count.
func (d DateTime) UnixMilli() int64 {
	return d.t.UnixMilli()
}

// Time returns the underlying time.Time.
func (d DateTime) Time() time.Time {
	return d.t
}

// Equal compares two DateTimes at millisecond precision.
func (d DateTime) Equal(other DateTime) bool {
	return d.UnixMilli() == other.UnixMilli()
}

// Date is a calendar date with day precision, encoded as a signed
// epoch-day count (tag 22). It is a distinct kind from DateTime even though
// some format revisions share a tag between them (spec §9); this module
// keeps them as separate tags and separate Go types.
type Date struct {
	days int64
}

const hoursPerDay = 24 * time.Hour

// NewDateFromTime floors t to a whole day and records its epoch-day count.
func NewDateFromTime(t time.Time) Date {
	secsPerDay := int64(hoursPerDay / time.Second)
	secs := t.UTC().Unix()

	days := secs / secsPerDay
	if secs%secsPerDay < 0 {
		days--
	}

	return Date{days: days}
}

// DateFromEpochDays builds a Date from a signed epoch-day count.
func DateFromEpochDays(days int64) Date {
	return Date{days: days}
}

// EpochDays returns the signed epoch-day count.
func (d Date) EpochDays() int64 {
	return d.days
}

// Time returns midnight UTC of the represented day.
func (d Date) Time() time.Time {
	return time.Unix(d.days*int64(hoursPerDay/time.Second), 0).UTC()
}

// Equal compares two Dates by epoch-day count.
func (d Date) Equal(other Date) bool {
	return d.days == other.days
}
