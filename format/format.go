// Package format renders times, durations, sizes and amounts for display.
package format

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cast"
)

// DefaultLayout is the layout Time uses when none is given.
const DefaultLayout = "{y}-{m}-{d} {h}:{i}:{s}"

// ErrTimestamp is returned for values ParseTimestamp cannot read.
var ErrTimestamp = errors.New("arbor: invalid timestamp")

var token = regexp.MustCompile(`\{(?:y|m|d|h|i|s|a)+\}`)

// Time renders t with a brace-token layout:
//
//	{y} year  {m} month  {d} day  {h} hour  {i} minute  {s} second  {a} weekday
//
// Numeric fields below 10 are zero padded. A token may repeat its letter
// ({yyyy}); the last letter decides the field.
func Time(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultLayout
	}
	return token.ReplaceAllStringFunc(layout, func(match string) string {
		var value int
		switch match[len(match)-2] {
		case 'y':
			value = t.Year()
		case 'm':
			value = int(t.Month())
		case 'd':
			value = t.Day()
		case 'h':
			value = t.Hour()
		case 'i':
			value = t.Minute()
		case 's':
			value = t.Second()
		case 'a':
			return Weekday(int(t.Weekday()))
		}
		return fmt.Sprintf("%02d", value)
	})
}

// ParseTimestamp reads a Unix timestamp given as a number or a digit
// string. Ten-digit values are seconds, anything else milliseconds.
func ParseTimestamp(v any) (time.Time, error) {
	n, err := cast.ToInt64E(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrTimestamp, v)
	}
	if len(strconv.FormatInt(n, 10)) == 10 {
		return time.Unix(n, 0), nil
	}
	return time.UnixMilli(n), nil
}

// Relative describes t relative to now, e.g. "3 minutes ago". Anything in
// the last 30 seconds is "just now".
func Relative(t, now time.Time) string {
	if d := now.Sub(t); d >= 0 && d < 30*time.Second {
		return "just now"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// Duration splits a millisecond count into days, hours, minutes and
// seconds.
func Duration(ms int64) string {
	const day = 24 * time.Hour
	d := time.Duration(ms) * time.Millisecond
	days := d / day
	d -= days * day
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	return fmt.Sprintf("%d days %d hours %d minutes %s seconds",
		days, hours, minutes, strconv.FormatFloat(d.Seconds(), 'f', -1, 64))
}

var weekdays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Weekday names day n, counting from Sunday = 0.
func Weekday(n int) string {
	if n < 0 || n >= len(weekdays) {
		return "unknown"
	}
	return weekdays[n]
}

// Money groups the integer digits of v in thousands. Empty input renders
// as an empty string.
func Money(v any) (string, error) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", nil
	}
	if strings.ContainsAny(s, ".eE") {
		f, err := cast.ToFloat64E(s)
		if err != nil {
			return "", err
		}
		return humanize.Commaf(f), nil
	}
	n, err := cast.ToInt64E(s)
	if err != nil {
		return "", err
	}
	return humanize.Comma(n), nil
}

// Bytes renders n with IEC units, e.g. "1.5 KiB".
func Bytes(n uint64) string {
	return humanize.IBytes(n)
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysFrom returns midnight n days after t's day; negative n goes back.
func DaysFrom(t time.Time, n int) time.Time {
	return StartOfDay(t).AddDate(0, 0, n)
}
