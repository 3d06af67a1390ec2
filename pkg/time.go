package pkg

import (
	"strconv"
	"strings"
	"time"
)

type timeUnit struct {
	ShortName string
	Value     time.Duration
}

// units from largest to smallest for formatting logic
var units = []timeUnit{
	{ShortName: "d", Value: 24 * time.Hour},
	{ShortName: "h", Value: time.Hour},
	{ShortName: "m", Value: time.Minute},
	{ShortName: "s", Value: time.Second},
	{ShortName: "ms", Value: time.Millisecond},
	{ShortName: "μs", Value: time.Microsecond},
	{ShortName: "ns", Value: time.Nanosecond},
}

// SmartDurationFormat renders a duration compactly: sub-second durations pick
// the largest fitting unit, longer ones show at most two units (e.g. "1m30s").
func SmartDurationFormat(d time.Duration) string {
	if d == 0 {
		return "0"
	}

	if d < time.Second {
		if d >= time.Millisecond {
			return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
		}
		if d >= time.Microsecond {
			return strconv.FormatInt(d.Microseconds(), 10) + "μs"
		}
		return strconv.FormatInt(d.Nanoseconds(), 10) + "ns"
	}

	var builder strings.Builder
	remaining := d
	parts := 0
	for _, unit := range units {
		if remaining < unit.Value {
			continue
		}
		count := remaining / unit.Value
		builder.WriteString(strconv.FormatInt(int64(count), 10))
		builder.WriteString(unit.ShortName)
		remaining %= unit.Value
		parts++
		if parts == 2 || remaining == 0 {
			break
		}
	}
	return builder.String()
}
