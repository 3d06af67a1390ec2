package pkg

import (
	"testing"
	"time"
)

func TestSmartDurationFormat(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0"},
		{250 * time.Millisecond, "250ms"},
		{3 * time.Microsecond, "3μs"},
		{90 * time.Second, "1m30s"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1h2m"},
		{25 * time.Hour, "1d1h"},
	}
	for _, c := range cases {
		if got := SmartDurationFormat(c.in); got != c.want {
			t.Fatalf("%v: got %q want %q", c.in, got, c.want)
		}
	}
}
