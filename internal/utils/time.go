package utils

import (
	"time"
)

// FormatTime renders t in timezone using the redemption timestamp layout.
// Unknown zones fall back to UTC.
func FormatTime(t time.Time, timezone string) string {
	if timezone == "" {
		timezone = DefaultTimeZone
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}

	return t.In(loc).Format(RedemptionLayout)
}

// UnixToTime converts epoch seconds, as found in a JWT exp claim.
func UnixToTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
