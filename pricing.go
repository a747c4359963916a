package dbn

import (
	"fmt"
	"time"
)

// FormatPrice renders a fixed-9 DBN price as a decimal string, per spec
// §4.8's pretty_px option. UNDEF_PRICE renders as "".
func FormatPrice(px int64) string {
	if px == UNDEF_PRICE {
		return ""
	}
	neg := px < 0
	u := uint64(px)
	if neg {
		u = uint64(-px)
	}
	whole := u / 1_000_000_000
	frac := u % 1_000_000_000
	if neg {
		return fmt.Sprintf("-%d.%09d", whole, frac)
	}
	return fmt.Sprintf("%d.%09d", whole, frac)
}

// FormatTimestamp renders a nanosecond UNIX timestamp as RFC 3339 with
// nanosecond precision in UTC, per spec §4.8's pretty_ts option: always nine
// fractional digits, e.g. "2020-12-28T13:00:00.000000000Z".
// UNDEF_TIMESTAMP renders as "".
func FormatTimestamp(ts uint64) string {
	if ts == UNDEF_TIMESTAMP {
		return ""
	}
	return time.Unix(0, int64(ts)).UTC().Format("2006-01-02T15:04:05.000000000Z07:00")
}
