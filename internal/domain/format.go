package domain

import (
	"fmt"
	"time"
)

// FormatLocalDateTime renders t the way zh-HK locales print a date-time,
// e.g. "15/2/2025 下午3:04:05", in Hong Kong time.
func FormatLocalDateTime(t time.Time) string {
	local := t.In(HongKong)

	period := "上午"
	hour := local.Hour()
	if hour >= 12 {
		period = "下午"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d/%d/%d %s%d:%02d:%02d",
		local.Day(), int(local.Month()), local.Year(),
		period, hour, local.Minute(), local.Second())
}

// YesNo renders a flag as 是/否
func YesNo(v bool) string {
	if v {
		return "是"
	}
	return "否"
}

// CurrentMonth returns the Hong Kong calendar month of t as YYYY-MM
func CurrentMonth(t time.Time) string {
	return t.In(HongKong).Format(MonthFormat)
}
