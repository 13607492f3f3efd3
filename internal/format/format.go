// Package format holds pure formatting helpers shared by the data layer
// and the document pipeline. All human-readable output targets the
// Russian locale used by the kit-start UI.
package format

import (
	"fmt"
	"time"
)

const (
	kilobyte = 1024
	megabyte = 1024 * kilobyte
	gigabyte = 1024 * megabyte
)

// FileSize renders a byte count with Russian unit suffixes.
func FileSize(bytes int64) string {
	switch {
	case bytes == 0:
		return "0 байт"
	case bytes < kilobyte:
		return fmt.Sprintf("%d байт", bytes)
	case bytes < megabyte:
		return fmt.Sprintf("%.1f КБ", float64(bytes)/kilobyte)
	case bytes < gigabyte:
		return fmt.Sprintf("%.1f МБ", float64(bytes)/megabyte)
	default:
		return fmt.Sprintf("%.1f ГБ", float64(bytes)/gigabyte)
	}
}

// Date renders a timestamp as DD.MM.YYYY.
func Date(t time.Time) string {
	return t.Format("02.01.2006")
}

// DateTime renders a timestamp as DD.MM.YYYY HH:MM.
func DateTime(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

// RelativeTime renders the distance between t and now, e.g.
// "5 минут назад". Anything older than a week falls back to Date.
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	sec := int(diff.Round(time.Second).Seconds())
	min := int(diff.Round(time.Minute).Minutes())
	hours := int(diff.Round(time.Hour).Hours())
	days := hours / 24

	switch {
	case sec < 60:
		return "только что"
	case min < 60:
		return fmt.Sprintf("%d %s назад", min, pluralize(min, "минуту", "минуты", "минут"))
	case hours < 24:
		return fmt.Sprintf("%d %s назад", hours, pluralize(hours, "час", "часа", "часов"))
	case days < 7:
		return fmt.Sprintf("%d %s назад", days, pluralize(days, "день", "дня", "дней"))
	default:
		return Date(t)
	}
}

// pluralize picks the Russian plural form for n.
func pluralize(n int, one, few, many string) string {
	mod10 := n % 10
	mod100 := n % 100

	if mod100 >= 11 && mod100 <= 19 {
		return many
	}
	if mod10 == 1 {
		return one
	}
	if mod10 >= 2 && mod10 <= 4 {
		return few
	}
	return many
}
