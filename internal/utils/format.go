package utils

import (
	"fmt"
	"math"
)

var sizeUnits = []string{"KB", "MB", "GB"}

// FormatSize renders a byte count with binary unit suffixes and one decimal
// place. The unit is chosen by floor(log1024) of the size expressed in KB,
// so 1572864 bytes renders as "1.5MB" and 1073741824 as "1.0GB".
func FormatSize(bytes int64) string {
	kb := float64(bytes) / 1024
	exp := 0
	if kb >= 1 {
		exp = int(math.Floor(math.Log(kb) / math.Log(1024)))
	}
	if exp > len(sizeUnits)-1 {
		exp = len(sizeUnits) - 1
	}
	value := kb / math.Pow(1024, float64(exp))
	return fmt.Sprintf("%.1f%s", value, sizeUnits[exp])
}

// FormatDuration renders whole seconds as "3m 32s" (with a leading hour
// component when needed), the shape used in description captions.
func FormatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	return fmt.Sprintf("%dm %ds", m, s)
}
