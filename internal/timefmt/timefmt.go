// Package timefmt renders playback positions as clock labels.
package timefmt

import (
	"fmt"
	"math"
	"time"
)

// Format renders a position given in seconds as "M:SS".
// Minutes are not wrapped into hours. NaN and negative input are not
// handled; callers guard against them.
func Format(seconds float64) string {
	minutes := int(math.Floor(seconds / 60))
	secs := int(math.Floor(math.Mod(seconds, 60)))
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// FormatDuration is Format for a time.Duration.
func FormatDuration(d time.Duration) string {
	return Format(d.Seconds())
}
