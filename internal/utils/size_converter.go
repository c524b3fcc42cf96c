package utils

import (
	"fmt"
	"math"
)

// FormatMB renders a size given in megabytes the way a browser download
// list does: whole KB below 1 MB, two decimals below 10 of a unit, one
// decimal above.
func FormatMB(mb float64) string {
	if mb < 1 {
		return fmt.Sprintf("%d KB", int64(math.Floor(mb*1024)))
	}
	if mb < 1024 {
		return fmt.Sprintf("%.*f MB", decimals(mb), mb)
	}
	gb := mb / 1024
	if gb < 1024 {
		return fmt.Sprintf("%.*f GB", decimals(gb), gb)
	}
	return fmt.Sprintf("%.2f TB", gb/1024)
}

func decimals(v float64) int {
	if v < 10 {
		return 2
	}
	return 1
}
