package util

import (
	"fmt"
	"strconv"
	"time"
)

// ParseDuration accepts either a whole number of minutes ("90") or a Go
// duration string ("1h30m").
func ParseDuration(input string) (time.Duration, error) {
	if minutes, err := strconv.Atoi(input); err == nil {
		return time.Duration(minutes) * time.Minute, nil
	}

	duration, err := time.ParseDuration(input)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s\n\nValid formats:\n"+
			"• Minutes: 90\n"+
			"• Duration: 1h30m, 45m, 2h", input)
	}
	return duration, nil
}
