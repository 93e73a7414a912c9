package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDuration reads sentence lengths the way moderators type them:
// anything time.ParseDuration accepts, plus a whole-day suffix ("2d").
func ParseDuration(s string) (time.Duration, error) {
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, fmt.Errorf("invalid day count %q", days)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	return time.ParseDuration(s)
}
