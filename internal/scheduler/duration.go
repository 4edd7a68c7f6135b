package scheduler

import (
	"math"
	"strings"
)

// baseDurations maps a POI category to an expected visit length in
// minutes before popularity scaling.
var baseDurations = map[string]int{
	"museum":        120,
	"attraction":    90,
	"shopping":      90,
	"park":          120,
	"architecture":  90,
	"entertainment": 120,
	"culture":       120,
	"sports":        90,
	"nature":        120,
	"adventure":     120,
}

const defaultBaseDuration = 90

// visitDuration returns the expected visit length for a category and a
// popularity score in [0,1]. Popularity 0.5 yields the base duration
// exactly; 1.0 scales it by 1.1x, 0.0 by 0.9x.
func visitDuration(category string, popularity float64) int {
	base, ok := baseDurations[strings.ToLower(category)]
	if !ok {
		base = defaultBaseDuration
	}
	return int(math.Round(float64(base) * (1 + 0.2*(popularity-0.5))))
}
