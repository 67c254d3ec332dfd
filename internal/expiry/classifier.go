// Package expiry classifies medicine stock by days remaining until the
// expiry date and by stock level. Classification is a pure function of its
// arguments and is recomputed on every read; nothing here is cached.
package expiry

import (
	"math"
	"time"
)

const (
	// DefaultLowStockThreshold flags stock strictly below this count.
	DefaultLowStockThreshold = 10
	// DefaultWarningWindowDays is the expiring-soon window when the caller
	// does not pick one (the UI offers 15/30/60/90).
	DefaultWarningWindowDays = 30

	criticalWindowDays = 15
	warningWindowDays  = 30
)

// Severity levels ordered for badge selection: expired > critical >
// warning > normal.
const (
	StatusExpired  = "expired"
	StatusCritical = "critical"
	StatusWarning  = "warning"
	StatusNormal   = "normal"
)

type Options struct {
	LowStockThreshold int
	WarningWindowDays int
}

type Classification struct {
	DaysUntilExpiry int
	IsExpired       bool
	IsLowStock      bool
	IsExpiringSoon  bool
	Status          string
}

// DaysUntil returns ceil((midnight(expiry) - midnight(today)) / 24h). Both
// dates are truncated to midnight first so partial-day offsets never bias
// the result.
func DaysUntil(expiry, today time.Time) int {
	diff := midnight(expiry).Sub(midnight(today))
	return int(math.Ceil(diff.Hours() / 24))
}

// Classify derives the expiry and stock flags for a single medicine. A zero
// expiry date means the medicine carries no expiry; it classifies as normal
// with zero days remaining.
func Classify(expiry, today time.Time, stock int64, opts Options) Classification {
	if opts.LowStockThreshold <= 0 {
		opts.LowStockThreshold = DefaultLowStockThreshold
	}
	if opts.WarningWindowDays <= 0 {
		opts.WarningWindowDays = DefaultWarningWindowDays
	}

	c := Classification{
		IsLowStock: stock < int64(opts.LowStockThreshold),
		Status:     StatusNormal,
	}
	if expiry.IsZero() {
		return c
	}

	c.DaysUntilExpiry = DaysUntil(expiry, today)
	c.IsExpired = c.DaysUntilExpiry < 0
	c.IsExpiringSoon = !c.IsExpired && c.DaysUntilExpiry <= opts.WarningWindowDays

	switch {
	case c.IsExpired:
		c.Status = StatusExpired
	case c.DaysUntilExpiry <= criticalWindowDays:
		c.Status = StatusCritical
	case c.DaysUntilExpiry <= warningWindowDays:
		c.Status = StatusWarning
	}
	return c
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
