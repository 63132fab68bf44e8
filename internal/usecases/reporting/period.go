package reporting

import (
	"fmt"
	"time"

	"github.com/vfg2006/ozon-logistics-api/internal/domain"
	"github.com/vfg2006/ozon-logistics-api/pkg/apiErrors"
)

// ResolvePeriod turns a relative day count into the window [now-days, now).
// The lookback is capped by maxDays when maxDays is positive.
func ResolvePeriod(days int, now time.Time, maxDays int) (domain.Period, error) {
	if days <= 0 {
		return domain.Period{}, NewReportError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod,
			fmt.Sprintf("days must be positive, got %d", days))
	}
	if maxDays > 0 && days > maxDays {
		return domain.Period{}, NewReportError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod,
			fmt.Sprintf("days must not exceed %d, got %d", maxDays, days))
	}

	return domain.Period{
		From: now.AddDate(0, 0, -days),
		To:   now,
		Days: days,
	}, nil
}
