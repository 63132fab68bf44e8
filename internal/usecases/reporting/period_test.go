package reporting_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ozon-logistics-api/internal/usecases/reporting"
	"github.com/vfg2006/ozon-logistics-api/pkg/apiErrors"
)

func TestResolvePeriod(t *testing.T) {
	for _, days := range []int{1, 7, 28, 31, 90} {
		period, err := reporting.ResolvePeriod(days, referenceNow, 90)
		require.NoError(t, err)

		assert.Equal(t, days, period.Days)
		assert.True(t, period.To.Equal(referenceNow), "to must equal now")
		assert.True(t, period.From.AddDate(0, 0, days).Equal(period.To), "window must span %d calendar days", days)
		assert.False(t, period.To.After(referenceNow))
	}
}

func TestResolvePeriod_CalendarDaysAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata not available")
	}
	now := time.Date(2024, 4, 2, 10, 0, 0, 0, loc)

	period, err := reporting.ResolvePeriod(7, now, 90)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 26, 10, 0, 0, 0, loc), period.From)
}

func TestResolvePeriod_Invalid(t *testing.T) {
	tests := []struct {
		name string
		days int
	}{
		{name: "zero days", days: 0},
		{name: "negative days", days: -1},
		{name: "above maximum lookback", days: 91},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reporting.ResolvePeriod(tt.days, referenceNow, 90)
			require.Error(t, err)
			assert.True(t, errors.Is(err, reporting.ErrInvalidPeriod))

			var reportErr *reporting.ReportError
			require.True(t, errors.As(err, &reportErr))
			assert.Equal(t, apiErrors.ErrInvalidPeriod, reportErr.Code)
		})
	}
}

func TestResolvePeriod_NoMaximum(t *testing.T) {
	period, err := reporting.ResolvePeriod(365, referenceNow, 0)
	require.NoError(t, err)
	assert.Equal(t, 365, period.Days)
}
