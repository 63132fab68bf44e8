package reporting_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ozon-logistics-api/internal/domain"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/reporting"
)

func TestSynthesize_SevenDayScenario(t *testing.T) {
	period := samplePeriod(7)
	logistics := sampleLogistics(period.From)
	products := sampleProducts()

	doc, err := reporting.Synthesize(period, sampleAnalytics(), logistics, products, referenceNow)
	require.NoError(t, err)

	assert.Equal(t, period, doc.Period)
	assert.Equal(t, 150, doc.Summary.TotalOrders)
	assert.Equal(t, "45000.50", doc.Summary.TotalRevenue.StringFixed(2))
	assert.Equal(t, "350.00", doc.Summary.TotalLogisticsCost.StringFixed(2))
	require.NotNil(t, doc.Summary.ProfitMargin)
	assert.True(t, doc.Summary.ProfitMargin.Equal(decimal.RequireFromString("99.22")), "got %s", doc.Summary.ProfitMargin)
	assert.Equal(t, "2.5", doc.Summary.AverageDeliveryTime.String())
	assert.Equal(t, "0.05", doc.Summary.ReturnRate.String())
	assert.Empty(t, doc.Warnings)
	assert.Equal(t, referenceNow, doc.GeneratedAt)

	require.Len(t, doc.LogisticsRecords, 2)
	assert.Equal(t, "12345678", doc.LogisticsRecords[0].OrderID)
	assert.Equal(t, "12345679", doc.LogisticsRecords[1].OrderID)
	require.Len(t, doc.Products, 2)
	assert.Equal(t, "SKU001", doc.Products[0].SKU)
	assert.Equal(t, "SKU002", doc.Products[1].SKU)
}

func TestSynthesize_DoesNotAliasInput(t *testing.T) {
	period := samplePeriod(7)
	logistics := sampleLogistics(period.From)
	products := sampleProducts()

	doc, err := reporting.Synthesize(period, sampleAnalytics(), logistics, products, referenceNow)
	require.NoError(t, err)

	logistics[0].OrderID = "changed"
	products[0].SKU = "changed"

	assert.Equal(t, "12345678", doc.LogisticsRecords[0].OrderID)
	assert.Equal(t, "SKU001", doc.Products[0].SKU)
}

func TestTotalLogisticsCost_PermutationInvariant(t *testing.T) {
	costs := []string{"0.10", "0.20", "150.00", "200.00", "0.30", "19.99", "1000000.01"}
	records := make([]domain.LogisticsRecord, 0, len(costs))
	for _, c := range costs {
		records = append(records, domain.LogisticsRecord{Cost: decimal.RequireFromString(c)})
	}

	expected := reporting.TotalLogisticsCost(records)
	assert.Equal(t, "1000370.60", expected.StringFixed(2))

	// rotate and reverse
	for shift := 1; shift < len(records); shift++ {
		rotated := append(append([]domain.LogisticsRecord{}, records[shift:]...), records[:shift]...)
		assert.True(t, expected.Equal(reporting.TotalLogisticsCost(rotated)))
	}
	reversed := make([]domain.LogisticsRecord, len(records))
	for i := range records {
		reversed[len(records)-1-i] = records[i]
	}
	assert.True(t, expected.Equal(reporting.TotalLogisticsCost(reversed)))
}

func TestProfitMargin(t *testing.T) {
	tests := []struct {
		name    string
		revenue string
		cost    string
		want    string
		ok      bool
	}{
		{name: "reference values", revenue: "45000.50", cost: "350.00", want: "99.22", ok: true},
		{name: "no logistics cost", revenue: "1000", cost: "0", want: "100", ok: true},
		{name: "cost above revenue", revenue: "100", cost: "150", want: "-50", ok: true},
		{name: "rounds half away from zero", revenue: "200", cost: "0.01", want: "100", ok: true},
		{name: "zero revenue", revenue: "0", cost: "350.00", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			margin, ok := reporting.ProfitMargin(decimal.RequireFromString(tt.revenue), decimal.RequireFromString(tt.cost))
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, margin.Equal(decimal.RequireFromString(tt.want)), "got %s", margin)
			}
		})
	}
}

func TestSynthesize_ZeroRevenue(t *testing.T) {
	period := samplePeriod(7)
	analytics := sampleAnalytics()
	analytics.TotalRevenue = decimal.Zero

	doc, err := reporting.Synthesize(period, analytics, sampleLogistics(period.From), sampleProducts(), referenceNow)
	require.Error(t, err)
	assert.True(t, errors.Is(err, reporting.ErrDegenerateReport))

	assert.Nil(t, doc.Summary.ProfitMargin)
	assert.True(t, doc.HasWarning(domain.WarningDegenerateReport))
	assert.Equal(t, "350.00", doc.Summary.TotalLogisticsCost.StringFixed(2))
	assert.Len(t, doc.LogisticsRecords, 2)
}

func TestSynthesize_EmptyLogistics(t *testing.T) {
	doc, err := reporting.Synthesize(samplePeriod(28), sampleAnalytics(), nil, nil, referenceNow)
	require.NoError(t, err)

	assert.True(t, doc.Summary.TotalLogisticsCost.IsZero())
	assert.True(t, doc.Summary.ProfitMargin.Equal(decimal.NewFromInt(100)))
	assert.NotNil(t, doc.LogisticsRecords)
	assert.Empty(t, doc.LogisticsRecords)
}
