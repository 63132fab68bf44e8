package render

import (
	"fmt"
	"strings"

	"github.com/vfg2006/ozon-logistics-api/internal/domain"
)

// TextRenderer writes a tab separated plain text report, suitable for chat
// messages and quick previews.
type TextRenderer struct{}

func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

func (TextRenderer) Format() string      { return FormatText }
func (TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }
func (TextRenderer) Extension() string   { return "txt" }

// fieldReplacer keeps a field on its own column and line.
var fieldReplacer = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

func (TextRenderer) Render(doc *domain.ReportDocument) ([]byte, error) {
	var b strings.Builder
	line := func(cols ...string) {
		for i, col := range cols {
			if i > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(fieldReplacer.Replace(col))
		}
		b.WriteByte('\n')
	}

	s := doc.Summary

	line(labelTitle)
	line(fmt.Sprintf("%s: %s", labelGenerated, doc.GeneratedAt.Format(generatedDateLayout)))
	line()

	line(labelPeriod)
	line(fmt.Sprintf("%s: %s", labelFrom, doc.Period.DateFrom()))
	line(fmt.Sprintf("%s: %s", labelTo, doc.Period.DateTo()))
	line(fmt.Sprintf("%s: %d", labelDays, doc.Period.Days))
	line()

	line(labelSummary)
	line(labelMetric, labelValue)
	line(labelTotalOrders, fmt.Sprint(s.TotalOrders))
	line(labelTotalRevenue, s.TotalRevenue.StringFixed(2)+" ₽")
	line(labelLogisticsCost, s.TotalLogisticsCost.StringFixed(2)+" ₽")
	line(labelProfitMargin, marginLabel(s.ProfitMargin))
	line(labelDeliveryTime, s.AverageDeliveryTime.String()+" дней")
	line(labelReturnRate, percent(s.ReturnRate).StringFixed(1)+"%")
	line()

	line(labelLogistics)
	line(logisticsHeaders...)
	for _, r := range doc.LogisticsRecords {
		line(r.OrderID, string(r.DeliveryType), string(r.Status), r.Cost.StringFixed(2)+" ₽", deliveryDateLabel(r), r.Warehouse)
	}
	line()

	line(labelProducts)
	line(productHeaders...)
	for _, p := range doc.Products {
		line(p.SKU, p.Name, p.Price.StringFixed(2)+" ₽", fmt.Sprint(p.StockCount), p.Category)
	}

	if len(doc.Warnings) > 0 {
		line()
		line(labelWarnings)
		for _, w := range doc.Warnings {
			line(w.Code, w.Message)
		}
	}

	return []byte(b.String()), nil
}
