package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/ozon-logistics-api/internal/domain"
)

// Output formats
const (
	FormatJSON = "json"
	FormatXLSX = "xlsx"
	FormatText = "text"
)

var ErrUnknownFormat = errors.New("unknown report format")

// Renderer encodes a report document into a downloadable file.
type Renderer interface {
	Render(doc *domain.ReportDocument) ([]byte, error)
	Format() string
	ContentType() string
	Extension() string
}

// Registry resolves renderers by format name.
type Registry struct {
	renderers map[string]Renderer
}

func NewRegistry(renderers ...Renderer) *Registry {
	r := &Registry{renderers: make(map[string]Renderer, len(renderers))}
	for _, renderer := range renderers {
		r.renderers[renderer.Format()] = renderer
	}
	return r
}

// NewDefaultRegistry registers every built-in renderer.
func NewDefaultRegistry() *Registry {
	return NewRegistry(NewJSONRenderer(), NewXLSXRenderer(), NewTextRenderer())
}

func (r *Registry) Get(format string) (Renderer, error) {
	renderer, ok := r.renderers[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, format, strings.Join(r.Formats(), ", "))
	}
	return renderer, nil
}

func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.renderers))
	for f := range r.renderers {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

// FileName builds the attachment name, e.g. ozon_logistics_2024-03-08_2024-03-15.xlsx.
func FileName(doc *domain.ReportDocument, renderer Renderer) string {
	return fmt.Sprintf("ozon_logistics_%s_%s.%s", doc.Period.DateFrom(), doc.Period.DateTo(), renderer.Extension())
}

// Labels shared by the spreadsheet and text layouts.
const (
	labelTitle          = "Ozon Logistics Report"
	labelGenerated      = "Сформирован"
	labelPeriod         = "Период отчета"
	labelFrom           = "С"
	labelTo             = "По"
	labelDays           = "Дней"
	labelSummary        = "Сводка"
	labelMetric         = "Показатель"
	labelValue          = "Значение"
	labelTotalOrders    = "Всего заказов"
	labelTotalRevenue   = "Общая выручка"
	labelLogisticsCost  = "Стоимость логистики"
	labelProfitMargin   = "Маржа прибыли"
	labelDeliveryTime   = "Среднее время доставки"
	labelReturnRate     = "Процент возвратов"
	labelLogistics      = "Данные логистики"
	labelProducts       = "Товары"
	labelInTransit      = "В пути"
	labelNotAvailable   = "н/д"
	labelWarnings       = "Предупреждения"
	displayDateLayout   = "2006-01-02"
	generatedDateLayout = "02.01.2006 15:04"
)

var (
	logisticsHeaders = []string{"ID заказа", "Тип доставки", "Статус", "Стоимость", "Дата доставки", "Склад"}
	productHeaders   = []string{"SKU", "Название", "Цена", "Остатки", "Категория"}
)

func deliveryDateLabel(r domain.LogisticsRecord) string {
	if r.DeliveryDate != nil {
		return r.DeliveryDate.Format(displayDateLayout)
	}
	if r.Status == domain.DeliveryStatusDelivered {
		return labelNotAvailable
	}
	return labelInTransit
}

func marginLabel(margin *decimal.Decimal) string {
	if margin == nil {
		return labelNotAvailable
	}
	return margin.StringFixed(2) + "%"
}

func percent(rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(decimal.NewFromInt(100))
}
