package render

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/ozon-logistics-api/internal/domain"
)

const (
	sheetSummary   = "Сводка"
	sheetLogistics = "Логистика"
	sheetProducts  = "Товары"

	numFmtTwoDecimals = 2
	numFmtInteger     = 1
	minColumnWidth    = 15
)

// XLSXRenderer builds a spreadsheet with summary, logistics and product sheets.
type XLSXRenderer struct{}

func NewXLSXRenderer() *XLSXRenderer {
	return &XLSXRenderer{}
}

func (XLSXRenderer) Format() string { return FormatXLSX }
func (XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (XLSXRenderer) Extension() string { return "xlsx" }

type workbook struct {
	f           *excelize.File
	headerStyle int
	moneyStyle  int
	intStyle    int
}

func (XLSXRenderer) Render(doc *domain.ReportDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	wb, err := newWorkbook(f)
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, errors.Wrap(err, "xlsx: error renaming summary sheet")
	}
	if err := wb.writeSummary(doc); err != nil {
		return nil, errors.Wrap(err, "xlsx: error writing summary")
	}
	if err := wb.writeLogistics(doc); err != nil {
		return nil, errors.Wrap(err, "xlsx: error writing logistics")
	}
	if err := wb.writeProducts(doc); err != nil {
		return nil, errors.Wrap(err, "xlsx: error writing products")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "xlsx: error encoding workbook")
	}
	return buf.Bytes(), nil
}

func newWorkbook(f *excelize.File) (*workbook, error) {
	border := []excelize.Border{
		{Type: "top", Color: "#000000", Style: 1},
		{Type: "left", Color: "#000000", Style: 1},
		{Type: "right", Color: "#000000", Style: 1},
		{Type: "bottom", Color: "#000000", Style: 1},
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    border,
	})
	if err != nil {
		return nil, errors.Wrap(err, "xlsx: error creating header style")
	}

	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecimals})
	if err != nil {
		return nil, errors.Wrap(err, "xlsx: error creating number style")
	}

	intStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtInteger})
	if err != nil {
		return nil, errors.Wrap(err, "xlsx: error creating integer style")
	}

	return &workbook{f: f, headerStyle: headerStyle, moneyStyle: moneyStyle, intStyle: intStyle}, nil
}

func (wb *workbook) row(sheet string, row int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return wb.f.SetSheetRow(sheet, cell, &values)
}

func (wb *workbook) header(sheet string, row int, headers []string) error {
	values := make([]interface{}, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	if err := wb.row(sheet, row, values...); err != nil {
		return err
	}

	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(headers), row)
	if err := wb.f.SetCellStyle(sheet, first, last, wb.headerStyle); err != nil {
		return err
	}

	for i := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := wb.f.SetColWidth(sheet, col, col, minColumnWidth); err != nil {
			return err
		}
	}
	return nil
}

func (wb *workbook) style(sheet, col string, fromRow, toRow, style int) error {
	if toRow < fromRow {
		return nil
	}
	return wb.f.SetCellStyle(sheet, col+strconv.Itoa(fromRow), col+strconv.Itoa(toRow), style)
}

func (wb *workbook) writeSummary(doc *domain.ReportDocument) error {
	s := doc.Summary
	sheet := sheetSummary

	rows := [][]interface{}{
		{labelTitle},
		{labelGenerated, doc.GeneratedAt.Format(generatedDateLayout)},
		{},
		{labelPeriod},
		{labelFrom, doc.Period.DateFrom()},
		{labelTo, doc.Period.DateTo()},
		{labelDays, doc.Period.Days},
		{},
	}
	for i, values := range rows {
		if err := wb.row(sheet, i+1, values...); err != nil {
			return err
		}
	}

	headerRow := len(rows) + 1
	if err := wb.header(sheet, headerRow, []string{labelMetric, labelValue}); err != nil {
		return err
	}

	var margin interface{} = labelNotAvailable
	if s.ProfitMargin != nil {
		margin = s.ProfitMargin.InexactFloat64()
	}

	metrics := [][]interface{}{
		{labelTotalOrders, s.TotalOrders},
		{labelTotalRevenue, s.TotalRevenue.InexactFloat64()},
		{labelLogisticsCost, s.TotalLogisticsCost.InexactFloat64()},
		{labelProfitMargin + ", %", margin},
		{labelDeliveryTime + ", дней", s.AverageDeliveryTime.InexactFloat64()},
		{labelReturnRate + ", %", percent(s.ReturnRate).InexactFloat64()},
	}
	for i, values := range metrics {
		if err := wb.row(sheet, headerRow+1+i, values...); err != nil {
			return err
		}
	}
	if err := wb.style(sheet, "B", headerRow+2, headerRow+len(metrics), wb.moneyStyle); err != nil {
		return err
	}

	if len(doc.Warnings) > 0 {
		next := headerRow + len(metrics) + 2
		if err := wb.row(sheet, next, labelWarnings); err != nil {
			return err
		}
		for i, w := range doc.Warnings {
			if err := wb.row(sheet, next+1+i, w.Code, w.Message); err != nil {
				return err
			}
		}
	}

	return wb.f.SetColWidth(sheet, "A", "A", 30)
}

func (wb *workbook) writeLogistics(doc *domain.ReportDocument) error {
	sheet := sheetLogistics
	if _, err := wb.f.NewSheet(sheet); err != nil {
		return err
	}
	if err := wb.header(sheet, 1, logisticsHeaders); err != nil {
		return err
	}

	for i, r := range doc.LogisticsRecords {
		err := wb.row(sheet, i+2,
			r.OrderID,
			string(r.DeliveryType),
			string(r.Status),
			r.Cost.InexactFloat64(),
			deliveryDateLabel(r),
			r.Warehouse,
		)
		if err != nil {
			return err
		}
	}

	return wb.style(sheet, "D", 2, len(doc.LogisticsRecords)+1, wb.moneyStyle)
}

func (wb *workbook) writeProducts(doc *domain.ReportDocument) error {
	sheet := sheetProducts
	if _, err := wb.f.NewSheet(sheet); err != nil {
		return err
	}
	if err := wb.header(sheet, 1, productHeaders); err != nil {
		return err
	}

	for i, p := range doc.Products {
		err := wb.row(sheet, i+2,
			p.SKU,
			p.Name,
			p.Price.InexactFloat64(),
			p.StockCount,
			p.Category,
		)
		if err != nil {
			return err
		}
	}

	last := len(doc.Products) + 1
	if err := wb.style(sheet, "C", 2, last, wb.moneyStyle); err != nil {
		return err
	}
	return wb.style(sheet, "D", 2, last, wb.intStyle)
}
