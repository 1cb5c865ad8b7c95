package reporting

import (
	"fmt"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Resumen"

// renderExcel serializa o snapshot em uma planilha de aba única. Assim como o
// relatório de texto, é uma cópia fiel do snapshot, sem recálculo.
func renderExcel(snapshot *domain.DashboardSnapshot) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar estilo: %w", err)
	}

	row := 1
	writeHeader := func(title string) {
		cell := fmt.Sprintf("A%d", row)
		f.SetCellValue(sheetName, cell, title)
		f.SetCellStyle(sheetName, cell, cell, bold)
		row++
	}
	writePair := func(label string, value any) {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), value)
		row++
	}

	writeHeader("Reporte de ventas")
	writePair("Generado", snapshot.GeneratedAt.Format("2006-01-02 15:04"))
	row++

	writeHeader("Filtros")
	writePair("Producto", snapshot.Filters.Product)
	writePair("Período", rangeLabel(snapshot.Filters.Range))
	writePair("Registros", snapshot.RecordCount)
	row++

	writeHeader("Indicadores")
	writePair("Ventas del mes", snapshot.Totals.CurrentMonth)
	writePair("Mes anterior", snapshot.Totals.PreviousMonth)
	writePair("Ventas totales", snapshot.Totals.Overall)
	writePair("Crecimiento %", snapshot.Totals.GrowthPercent)
	writePair("Promedio mensual", snapshot.Comparison.Average)
	writePair("Diferencia vs promedio", snapshot.Comparison.Difference)
	writePair("Análisis", snapshot.Insight.Message)
	row++

	writeHeader("Productos más vendidos")
	for _, product := range snapshot.TopProducts {
		writePair(product.Product, product.Total)
	}
	row++

	writeHeader("Proyección (7 días)")
	for _, point := range snapshot.Forecast {
		writePair(point.Date.Format(time.DateOnly), point.Projected)
	}
	writePair("Nota", domain.ForecastDisclaimer)

	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", "B", 18)

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar planilha: %w", err)
	}

	return buffer.Bytes(), nil
}
