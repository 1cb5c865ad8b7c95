package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Largura fixa da "página" do relatório de texto
const pageWidth = 72

// renderText serializa o snapshot como relatório de texto plano. É uma
// renderização de mão única: todos os números já vêm prontos do snapshot e
// nada é recalculado aqui.
func renderText(snapshot *domain.DashboardSnapshot) []byte {
	var b strings.Builder

	line := strings.Repeat("=", pageWidth)
	thin := strings.Repeat("-", pageWidth)

	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b, center("REPORTE DE VENTAS"))
	fmt.Fprintln(&b, center("Generado: "+snapshot.GeneratedAt.Format("2006-01-02 15:04")))
	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Filtros aplicados")
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "  Producto: %s\n", snapshot.Filters.Product)
	fmt.Fprintf(&b, "  Período:  %s\n", rangeLabel(snapshot.Filters.Range))
	fmt.Fprintf(&b, "  Registros: %d\n", snapshot.RecordCount)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Indicadores")
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "  Ventas del mes:      %12.2f\n", snapshot.Totals.CurrentMonth)
	fmt.Fprintf(&b, "  Mes anterior:        %12.2f\n", snapshot.Totals.PreviousMonth)
	fmt.Fprintf(&b, "  Ventas totales:      %12.2f\n", snapshot.Totals.Overall)
	fmt.Fprintf(&b, "  Crecimiento:         %11.1f%%\n", snapshot.Totals.GrowthPercent)
	fmt.Fprintf(&b, "  Promedio mensual:    %12.2f\n", snapshot.Comparison.Average)
	fmt.Fprintf(&b, "  Diferencia vs prom.: %12.2f\n", snapshot.Comparison.Difference)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Análisis")
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "  %s\n", snapshot.Insight.Message)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Productos más vendidos")
	fmt.Fprintln(&b, thin)
	if len(snapshot.TopProducts) == 0 {
		fmt.Fprintln(&b, "  (sin datos)")
	}
	for i, product := range snapshot.TopProducts {
		fmt.Fprintf(&b, "  %d. %-30s %12.2f\n", i+1, product.Product, product.Total)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Proyección (7 días)")
	fmt.Fprintln(&b, thin)
	for _, point := range snapshot.Forecast {
		fmt.Fprintf(&b, "  %s %20.0f\n", point.Date.Format(time.DateOnly), point.Projected)
	}
	fmt.Fprintf(&b, "\n  %s\n", domain.ForecastDisclaimer)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, line)

	return []byte(b.String())
}

func center(s string) string {
	if len(s) >= pageWidth {
		return s
	}
	pad := (pageWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

// rangeLabel traduz a janela de datas para o rótulo exibido no relatório
func rangeLabel(rangeTag string) string {
	switch rangeTag {
	case domain.RangeLast30:
		return "Últimos 30 días"
	case domain.RangeLast90:
		return "Últimos 90 días"
	case domain.RangeLast180:
		return "Últimos 180 días"
	default:
		return "Todo el período"
	}
}
