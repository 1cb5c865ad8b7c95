package domain

// Categorias de insight derivadas da comparação mensal
const (
	InsightNoData      = "no_data"
	InsightExceptional = "exceptional"
	InsightGood        = "good"
	InsightWeak        = "weak"
	InsightStable      = "stable"
)

// Severidades associadas às categorias
const (
	SeverityPositive = "positive"
	SeverityNegative = "negative"
	SeverityNeutral  = "neutral"
)

// comparisonThreshold é a fração da média mensal que separa um mês
// excepcional (ou fraco) de um mês apenas bom (ou estável)
const comparisonThreshold = 0.15

// Insight é o resumo categórico legível derivado das métricas do mês
type Insight struct {
	Category string `json:"category"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// SelectInsight mapeia a comparação mensal para uma das categorias fixas.
// As comparações são estritas: diferença exatamente zero ou exatamente no
// limiar de 15% cai no ramo de menor severidade.
func SelectInsight(comparison MonthlyComparison, hasData bool) Insight {
	if !hasData {
		return Insight{
			Category: InsightNoData,
			Severity: SeverityNeutral,
			Message:  "Sube un archivo o descarga el ejemplo para comenzar.",
		}
	}

	threshold := comparisonThreshold * comparison.Average

	switch {
	case comparison.Difference > threshold:
		return Insight{
			Category: InsightExceptional,
			Severity: SeverityPositive,
			Message:  "Mes excepcional: las ventas superan el promedio mensual en más de un 15%.",
		}
	case comparison.Difference > 0:
		return Insight{
			Category: InsightGood,
			Severity: SeverityPositive,
			Message:  "Crecimiento positivo respecto al promedio mensual, sigue así.",
		}
	case comparison.Difference < -threshold:
		return Insight{
			Category: InsightWeak,
			Severity: SeverityNegative,
			Message:  "Las ventas están más de un 15% por debajo del promedio mensual.",
		}
	default:
		return Insight{
			Category: InsightStable,
			Severity: SeverityNeutral,
			Message:  "Las ventas se mantuvieron estables respecto al promedio mensual.",
		}
	}
}
