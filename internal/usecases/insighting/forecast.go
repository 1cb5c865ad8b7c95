package insighting

import (
	"math"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// ForecastHorizonDays é o horizonte fixo da projeção: os 7 dias de
// calendário seguintes ao dia da consulta
const ForecastHorizonDays = 7

// Forecast projeta a média diária achatada do conjunto filtrado sobre os
// próximos 7 dias (hoje+1 até hoje+7). Sem sazonalidade e sem tendência; é
// uma estimativa, não um modelo de previsão, e os sinks devem apresentá-la
// como tal (domain.ForecastDisclaimer).
func Forecast(filtered []domain.SalesRecord, today time.Time) []domain.ForecastPoint {
	dailyAverage := 0.0
	if len(filtered) > 0 {
		dailyAverage = SumSales(filtered) / float64(len(filtered))
	}

	projected := math.Round(dailyAverage)
	day := utils.LocalDay(today)

	points := make([]domain.ForecastPoint, 0, ForecastHorizonDays)
	for i := 1; i <= ForecastHorizonDays; i++ {
		points = append(points, domain.ForecastPoint{
			Date:      day.AddDate(0, 0, i),
			Projected: projected,
		})
	}
	return points
}
