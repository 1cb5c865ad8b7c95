package sampledata

import (
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gocarina/gocsv"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// Parâmetros da série de demonstração: valor base com deriva leve para cima,
// reforço sazonal em meses específicos, ruído limitado e piso mínimo
const (
	baseSales     = 80.0
	dailyDrift    = 0.05
	noiseSpread   = 15
	minDailySales = 30
)

// Catálogo fixo de produtos da loja fictícia
var sampleProducts = []string{
	"Camiseta Negra",
	"Jeans Azul",
	"Zapatos Deportivos",
	"Gorra",
	"Chaqueta",
}

// Options controla a geração do arquivo de exemplo
type Options struct {
	Months          int   // meses de histórico; 0 usa o padrão da configuração
	Seed            int64 // 0 = semente aleatória
	IncludeProducts bool  // adiciona a coluna opcional de produto
}

// Generator produz o CSV de demonstração oferecido na página inicial.
// O arquivo é só uma fixture de demonstração: a aleatoriedade fica confinada
// aqui e nunca entra no caminho de agregação.
type Generator interface {
	GenerateCSV(opts Options) ([]byte, error)
}

type Service struct {
	defaultMonths int
	now           func() time.Time
}

// NewService cria o gerador de dados de exemplo
func NewService(cfg *config.Config) *Service {
	return &Service{
		defaultMonths: cfg.SampleData.Months,
		now:           time.Now,
	}
}

// WithClock troca a fonte de "hoje" para os testes
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type sampleRow struct {
	Date  string `csv:"date"`
	Sales int    `csv:"sales"`
}

type sampleProductRow struct {
	Date    string `csv:"date"`
	Sales   int    `csv:"sales"`
	Product string `csv:"product"`
}

func (s *Service) GenerateCSV(opts Options) ([]byte, error) {
	months := opts.Months
	if months <= 0 {
		months = s.defaultMonths
	}

	faker := gofakeit.New(opts.Seed)

	end := utils.LocalDay(s.now())
	start := end.AddDate(0, -months, 0)

	base := baseSales
	var plainRows []sampleRow
	var productRows []sampleProductRow

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		base += dailyDrift

		sales := base + seasonalBoost(day.Month()) + float64(noise(faker))
		if sales < minDailySales {
			sales = minDailySales
		}

		rounded := int(math.Round(sales))
		date := day.Format(time.DateOnly)

		if opts.IncludeProducts {
			productRows = append(productRows, sampleProductRow{
				Date:    date,
				Sales:   rounded,
				Product: sampleProducts[faker.IntRange(0, len(sampleProducts)-1)],
			})
		} else {
			plainRows = append(plainRows, sampleRow{Date: date, Sales: rounded})
		}
	}

	if opts.IncludeProducts {
		out, err := gocsv.MarshalString(&productRows)
		if err != nil {
			return nil, err
		}
		return []byte(out), nil
	}

	out, err := gocsv.MarshalString(&plainRows)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// noise sorteia a variação diária no intervalo [-noiseSpread, noiseSpread),
// com o teto exclusivo
func noise(faker *gofakeit.Faker) int {
	return faker.IntRange(-noiseSpread, noiseSpread-1)
}

// seasonalBoost reproduz os picos de fim de ano e de meio de ano da série
func seasonalBoost(month time.Month) float64 {
	switch month {
	case time.November, time.December:
		return 30
	case time.June, time.July:
		return 15
	default:
		return 0
	}
}
