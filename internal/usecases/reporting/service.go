package reporting

import (
	"errors"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Formatos de relatório suportados
const (
	FormatText  = "text"
	FormatExcel = "xlsx"
)

// ErrUnknownFormat indica um formato de relatório não suportado
var ErrUnknownFormat = errors.New("unknown report format")

// Reporter serializa um DashboardSnapshot já calculado em um documento.
// O serviço não tem acesso a repositórios de propósito: relatórios nunca
// recalculam métricas, só apresentam o snapshot que receberam.
type Reporter interface {
	Render(snapshot *domain.DashboardSnapshot, format string) ([]byte, string, error)
}

type Service struct{}

// NewService cria o serviço de relatórios
func NewService() Reporter {
	return &Service{}
}

// Render devolve o documento e o content-type correspondente
func (s *Service) Render(snapshot *domain.DashboardSnapshot, format string) ([]byte, string, error) {
	switch format {
	case FormatText, "":
		return renderText(snapshot), "text/plain; charset=utf-8", nil
	case FormatExcel:
		document, err := renderExcel(snapshot)
		if err != nil {
			return nil, "", err
		}
		return document, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	default:
		return nil, "", ErrUnknownFormat
	}
}
