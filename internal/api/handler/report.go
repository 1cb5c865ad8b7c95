package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// GetReport monta o snapshot com os filtros da query string e o serializa
// no formato pedido (text ou xlsx), pronto para download
func GetReport(insighter insighting.Insighter, reporter reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do dataset não fornecido", nil)
			return
		}

		filters := filtersFromQuery(r).Normalize()
		if err := filters.Validate(); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		format := r.URL.Query().Get("format")

		snapshot, err := insighter.BuildSnapshot(id, filters)
		if err != nil {
			if errors.Is(err, repository.ErrDatasetNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, "Dataset não encontrado ou expirado", nil)
				return
			}
			logger.WithError(err).WithFields(log.Fields{
				"dataset_id": id,
			}).Error("report: erro ao montar snapshot")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar o relatório", nil)
			return
		}

		document, contentType, err := reporter.Render(snapshot, format)
		if err != nil {
			if errors.Is(err, reporting.ErrUnknownFormat) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de relatório inválido (use text ou xlsx)", nil)
				return
			}
			logger.WithError(err).WithFields(log.Fields{
				"dataset_id": id,
				"format":     format,
			}).Error("report: erro ao serializar relatório")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar o relatório", nil)
			return
		}

		logger.WithFields(log.Fields{
			"dataset_id": id,
			"format":     format,
			"bytes":      len(document),
		}).Info("report: relatório gerado com sucesso")

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reportFilename(format, snapshot.GeneratedAt)))
		w.Write(document)
	})
}

// reportFilename monta o nome do arquivo de download com a data de geração
func reportFilename(format string, generatedAt time.Time) string {
	extension := "txt"
	if format == reporting.FormatExcel {
		extension = "xlsx"
	}
	return fmt.Sprintf("reporte-ventas-%s.%s", generatedAt.Format(time.DateOnly), extension)
}
