package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// GetDashboard devolve o snapshot completo do dashboard para o dataset,
// recalculado a cada chamada com a seleção de filtros da query string
func GetDashboard(service insighting.Insighter) http.Handler {
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

		snapshot, err := service.BuildSnapshot(id, filters)
		if err != nil {
			if errors.Is(err, repository.ErrDatasetNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, "Dataset não encontrado ou expirado", nil)
				return
			}
			logger.WithError(err).WithFields(log.Fields{
				"dataset_id": id,
			}).Error("dashboard: erro ao montar snapshot")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o dashboard", nil)
			return
		}

		logger.WithFields(log.Fields{
			"dataset_id": id,
			"records":    snapshot.RecordCount,
		}).Info("dashboard: snapshot devolvido com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logrus.WithError(err).Error("dashboard: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// filtersFromQuery lê a seleção de filtros da query string
func filtersFromQuery(r *http.Request) domain.DatasetFilters {
	return domain.DatasetFilters{
		Product: r.URL.Query().Get("product"),
		Range:   r.URL.Query().Get("range"),
	}
}
