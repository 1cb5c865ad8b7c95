package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-analytics-api/internal/usecases/sampledata"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// DownloadSampleCSV gera e devolve o CSV de demonstração.
// Query params opcionais: months, seed e products=true
func DownloadSampleCSV(generator sampledata.Generator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		opts := sampledata.Options{}

		if raw := r.URL.Query().Get("months"); raw != "" {
			months, err := strconv.Atoi(raw)
			if err != nil || months < 1 || months > 36 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro months inválido (use um inteiro entre 1 e 36)", nil)
				return
			}
			opts.Months = months
		}

		if raw := r.URL.Query().Get("seed"); raw != "" {
			seed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro seed inválido", nil)
				return
			}
			opts.Seed = seed
		}

		opts.IncludeProducts = r.URL.Query().Get("products") == "true"

		document, err := generator.GenerateCSV(opts)
		if err != nil {
			logger.WithError(err).Error("sample: erro ao gerar CSV de exemplo")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar o arquivo de exemplo", nil)
			return
		}

		logger.WithFields(log.Fields{
			"months":   opts.Months,
			"products": opts.IncludeProducts,
			"bytes":    len(document),
		}).Info("sample: CSV de exemplo gerado com sucesso")

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="ventas-ejemplo.csv"`)
		w.Write(document)
	})
}
