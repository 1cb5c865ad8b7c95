package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/feedback"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// feedbackRequest é o corpo esperado do formulário de avaliação
type feedbackRequest struct {
	Business string `json:"business"`
	Comment  string `json:"comment"`
	WouldPay string `json:"would_pay"`
}

type feedbackResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// SubmitFeedback registra a avaliação enviada pelo formulário
func SubmitFeedback(collector feedback.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request feedbackRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		entry := &domain.Feedback{
			Business: request.Business,
			Comment:  request.Comment,
			WouldPay: request.WouldPay,
		}

		if err := collector.Submit(entry); err != nil {
			switch {
			case errors.Is(err, feedback.ErrWouldPayRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "El campo de intención de pago es obligatorio.", nil)
			case errors.Is(err, feedback.ErrInvalidWouldPay):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Intención de pago inválida (use Sí, Tal vez o No).", nil)
			case errors.Is(err, feedback.ErrCommentTooLong):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "El comentario es demasiado largo.", nil)
			default:
				logger.WithError(err).Error("feedback: erro ao registrar avaliação")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar a avaliação", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(feedbackResponse{
			ID:      entry.ID,
			Message: "¡Gracias por tu feedback!",
		})
	})
}

// ListFeedback devolve as avaliações mais recentes para consulta
// administrativa. Query param opcional: limit
func ListFeedback(collector feedback.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		entries, err := collector.Recent(limit)
		if err != nil {
			logger.WithError(err).Error("feedback: erro ao listar avaliações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar as avaliações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"count":    len(entries),
			"feedback": entries,
		})
	})
}
