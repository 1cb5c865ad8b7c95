package feedback

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// maxCommentLength limita o texto livre do formulário
const maxCommentLength = 2000

// Limites da listagem administrativa
const (
	defaultRecentLimit = 50
	maxRecentLimit     = 200
)

// Collector recebe as avaliações do formulário e as entrega ao repositório.
// O dashboard nunca lê o feedback de volta; a listagem existe só para
// consulta administrativa.
type Collector interface {
	Submit(feedback *domain.Feedback) error
	Recent(limit int) ([]*domain.Feedback, error)
}

type Service struct {
	feedbackRepo repository.FeedbackRepository
}

// NewService cria o serviço de coleta de feedback
func NewService(feedbackRepo repository.FeedbackRepository) Collector {
	return &Service{
		feedbackRepo: feedbackRepo,
	}
}

func (s *Service) Submit(feedback *domain.Feedback) error {
	feedback.Business = strings.TrimSpace(feedback.Business)
	feedback.Comment = strings.TrimSpace(feedback.Comment)
	feedback.WouldPay = strings.TrimSpace(feedback.WouldPay)

	if feedback.WouldPay == "" {
		return ErrWouldPayRequired
	}
	if !domain.ValidWouldPay(feedback.WouldPay) {
		return ErrInvalidWouldPay
	}
	if len(feedback.Comment) > maxCommentLength {
		return ErrCommentTooLong
	}

	if err := s.feedbackRepo.Save(feedback); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"feedback_id": feedback.ID,
		"would_pay":   feedback.WouldPay,
	}).Info("feedback: avaliação registrada")

	return nil
}

// Recent lista as avaliações mais novas para a consulta administrativa
func (s *Service) Recent(limit int) ([]*domain.Feedback, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	return s.feedbackRepo.ListRecent(limit)
}
