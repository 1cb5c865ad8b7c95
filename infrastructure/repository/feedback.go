package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const feedbackTable = "feedback"

// FeedbackRepository persiste as avaliações enviadas pelos usuários.
// É um sink de escrita: o dashboard nunca lê o feedback de volta; a listagem
// existe só para consulta administrativa.
type FeedbackRepository interface {
	Save(feedback *domain.Feedback) error
	ListRecent(limit int) ([]*domain.Feedback, error)
}

type feedbackRepository struct {
	conn postgres.Queryer
}

// NewFeedbackRepository cria o repositório de feedback
func NewFeedbackRepository(conn postgres.Queryer) FeedbackRepository {
	return &feedbackRepository{
		conn: conn,
	}
}

func (r *feedbackRepository) Save(feedback *domain.Feedback) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(feedbackTable).
		Columns("business", "comment", "would_pay", "created_at").
		Values(
			feedback.Business,
			feedback.Comment,
			feedback.WouldPay,
			time.Now(),
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&feedback.ID, &feedback.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *feedbackRepository) ListRecent(limit int) ([]*domain.Feedback, error) {
	query, args, err := squirrel.
		Select("f.id, f.business, f.comment, f.would_pay, f.created_at").
		From(feedbackTable + " f").
		OrderBy("f.created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	feedbacks := make([]*domain.Feedback, 0)
	for rows.Next() {
		feedback := &domain.Feedback{}
		err := rows.Scan(
			&feedback.ID,
			&feedback.Business,
			&feedback.Comment,
			&feedback.WouldPay,
			&feedback.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear feedback: %w", err)
		}
		feedbacks = append(feedbacks, feedback)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return feedbacks, nil
}
