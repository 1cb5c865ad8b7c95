package feedback

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Submit(t *testing.T) {
	tests := []struct {
		name     string
		feedback *domain.Feedback
		setup    func(repo *mocks.MockFeedbackRepository)
		wantErr  error
	}{
		{
			name: "Avaliação completa é persistida",
			feedback: &domain.Feedback{
				Business: "Tienda de ropa",
				Comment:  "Muy útil para ver las ventas del mes.",
				WouldPay: domain.WouldPayYes,
			},
			setup: func(repo *mocks.MockFeedbackRepository) {
				repo.EXPECT().Save(gomock.Any()).Return(nil)
			},
		},
		{
			name: "Campos com espaços são aparados antes de salvar",
			feedback: &domain.Feedback{
				Business: "  Óptica  ",
				WouldPay: "  Tal vez  ",
			},
			setup: func(repo *mocks.MockFeedbackRepository) {
				repo.EXPECT().Save(gomock.Any()).DoAndReturn(func(f *domain.Feedback) error {
					assert.Equal(t, "Óptica", f.Business)
					assert.Equal(t, domain.WouldPayMaybe, f.WouldPay)
					return nil
				})
			},
		},
		{
			name:     "Intenção de pagamento vazia",
			feedback: &domain.Feedback{Comment: "ok"},
			wantErr:  ErrWouldPayRequired,
		},
		{
			name:     "Intenção de pagamento fora das opções",
			feedback: &domain.Feedback{WouldPay: "Quizás"},
			wantErr:  ErrInvalidWouldPay,
		},
		{
			name: "Comentário longo demais",
			feedback: &domain.Feedback{
				WouldPay: domain.WouldPayNo,
				Comment:  strings.Repeat("a", 2001),
			},
			wantErr: ErrCommentTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockFeedbackRepository(ctrl)
			if tt.setup != nil {
				tt.setup(repo)
			}

			err := NewService(repo).Submit(tt.feedback)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_Recent(t *testing.T) {
	entries := []*domain.Feedback{
		{ID: 2, Business: "Óptica", WouldPay: domain.WouldPayYes},
		{ID: 1, Business: "Tienda", WouldPay: domain.WouldPayNo},
	}

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{
			name:      "Limite explícito é repassado ao repositório",
			limit:     10,
			wantLimit: 10,
		},
		{
			name:      "Sem limite usa o padrão",
			limit:     0,
			wantLimit: 50,
		},
		{
			name:      "Limite acima do teto é reduzido",
			limit:     1000,
			wantLimit: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockFeedbackRepository(ctrl)
			repo.EXPECT().ListRecent(tt.wantLimit).Return(entries, nil)

			found, err := NewService(repo).Recent(tt.limit)
			assert.NoError(t, err)
			assert.Equal(t, entries, found)
		})
	}
}

func TestService_Submit_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoErr := errors.New("connection refused")

	repo := mocks.NewMockFeedbackRepository(ctrl)
	repo.EXPECT().Save(gomock.Any()).Return(repoErr)

	err := NewService(repo).Submit(&domain.Feedback{WouldPay: domain.WouldPayNo})
	assert.ErrorIs(t, err, repoErr)
}
