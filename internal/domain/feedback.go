package domain

import "time"

// Respostas aceitas para a pergunta "¿Pagarías por esto?"
const (
	WouldPayYes   = "Sí"
	WouldPayMaybe = "Tal vez"
	WouldPayNo    = "No"
)

// Feedback é o registro livre enviado pelo usuário ao final da avaliação.
// É um sink de escrita: nunca é lido de volta pelo núcleo do dashboard.
type Feedback struct {
	ID        int64     `json:"id,omitempty"`
	Business  string    `json:"business"`
	Comment   string    `json:"comment"`
	WouldPay  string    `json:"would_pay"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// ValidWouldPay informa se a resposta é uma das três opções do formulário
func ValidWouldPay(answer string) bool {
	switch answer {
	case WouldPayYes, WouldPayMaybe, WouldPayNo:
		return true
	}
	return false
}
