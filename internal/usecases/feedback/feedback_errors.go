package feedback

import "errors"

// Erros específicos para o contexto de feedback
var (
	ErrWouldPayRequired = errors.New("would_pay answer is required")
	ErrInvalidWouldPay  = errors.New("would_pay answer is not one of the accepted options")
	ErrCommentTooLong   = errors.New("comment exceeds the maximum length")
)
