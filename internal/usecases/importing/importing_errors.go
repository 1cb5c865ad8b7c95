package importing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de importação de arquivos
var (
	// Erros de formato de arquivo: nada do arquivo é aproveitado
	ErrUnreadableFile = errors.New("unable to read uploaded file")
	ErrNoDataRows     = errors.New("file has no data rows after the header")
	ErrFileTooLarge   = errors.New("file exceeds the maximum allowed size")

	// Erro de schema: coluna obrigatória não resolvida
	ErrMissingColumns = errors.New("required columns could not be resolved")

	// Nenhuma linha sobreviveu à normalização
	ErrNoValidRows = errors.New("no valid rows after normalization")
)

// MissingColumnsError informa quais campos canônicos ficaram sem coluna
type MissingColumnsError struct {
	Fields []string // campos canônicos ausentes ("date", "sales")
}

// Error implementa a interface error
func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("required columns could not be resolved: %v", e.Fields)
}

// Unwrap permite o uso de errors.Is com ErrMissingColumns
func (e *MissingColumnsError) Unwrap() error {
	return ErrMissingColumns
}
