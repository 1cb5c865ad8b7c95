package importing

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// RawRow é uma linha de dados indexada pelo nome (minúsculo) da coluna
type RawRow map[string]string

// rawTable é a representação tabular do arquivo antes de qualquer validação
// de tipo: cabeçalho resolvido em minúsculas e linhas na ordem do arquivo
type rawTable struct {
	Headers []string
	Rows    []RawRow
}

// parseTable lê o CSV completo em memória. Tolera CRLF/LF, linhas em branco
// no final e quantidade variável de campos por linha; o que não tolera é um
// arquivo sem cabeçalho ou sem nenhuma linha de dados.
func parseTable(r io.Reader) (*rawTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // Quantidade de campos pode variar por linha

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoDataRows
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}

	headers := make([]string, len(header))
	for i, name := range header {
		headers[i] = strings.ToLower(strings.TrimSpace(name))
	}

	table := &rawTable{Headers: headers}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
		}

		if isBlankRecord(record) {
			continue
		}

		row := make(RawRow, len(headers))
		for i, value := range record {
			if i >= len(headers) {
				break // Campos além do cabeçalho são descartados
			}
			row[headers[i]] = strings.TrimSpace(value)
		}
		table.Rows = append(table.Rows, row)
	}

	if len(table.Rows) == 0 {
		return nil, ErrNoDataRows
	}

	return table, nil
}

// isBlankRecord identifica linhas compostas apenas por separadores
func isBlankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
