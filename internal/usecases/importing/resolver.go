package importing

// Tabelas de sinônimos para os campos canônicos. A resolução é por igualdade
// exata (já em minúsculas), sem fuzzy matching: um cabeçalho "fechas" não
// resolve para data.
var (
	dateSynonyms    = []string{"date", "fecha", "day"}
	salesSynonyms   = []string{"sales", "ventas", "total", "amount"}
	productSynonyms = []string{"product", "producto"}
)

// columnMapping liga cada campo canônico ao nome real da coluna no arquivo.
// ProductKey fica vazio quando o arquivo não tem coluna de produto, o que não
// é um erro.
type columnMapping struct {
	DateKey    string
	SalesKey   string
	ProductKey string
}

// resolveColumns encontra as colunas canônicas no cabeçalho. Data e vendas
// são obrigatórias; a ausência de qualquer uma é um erro de schema.
func resolveColumns(headers []string) (columnMapping, error) {
	mapping := columnMapping{
		DateKey:    findColumn(headers, dateSynonyms),
		SalesKey:   findColumn(headers, salesSynonyms),
		ProductKey: findColumn(headers, productSynonyms),
	}

	var missing []string
	if mapping.DateKey == "" {
		missing = append(missing, "date")
	}
	if mapping.SalesKey == "" {
		missing = append(missing, "sales")
	}
	if len(missing) > 0 {
		return columnMapping{}, &MissingColumnsError{Fields: missing}
	}

	return mapping, nil
}

// findColumn retorna o primeiro cabeçalho que pertence ao conjunto de
// sinônimos, preservando a ordem das colunas do arquivo
func findColumn(headers []string, synonyms []string) string {
	for _, header := range headers {
		for _, synonym := range synonyms {
			if header == synonym {
				return header
			}
		}
	}
	return ""
}
