package domain

import "time"

// Dataset é a coleção de registros normalizados carregada em um upload.
// Cada upload cria um Dataset novo; um novo upload para a mesma sessão
// substitui o anterior por completo (sem merge). Nada é persistido em disco.
type Dataset struct {
	ID         string        `json:"id"`
	Filename   string        `json:"filename,omitempty"`
	Records    []SalesRecord `json:"records"`
	UploadedAt time.Time     `json:"uploaded_at"`
}

// Products retorna os rótulos de produto distintos na ordem da primeira
// aparição no arquivo
func (d *Dataset) Products() []string {
	seen := make(map[string]bool, 8)
	products := make([]string, 0, 8)

	for _, record := range d.Records {
		if !seen[record.Product] {
			seen[record.Product] = true
			products = append(products, record.Product)
		}
	}

	return products
}

// ExpiredAt informa se o dataset passou do tempo de vida configurado
func (d *Dataset) ExpiredAt(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(d.UploadedAt) > ttl
}
