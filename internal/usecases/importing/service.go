package importing

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// ImportResult resume uma importação bem sucedida
type ImportResult struct {
	Dataset     *domain.Dataset `json:"dataset"`
	TotalRows   int             `json:"total_rows"`
	DroppedRows int             `json:"dropped_rows"`
}

// Importer transforma o texto cru de um upload em um Dataset normalizado
type Importer interface {
	// ImportCSV processa um arquivo e registra o dataset resultante.
	// Quando replaceID é informado, o dataset anterior daquela sessão é
	// removido, mas somente após o novo ser aceito: uma importação que
	// falha deixa o dataset anterior intacto.
	ImportCSV(r io.Reader, filename string, replaceID string) (*ImportResult, error)
}

type Service struct {
	datasetRepo repository.DatasetRepository
	maxBytes    int64
	now         func() time.Time
}

// NewService cria o serviço de importação
func NewService(datasetRepo repository.DatasetRepository, cfg *config.Config) Importer {
	return &Service{
		datasetRepo: datasetRepo,
		maxBytes:    cfg.Upload.MaxBytes,
		now:         time.Now,
	}
}

func (s *Service) ImportCSV(r io.Reader, filename string, replaceID string) (*ImportResult, error) {
	// Arquivo acima do limite é rejeitado inteiro: truncar aceitaria um
	// dataset parcial e os indicadores sairiam errados em silêncio
	if s.maxBytes > 0 {
		buffered, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
		}
		if int64(len(buffered)) > s.maxBytes {
			return nil, ErrFileTooLarge
		}
		r = bytes.NewReader(buffered)
	}

	table, err := parseTable(r)
	if err != nil {
		return nil, err
	}

	mapping, err := resolveColumns(table.Headers)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"filename": filename,
			"headers":  table.Headers,
		}).Warn("import: cabeçalho sem colunas obrigatórias")
		return nil, err
	}

	records, dropped := normalizeRows(table, mapping)
	if len(records) == 0 {
		return nil, ErrNoValidRows
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	dataset := &domain.Dataset{
		ID:         id,
		Filename:   filename,
		Records:    records,
		UploadedAt: s.now(),
	}

	if err := s.datasetRepo.Save(dataset); err != nil {
		return nil, err
	}

	// Substituição só depois do novo dataset estar salvo
	if replaceID != "" && replaceID != id {
		if err := s.datasetRepo.Delete(replaceID); err != nil {
			logrus.WithError(err).WithField("dataset_id", replaceID).
				Warn("import: não foi possível remover o dataset substituído")
		}
	}

	logrus.WithFields(logrus.Fields{
		"dataset_id":   id,
		"filename":     filename,
		"rows_total":   len(table.Rows),
		"rows_valid":   len(records),
		"rows_dropped": dropped,
	}).Info("import: dataset importado com sucesso")

	return &ImportResult{
		Dataset:     dataset,
		TotalRows:   len(table.Rows),
		DroppedRows: dropped,
	}, nil
}
