package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/importing"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
)

// DatasetStore é o subconjunto do repositório usado pelos handlers de
// consulta e remoção de datasets
type DatasetStore interface {
	GetByID(id string) (*domain.Dataset, error)
	Delete(id string) error
}

// uploadResponse é devolvida após um upload aceito
type uploadResponse struct {
	DatasetID   string   `json:"dataset_id"`
	Filename    string   `json:"filename,omitempty"`
	TotalRows   int      `json:"total_rows"`
	ValidRows   int      `json:"valid_rows"`
	DroppedRows int      `json:"dropped_rows"`
	Products    []string `json:"products"`
}

// UploadDataset recebe um CSV (multipart ou corpo puro) e cria um dataset.
// O parâmetro opcional replace identifica o dataset anterior da sessão, que
// é substituído somente se a importação for aceita.
func UploadDataset(importer importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, filename, err := openUploadedFile(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não foi possível ler o arquivo enviado", nil)
			return
		}
		defer file.Close()

		replaceID := r.URL.Query().Get("replace")

		result, err := importer.ImportCSV(file, filename, replaceID)
		if err != nil {
			writeImportError(w, err)
			return
		}

		response := uploadResponse{
			DatasetID:   result.Dataset.ID,
			Filename:    result.Dataset.Filename,
			TotalRows:   result.TotalRows,
			ValidRows:   len(result.Dataset.Records),
			DroppedRows: result.DroppedRows,
			Products:    result.Dataset.Products(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Error("upload: erro ao codificar resposta")
		}
	}
}

// GetDatasetProducts lista os rótulos de produto do dataset, na ordem da
// primeira aparição, para montar o seletor de filtro
func GetDatasetProducts(datasets DatasetStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do dataset não fornecido", nil)
			return
		}

		dataset, err := datasets.GetByID(id)
		if err != nil {
			if errors.Is(err, repository.ErrDatasetNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, "Dataset não encontrado ou expirado", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar dataset", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"dataset_id": dataset.ID,
			"products":   dataset.Products(),
		}); err != nil {
			logrus.WithError(err).Error("products: erro ao codificar resposta")
		}
	}
}

// DeleteDataset descarta um dataset antes do TTL
func DeleteDataset(datasets DatasetStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do dataset não fornecido", nil)
			return
		}

		if err := datasets.Delete(id); err != nil {
			if errors.Is(err, repository.ErrDatasetNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, "Dataset não encontrado ou expirado", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao remover dataset", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// openUploadedFile aceita tanto multipart (campo "file") quanto o corpo puro
// da requisição com o CSV
func openUploadedFile(r *http.Request) (io.ReadCloser, string, error) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.Body, "", nil
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, "", err
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", err
	}

	return file, header.Filename, nil
}

// writeImportError traduz os erros da importação para o código de API
func writeImportError(w http.ResponseWriter, err error) {
	var missingErr *importing.MissingColumnsError

	switch {
	case errors.As(err, &missingErr):
		apiErrors.WriteError(w, apiErrors.ErrMissingColumn,
			"El archivo debe incluir fecha y ventas.", missingErr.Fields)
	case errors.Is(err, importing.ErrFileTooLarge):
		apiErrors.WriteError(w, apiErrors.ErrFileFormat,
			"El archivo supera el tamaño máximo permitido.", nil)
	case errors.Is(err, importing.ErrNoDataRows):
		apiErrors.WriteError(w, apiErrors.ErrFileFormat,
			"El archivo no contiene datos válidos.", nil)
	case errors.Is(err, importing.ErrUnreadableFile):
		apiErrors.WriteError(w, apiErrors.ErrFileFormat,
			"No se pudo leer el archivo.", nil)
	case errors.Is(err, importing.ErrNoValidRows):
		apiErrors.WriteError(w, apiErrors.ErrNoValidRows,
			"No se encontraron filas válidas.", nil)
	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer,
			"Error procesando el archivo.", nil)
	}
}
