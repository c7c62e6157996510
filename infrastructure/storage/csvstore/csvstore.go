package csvstore

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/metas4dx/metas-4dx-api/infrastructure/storage"
)

const utf8BOM = "\ufeff"

// Store persiste cada coleção como um arquivo CSV com linha de cabeçalho
// dentro de um diretório de dados. A escrita substitui a coleção inteira
// via arquivo temporário + rename, para nunca deixar um CSV truncado.
type Store struct {
	dataDir string
}

func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "erro ao criar diretório de dados")
	}
	return &Store{dataDir: dataDir}, nil
}

func (s *Store) path(col storage.Collection) string {
	return filepath.Join(s.dataDir, col.Name+".csv")
}

// Read carrega todas as linhas da coleção. Arquivo inexistente não é erro:
// a coleção é inicializada vazia com o cabeçalho esperado.
func (s *Store) Read(_ context.Context, col storage.Collection) ([]storage.Row, error) {
	f, err := os.Open(s.path(col))
	if os.IsNotExist(err) {
		if initErr := s.init(col); initErr != nil {
			return nil, initErr
		}
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir coleção %s", col.Name)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler coleção %s", col.Name)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// A primeira célula pode carregar um BOM gravado por outras ferramentas
	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	rows := make([]storage.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := storage.Row{}
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// WriteAll substitui a coleção inteira. A gravação acontece em um arquivo
// temporário no mesmo diretório e só então é renomeada sobre o definitivo.
func (s *Store) WriteAll(_ context.Context, col storage.Collection, rows []storage.Row) error {
	tmp, err := os.CreateTemp(s.dataDir, col.Name+"-*.tmp")
	if err != nil {
		return errors.Wrapf(err, "erro ao criar arquivo temporário para %s", col.Name)
	}
	tmpName := tmp.Name()

	writer := csv.NewWriter(tmp)
	if err := writer.Write(col.Columns); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "erro ao gravar cabeçalho de %s", col.Name)
	}

	for _, row := range rows {
		record := make([]string, len(col.Columns))
		for i, column := range col.Columns {
			record[i] = row[column]
		}
		if err := writer.Write(record); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return errors.Wrapf(err, "erro ao gravar linha de %s", col.Name)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "erro ao finalizar escrita de %s", col.Name)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "erro ao fechar arquivo temporário de %s", col.Name)
	}

	if err := os.Rename(tmpName, s.path(col)); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "erro ao substituir coleção %s", col.Name)
	}

	return nil
}

func (s *Store) Exists(_ context.Context, col storage.Collection) (bool, error) {
	_, err := os.Stat(s.path(col))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "erro ao verificar coleção %s", col.Name)
	}
	return true, nil
}

func (s *Store) init(col storage.Collection) error {
	logrus.WithField("collection", col.Name).Info("Inicializando coleção vazia")
	return s.WriteAll(context.Background(), col, nil)
}
