package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/metas4dx/metas-4dx-api/infrastructure/storage"
)

// Store implementa o Gateway sobre tabelas indexadas no PostgreSQL: uma
// tabela por coleção, com uma coluna serial "seq" preservando a ordem de
// inserção e uma coluna text por coluna lógica. WriteAll substitui a
// coleção inteira dentro de uma transação, mantendo a semântica atômica
// dos arquivos CSV.
type Store struct {
	conn *Connection
}

func NewStore(conn *Connection) *Store {
	return &Store{conn: conn}
}

func (s *Store) Read(ctx context.Context, col storage.Collection) ([]storage.Row, error) {
	if err := s.ensureTable(ctx, col); err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Select(col.Columns...).
		From(col.Name).
		OrderBy("seq ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler coleção %s", col.Name)
	}
	defer rows.Close()

	var result []storage.Row
	values := make([]sql.NullString, len(col.Columns))
	scanArgs := make([]interface{}, len(col.Columns))
	for i := range values {
		scanArgs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, errors.Wrapf(err, "erro ao processar linha de %s", col.Name)
		}

		row := storage.Row{}
		for i, column := range col.Columns {
			row[column] = values[i].String
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "erro durante iteração de %s", col.Name)
	}

	return result, nil
}

func (s *Store) WriteAll(ctx context.Context, col storage.Collection, rows []storage.Row) error {
	if err := s.ensureTable(ctx, col); err != nil {
		return err
	}

	return s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", col.Name)); err != nil {
			return errors.Wrapf(err, "erro ao limpar coleção %s", col.Name)
		}

		if len(rows) == 0 {
			return nil
		}

		builder := squirrel.
			Insert(col.Name).
			Columns(col.Columns...).
			PlaceholderFormat(squirrel.Dollar)

		for _, row := range rows {
			values := make([]interface{}, len(col.Columns))
			for i, column := range col.Columns {
				values[i] = row[column]
			}
			builder = builder.Values(values...)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir insert")
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrapf(err, "erro ao gravar coleção %s", col.Name)
		}

		return nil
	})
}

func (s *Store) Exists(ctx context.Context, col storage.Collection) (bool, error) {
	var exists bool
	err := s.conn.QueryRowContext(
		ctx,
		"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)",
		col.Name,
	).Scan(&exists)
	if err != nil {
		return false, errors.Wrapf(err, "erro ao verificar coleção %s", col.Name)
	}
	return exists, nil
}

func (s *Store) ensureTable(ctx context.Context, col storage.Collection) error {
	columns := make([]string, 0, len(col.Columns)+1)
	columns = append(columns, "seq SERIAL PRIMARY KEY")
	for _, column := range col.Columns {
		columns = append(columns, fmt.Sprintf("%s TEXT NOT NULL DEFAULT ''", column))
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", col.Name, strings.Join(columns, ", "))
	if _, err := s.conn.ExecContext(ctx, ddl); err != nil {
		return errors.Wrapf(err, "erro ao inicializar coleção %s", col.Name)
	}

	return nil
}
