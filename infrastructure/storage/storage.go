package storage

import "context"

// Row é uma linha de uma coleção, indexada pelo nome da coluna. Colunas
// ausentes são tratadas como string vazia.
type Row map[string]string

// Collection descreve uma coleção persistida e a ordem das suas colunas.
type Collection struct {
	Name    string
	Columns []string
}

// Coleções persistidas pela aplicação. A ordem das colunas define o
// cabeçalho dos arquivos e o esquema das tabelas.
var (
	Teams    = Collection{Name: "equipes", Columns: []string{"equipe"}}
	Users    = Collection{Name: "usuarios", Columns: []string{"nome", "email", "equipe"}}
	Goals    = Collection{Name: "metas", Columns: []string{"id", "equipe", "responsavel", "meta_crucial", "prazo", "indicador", "meta_final"}}
	Measures = Collection{Name: "medidas", Columns: []string{"id", "responsavel", "meta_crucial", "medida_direcao", "frequencia"}}
	Weeks    = Collection{Name: "semanas", Columns: []string{"responsavel", "meta_crucial", "semana_ref", "feito", "planejado", "concluido"}}
)

// All lista todas as coleções conhecidas, na ordem de inicialização.
func All() []Collection {
	return []Collection{Teams, Users, Goals, Measures, Weeks}
}

//go:generate mockgen -source=storage.go -destination=mocks/gateway.go -package=mocks

// Gateway é a porta de persistência das coleções. As implementações devem
// garantir substituição atômica da coleção inteira em WriteAll e tratar
// uma coleção inexistente como vazia em Read (inicializando o esquema
// esperado quando fizer sentido para o backend).
type Gateway interface {
	Read(ctx context.Context, col Collection) ([]Row, error)
	WriteAll(ctx context.Context, col Collection, rows []Row) error
	Exists(ctx context.Context, col Collection) (bool, error)
}
