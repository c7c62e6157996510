package csvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metas4dx/metas-4dx-api/infrastructure/storage"
)

func TestStore_ReadInicializaColecaoAusente(t *testing.T) {
	ctx := context.Background()
	store, err := New(t.TempDir())
	require.NoError(t, err)

	rows, err := store.Read(ctx, storage.Teams)
	assert.NoError(t, err)
	assert.Empty(t, rows)

	// A primeira leitura deve ter criado o arquivo com o cabeçalho esperado
	content, err := os.ReadFile(filepath.Join(store.dataDir, "equipes.csv"))
	require.NoError(t, err)
	assert.Equal(t, "equipe\n", string(content))

	exists, err := store.Exists(ctx, storage.Teams)
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestStore_WriteAllRead(t *testing.T) {
	ctx := context.Background()
	store, err := New(t.TempDir())
	require.NoError(t, err)

	rows := []storage.Row{
		{"nome": "Ana", "email": "ana@empresa.com", "equipe": "Vendas"},
		{"nome": "Bruno", "email": "bruno@empresa.com", "equipe": "Marketing"},
	}

	require.NoError(t, store.WriteAll(ctx, storage.Users, rows))

	got, err := store.Read(ctx, storage.Users)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestStore_WriteAllSubstituiColecaoInteira(t *testing.T) {
	ctx := context.Background()
	store, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.WriteAll(ctx, storage.Teams, []storage.Row{
		{"equipe": "Vendas"},
		{"equipe": "Marketing"},
	}))
	require.NoError(t, store.WriteAll(ctx, storage.Teams, []storage.Row{
		{"equipe": "Financeiro"},
	}))

	got, err := store.Read(ctx, storage.Teams)
	require.NoError(t, err)
	assert.Equal(t, []storage.Row{{"equipe": "Financeiro"}}, got)
}

func TestStore_ReadToleraBOMEMLinhasCurtas(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	// Arquivo gravado por outra ferramenta: BOM no cabeçalho e uma linha
	// com menos células que o cabeçalho
	raw := utf8BOM + "nome,email,equipe\nAna,ana@empresa.com,Vendas\nBruno\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "usuarios.csv"), []byte(raw), 0o644))

	rows, err := store.Read(ctx, storage.Users)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Ana", rows[0]["nome"])
	assert.Equal(t, "Vendas", rows[0]["equipe"])
	assert.Equal(t, "Bruno", rows[1]["nome"])
	assert.Equal(t, "", rows[1]["email"])
}

func TestStore_ExistsColecaoAusente(t *testing.T) {
	ctx := context.Background()
	store, err := New(t.TempDir())
	require.NoError(t, err)

	exists, err := store.Exists(ctx, storage.Weeks)
	assert.NoError(t, err)
	assert.False(t, exists)
}
