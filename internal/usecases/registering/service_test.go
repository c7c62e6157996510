package registering

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metas4dx/metas-4dx-api/infrastructure/repository"
	"github.com/metas4dx/metas-4dx-api/infrastructure/storage/csvstore"
	"github.com/metas4dx/metas-4dx-api/internal/domain"
)

func newTestService(t *testing.T) Registrar {
	t.Helper()

	store, err := csvstore.New(t.TempDir())
	require.NoError(t, err)

	return NewService(
		repository.NewTeamRepository(store),
		repository.NewUserRepository(store),
	)
}

func TestService_CreateTeam(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func(t *testing.T, service Registrar)
		teamName string
		wantErr  error
		validate func(t *testing.T, service Registrar)
	}{
		{
			name:     "Equipe nova é cadastrada",
			teamName: "Vendas",
			validate: func(t *testing.T, service Registrar) {
				teams, err := service.ListTeams(ctx)
				require.NoError(t, err)
				assert.Equal(t, []domain.Team{{Name: "Vendas"}}, teams)
			},
		},
		{
			name: "Nome duplicado aborta sem escrita",
			setup: func(t *testing.T, service Registrar) {
				_, err := service.CreateTeam(ctx, "Vendas")
				require.NoError(t, err)
			},
			teamName: "Vendas",
			wantErr:  ErrTeamAlreadyExists,
			validate: func(t *testing.T, service Registrar) {
				teams, err := service.ListTeams(ctx)
				require.NoError(t, err)
				assert.Len(t, teams, 1)
			},
		},
		{
			name:     "Nome em branco é rejeitado",
			teamName: "   ",
			wantErr:  ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(t)
			if tt.setup != nil {
				tt.setup(t, service)
			}

			team, err := service.CreateTeam(ctx, tt.teamName)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, team)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.teamName, team.Name)
			}

			if tt.validate != nil {
				tt.validate(t, service)
			}
		})
	}
}

func TestService_CreateUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(t *testing.T, service Registrar)
		user    domain.User
		wantErr error
	}{
		{
			name: "Usuário novo é cadastrado",
			user: domain.User{Name: "Ana", Email: "ana@empresa.com", Team: "Vendas"},
		},
		{
			name: "Email duplicado aborta a operação",
			setup: func(t *testing.T, service Registrar) {
				_, err := service.CreateUser(ctx, domain.User{
					Name:  "Ana",
					Email: "ana@empresa.com",
					Team:  "Vendas",
				})
				require.NoError(t, err)
			},
			user:    domain.User{Name: "Outra Ana", Email: "ana@empresa.com", Team: "Marketing"},
			wantErr: ErrUserAlreadyExists,
		},
		{
			name:    "Email em branco é rejeitado",
			user:    domain.User{Name: "Ana", Email: "  "},
			wantErr: ErrMissingRequiredData,
		},
		{
			name:    "Nome em branco é rejeitado",
			user:    domain.User{Name: "", Email: "ana@empresa.com"},
			wantErr: ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(t)
			if tt.setup != nil {
				tt.setup(t, service)
			}

			user, err := service.CreateUser(ctx, tt.user)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.user.Email, user.Email)
			}
		})
	}
}

func TestService_UsersOfTeam(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	for _, user := range []domain.User{
		{Name: "Ana", Email: "ana@empresa.com", Team: "Vendas"},
		{Name: "Bruno", Email: "bruno@empresa.com", Team: "Marketing"},
		{Name: "Carla", Email: "carla@empresa.com", Team: "Vendas"},
	} {
		_, err := service.CreateUser(ctx, user)
		require.NoError(t, err)
	}

	users, err := service.UsersOfTeam(ctx, "Vendas")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ana", users[0].Name)
	assert.Equal(t, "Carla", users[1].Name)
}
