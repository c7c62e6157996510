package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/metas4dx/metas-4dx-api/infrastructure/storage"
	"github.com/metas4dx/metas-4dx-api/infrastructure/storage/mocks"
)

func TestBackupSyncService_runBackup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func(source, target *mocks.MockGateway)
		validate func(t *testing.T, status BackupSyncStatus)
	}{
		{
			name: "Todas as coleções são copiadas para o backup",
			setup: func(source, target *mocks.MockGateway) {
				for _, col := range storage.All() {
					rows := []storage.Row{{col.Columns[0]: "valor"}}
					source.EXPECT().Read(gomock.Any(), col).Return(rows, nil)
					target.EXPECT().WriteAll(gomock.Any(), col, rows).Return(nil)
				}
			},
			validate: func(t *testing.T, status BackupSyncStatus) {
				assert.False(t, status.Running)
				assert.Empty(t, status.LastError)
				assert.NotNil(t, status.LastStartedAt)
				assert.NotNil(t, status.LastCompletedAt)
			},
		},
		{
			name: "Falha em uma coleção não impede o backup das demais",
			setup: func(source, target *mocks.MockGateway) {
				for _, col := range storage.All() {
					if col.Name == storage.Teams.Name {
						source.EXPECT().Read(gomock.Any(), col).Return(nil, errors.New("disco cheio"))
						continue
					}
					rows := []storage.Row{{col.Columns[0]: "valor"}}
					source.EXPECT().Read(gomock.Any(), col).Return(rows, nil)
					target.EXPECT().WriteAll(gomock.Any(), col, rows).Return(nil)
				}
			},
			validate: func(t *testing.T, status BackupSyncStatus) {
				assert.False(t, status.Running)
				assert.Contains(t, status.LastError, "equipes")
			},
		},
		{
			name: "Falha de escrita no destino é registrada no status",
			setup: func(source, target *mocks.MockGateway) {
				for _, col := range storage.All() {
					rows := []storage.Row{{col.Columns[0]: "valor"}}
					source.EXPECT().Read(gomock.Any(), col).Return(rows, nil)
					if col.Name == storage.Weeks.Name {
						target.EXPECT().WriteAll(gomock.Any(), col, rows).Return(errors.New("sem permissão"))
						continue
					}
					target.EXPECT().WriteAll(gomock.Any(), col, rows).Return(nil)
				}
			},
			validate: func(t *testing.T, status BackupSyncStatus) {
				assert.Contains(t, status.LastError, "semanas")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := mocks.NewMockGateway(ctrl)
			target := mocks.NewMockGateway(ctrl)
			tt.setup(source, target)

			service := &BackupSyncService{
				source: source,
				target: target,
			}

			service.runBackup(ctx)
			tt.validate(t, service.Status())
		})
	}
}

func TestBackupSyncService_StatusInicial(t *testing.T) {
	service := &BackupSyncService{}

	status := service.Status()
	assert.False(t, status.Running)
	assert.Nil(t, status.LastStartedAt)
	assert.Nil(t, status.LastCompletedAt)
	assert.Empty(t, status.LastError)
}
