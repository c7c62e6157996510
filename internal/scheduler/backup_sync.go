package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/metas4dx/metas-4dx-api/infrastructure/storage"
	"github.com/metas4dx/metas-4dx-api/internal/config"
	"github.com/metas4dx/metas-4dx-api/pkg/utils"
)

// BackupSyncConfig representa a configuração do agendador de backup
type BackupSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// BackupSyncStatus é o estado corrente do agendador, exposto pela API
type BackupSyncStatus struct {
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	LastError       string     `json:"last_error,omitempty"`
}

// BackupSyncService copia periodicamente todas as coleções do gateway
// primário para um gateway de backup (arquivos CSV em um diretório
// separado). Cada coleção é copiada de forma independente: a falha de uma
// não impede o backup das demais.
type BackupSyncService struct {
	scheduler           *gocron.Scheduler
	config              BackupSyncConfig
	source              storage.Gateway
	target              storage.Gateway
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewBackupSyncService cria uma nova instância do serviço de backup
func NewBackupSyncService(
	source storage.Gateway,
	target storage.Gateway,
	appConfig *config.Config,
) *BackupSyncService {
	syncConfig := BackupSyncConfig{
		CronSchedule: appConfig.BackupSync.CronSchedule,
		SyncEnabled:  appConfig.BackupSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de backup carregada")

	return &BackupSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		source:    source,
		target:    target,
	}
}

// Start inicia o agendador
func (s *BackupSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Backup de coleções desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de backup de coleções")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runBackup(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar backup de coleções: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de backup de coleções")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma execução imediata do backup
func (s *BackupSyncService) TriggerManualSync() {
	go s.runBackup(context.Background())
}

// Status retorna o estado corrente do agendador
func (s *BackupSyncService) Status() BackupSyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := BackupSyncStatus{
		Running:   s.syncRunning,
		LastError: s.lastSyncError,
	}

	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastCompletedAt = &completedAt
	}

	return status
}

// runBackup copia todas as coleções do gateway primário para o de backup
func (s *BackupSyncService) runBackup(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Backup de coleções já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	logrus.Info("Iniciando backup de coleções")

	var failures []string
	for _, col := range storage.All() {
		rows, err := s.source.Read(ctx, col)
		if err != nil {
			logrus.WithError(err).WithField("collection", col.Name).Error("Erro ao ler coleção para backup")
			failures = append(failures, col.Name)
			continue
		}

		if err := s.target.WriteAll(ctx, col, rows); err != nil {
			logrus.WithError(err).WithField("collection", col.Name).Error("Erro ao gravar backup da coleção")
			failures = append(failures, col.Name)
			continue
		}

		logrus.WithFields(logrus.Fields{
			"collection": col.Name,
			"rows":       len(rows),
		}).Debug("Coleção copiada para o backup")
	}

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if len(failures) > 0 {
		s.lastSyncError = fmt.Sprintf("falha no backup das coleções: %v", failures)
	} else {
		s.lastSyncError = ""
	}
	s.syncMutex.Unlock()

	status := s.Status()
	logrus.WithField("duration", time.Since(startTime).String()).Info("Backup de coleções finalizado")
	logrus.Debug(utils.PrettyJson(status))
}
