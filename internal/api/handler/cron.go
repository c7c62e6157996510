package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/metas4dx/metas-4dx-api/internal/scheduler"
	"github.com/metas4dx/metas-4dx-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeBackup = "backup"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	BackupSyncService *scheduler.BackupSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeBackup:
			if services.BackupSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de backup não disponível", nil)
				return
			}
			services.BackupSyncService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job desconhecido", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]string{"status": "disparado"}); err != nil {
			logrus.Error(err)
		}
	}
}

// GetCronStatus retorna o estado corrente dos agendadores
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.BackupSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de backup não disponível", nil)
			return
		}

		status := map[string]scheduler.BackupSyncStatus{
			CronJobTypeBackup: services.BackupSyncService.Status(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
