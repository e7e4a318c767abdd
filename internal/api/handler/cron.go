package handler

import (
	"fmt"
	"net/http"

	"github.com/estoquelab/painel-vendas-api/internal/scheduler"
	"github.com/estoquelab/painel-vendas-api/pkg/apiErrors"
	"github.com/estoquelab/painel-vendas-api/pkg/log"
	"github.com/julienschmidt/httprouter"
)

// CronJobServices agrupa os agendadores expostos pela API
type CronJobServices struct {
	SnapshotSyncService *scheduler.SnapshotSyncService
}

// RunCronJob dispara manualmente um job agendado
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		jobType := params.ByName("type")

		switch jobType {
		case "snapshot":
			services.SnapshotSyncService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, fmt.Sprintf("Job desconhecido: %q", jobType), nil)
			return
		}

		logger.WithField("job", jobType).Info("Execução manual de job disparada")

		writeJSON(w, http.StatusAccepted, map[string]string{
			"status": "triggered",
			"job":    jobType,
		})
	})
}

// GetCronStatus devolve o estado corrente dos agendadores
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"snapshot_sync": services.SnapshotSyncService.Status(),
		})
	})
}
