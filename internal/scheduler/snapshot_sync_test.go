package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/estoquelab/painel-vendas-api/infrastructure/integrator/backoffice/mocks"
	"github.com/estoquelab/painel-vendas-api/internal/config"
	"github.com/estoquelab/painel-vendas-api/internal/snapshot"
	"github.com/estoquelab/painel-vendas-api/internal/usecases/analyzing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(t *testing.T, enabled bool) (*SnapshotSyncService, *mocks.MockIntegrator) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)

	cfg := &config.Config{
		SnapshotSync: config.SnapshotSync{
			CronSchedule: "*/15 * * * *",
			Enabled:      enabled,
		},
	}

	analyzer := analyzing.NewService(cfg, integrator, snapshot.NewStore())
	return NewSnapshotSyncService(analyzer, cfg), integrator
}

func TestSnapshotSyncService_StartDesabilitado(t *testing.T) {
	service, _ := newTestSyncService(t, false)

	// Desabilitado: nada é agendado e nenhum fetch acontece
	err := service.Start(context.Background())
	require.NoError(t, err)

	status := service.Status()
	assert.Equal(t, false, status["enabled"])
	assert.Equal(t, "*/15 * * * *", status["cron_schedule"])
	assert.NotContains(t, status, "last_sync_started_at")
}

func TestSnapshotSyncService_RunSyncAtualizaOStatus(t *testing.T) {
	service, integrator := newTestSyncService(t, true)

	integrator.EXPECT().ListProducts(gomock.Any()).Return(nil, nil)
	integrator.EXPECT().ListSales(gomock.Any(), nil).Return(nil, nil)

	service.runSync(context.Background())

	status := service.Status()
	assert.Equal(t, false, status["running"])
	assert.Contains(t, status, "last_sync_started_at")
	assert.Contains(t, status, "last_sync_completed_at")
	assert.NotContains(t, status, "last_sync_error")
}

func TestSnapshotSyncService_RunSyncRegistraErro(t *testing.T) {
	service, integrator := newTestSyncService(t, true)

	integrator.EXPECT().ListProducts(gomock.Any()).Return(nil, assert.AnError)
	integrator.EXPECT().ListSales(gomock.Any(), nil).Return(nil, nil)

	service.runSync(context.Background())

	status := service.Status()
	assert.Contains(t, status, "last_sync_error")
}

func TestSnapshotSyncService_ExecucoesSobrepostasSaoIgnoradas(t *testing.T) {
	service, _ := newTestSyncService(t, true)

	service.syncMutex.Lock()
	service.syncRunning = true
	service.syncMutex.Unlock()

	// Com um sync em andamento a chamada retorna sem tocar o integrador
	done := make(chan struct{})
	go func() {
		service.runSync(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runSync deveria retornar imediatamente com outro sync em andamento")
	}
}
