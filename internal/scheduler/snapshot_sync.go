package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/estoquelab/painel-vendas-api/internal/config"
	"github.com/estoquelab/painel-vendas-api/internal/usecases/analyzing"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// SnapshotSyncConfig representa a configuração do agendador de refresh
// do snapshot
type SnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SnapshotSyncService agenda o refresh periódico do snapshot de
// produtos e vendas, além de permitir a execução manual via API.
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotSyncConfig
	analyzer            analyzing.Analyzer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewSnapshotSyncService cria uma nova instância do serviço de
// sincronização do snapshot
func NewSnapshotSyncService(analyzer analyzing.Analyzer, appConfig *config.Config) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule: appConfig.SnapshotSync.CronSchedule,
		SyncEnabled:  appConfig.SnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de refresh do snapshot carregada")

	return &SnapshotSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		analyzer:  analyzer,
	}
}

// Start inicia o agendador
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Refresh periódico do snapshot desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de refresh do snapshot")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSync(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar refresh do snapshot: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de refresh do snapshot")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara um refresh fora do agendamento
func (s *SnapshotSyncService) TriggerManualSync() {
	go s.runSync(context.Background())
}

// runSync executa um refresh completo, ignorando disparos sobrepostos
func (s *SnapshotSyncService) runSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Refresh do snapshot já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando refresh agendado do snapshot")

	if err := s.analyzer.Refresh(ctx); err != nil {
		logrus.WithError(err).Error("Erro no refresh agendado do snapshot")

		s.syncMutex.Lock()
		s.lastSyncError = err.Error()
		s.syncMutex.Unlock()
		return
	}

	s.syncMutex.Lock()
	s.lastSyncError = ""
	s.syncMutex.Unlock()

	logrus.Info("Refresh agendado do snapshot concluído com sucesso")
}

// Status devolve o estado corrente do agendador para a API
func (s *SnapshotSyncService) Status() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"enabled":       s.config.SyncEnabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.syncRunning,
	}

	if !s.lastSyncStartedAt.IsZero() {
		status["last_sync_started_at"] = s.lastSyncStartedAt.Format(time.RFC3339)
	}

	if !s.lastSyncCompletedAt.IsZero() {
		status["last_sync_completed_at"] = s.lastSyncCompletedAt.Format(time.RFC3339)
	}

	if s.lastSyncError != "" {
		status["last_sync_error"] = s.lastSyncError
	}

	return status
}
