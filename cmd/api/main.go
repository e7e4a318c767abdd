package main

import (
	"context"
	"time"

	"github.com/estoquelab/painel-vendas-api/infrastructure/integrator/backoffice"
	"github.com/estoquelab/painel-vendas-api/infrastructure/integrator/backoffice/backofficeclient"
	"github.com/estoquelab/painel-vendas-api/internal/api"
	"github.com/estoquelab/painel-vendas-api/internal/config"
	"github.com/estoquelab/painel-vendas-api/internal/scheduler"
	"github.com/estoquelab/painel-vendas-api/internal/snapshot"
	"github.com/estoquelab/painel-vendas-api/internal/usecases/analyzing"
	"github.com/estoquelab/painel-vendas-api/internal/usecases/cataloging"
	"github.com/estoquelab/painel-vendas-api/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backofficeClient := backofficeclient.NewClient(cfg)
	backofficeIntegrator := backoffice.New(cfg, backofficeClient)

	store := snapshot.NewStore()

	analyzer := analyzing.NewService(cfg, backofficeIntegrator, store)
	cataloger := cataloging.NewService(cfg, backofficeIntegrator, analyzer)
	reporter := reporting.NewService(cfg, reporting.NewBarChartRenderer())

	// Primeiro snapshot em background: o servidor sobe mesmo com o
	// backoffice fora do ar e os handlers tentam de novo sob demanda.
	go func() {
		if err := analyzer.Refresh(ctx); err != nil {
			logrus.WithError(err).Warn("Carga inicial do snapshot falhou, nova tentativa na primeira requisição")
		}
	}()

	snapshotSyncService := scheduler.NewSnapshotSyncService(analyzer, cfg)
	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de refresh do snapshot")
	} else {
		logrus.Info("Agendador de refresh do snapshot iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyzer,
		cataloger,
		reporter,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
