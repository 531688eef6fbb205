package main

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/backend"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/backend/backendclient"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/messaging"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/categorizing"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/statistics"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	snapshotRepo := repository.NewReportSnapshotRepository(pgConn)

	backendClient := backendclient.NewClient(cfg)
	backendIntegrator := backend.New(backendClient)

	policy, err := statistics.ParseEstimationPolicy(cfg.Statistics.EstimationMode, cfg.Statistics.EstimationSeed)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.WithField("policy", policy.String()).Info("Política de estimativa configurada")

	reportCache := cache.NewReportCache(cfg.Cache)
	statisticsService := statistics.NewService(backendIntegrator, reportCache, policy, cfg.Statistics.CacheTTL)
	profileService := categorizing.NewService(backendIntegrator)

	publisher := messaging.NewPublisher(cfg.Messaging)

	snapshotSyncService := scheduler.NewReportSnapshotSyncService(
		statisticsService,
		snapshotRepo,
		publisher,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots")
	} else {
		logrus.Info("Agendador de snapshots iniciado com sucesso")
	}

	cleanups := []func() error{publisher.Close}
	if closer, ok := reportCache.(io.Closer); ok {
		cleanups = append(cleanups, closer.Close)
	}
	cleanups = append(cleanups, pgConn.Close)

	server, err := api.New(
		cfg,
		api.Services{
			Statistics: statisticsService,
			Profiles:   profileService,
			Snapshots:  snapshotRepo,
			CronServices: handler.CronJobServices{
				ReportSnapshotSyncService: snapshotSyncService,
			},
		},
		cleanups...,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn conecta no PostgreSQL e aplica as migrações
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Migrate(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações no PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
