package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/messaging"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/statistics"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const syncTimeout = 2 * time.Minute

// ReportSnapshotSyncConfig representa a configuração do agendador de snapshots
type ReportSnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ReportSnapshotSyncService gera periodicamente um snapshot do relatório de
// vendas, salva no banco e publica um evento
type ReportSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportSnapshotSyncConfig
	statisticsService   statistics.StatisticsService
	snapshotRepo        repository.ReportSnapshotRepository
	publisher           messaging.EventPublisher
	generateID          func() (string, error)
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSnapshotID      string
}

func NewReportSnapshotSyncService(
	statisticsService statistics.StatisticsService,
	snapshotRepo repository.ReportSnapshotRepository,
	publisher messaging.EventPublisher,
	appConfig *config.Config,
) *ReportSnapshotSyncService {
	syncConfig := ReportSnapshotSyncConfig{
		CronSchedule: appConfig.ReportSnapshotSync.CronSchedule,
		SyncEnabled:  appConfig.ReportSnapshotSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots carregada")

	if publisher == nil {
		publisher = messaging.NoopPublisher{}
	}

	return &ReportSnapshotSyncService{
		scheduler:         gocron.NewScheduler(time.Local),
		config:            syncConfig,
		statisticsService: statisticsService,
		snapshotRepo:      snapshotRepo,
		publisher:         publisher,
		generateID:        utils.GenerateID,
		now:               time.Now,
	}
}

// Start inicia o agendador
func (s *ReportSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots do relatório de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSync()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

// runSync executa uma sincronização por vez
func (s *ReportSnapshotSyncService) runSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshot já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	if err := s.SyncReportSnapshot(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao sincronizar snapshot do relatório de vendas")
		return
	}

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()
}

// SyncReportSnapshot gera um relatório novo, salva o snapshot e publica o evento.
// Falha na publicação não desfaz o snapshot salvo.
func (s *ReportSnapshotSyncService) SyncReportSnapshot(ctx context.Context) error {
	startTime := s.now()

	report, err := s.statisticsService.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("erro ao gerar relatório: %w", err)
	}

	snapshot, err := s.buildSnapshot(report)
	if err != nil {
		return err
	}

	if err := s.snapshotRepo.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("erro ao salvar snapshot %s: %w", snapshot.ID, err)
	}

	event := messaging.ReportSnapshotCreated{
		SnapshotID:           snapshot.ID,
		Provenance:           string(snapshot.Provenance),
		DeliveredOrders:      snapshot.DeliveredOrders,
		CanceledOrders:       snapshot.CanceledOrders,
		PendingOrders:        snapshot.PendingOrders,
		TotalDeliveredAmount: snapshot.TotalDeliveredAmount.StringFixed(2),
		TotalCanceledAmount:  snapshot.TotalCanceledAmount.StringFixed(2),
		TopProductIDs:        snapshot.TopProductIDs,
		CreatedAt:            snapshot.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, messaging.RoutingKeyReportSnapshotCreated, event); err != nil {
		logrus.WithError(err).WithField("snapshot_id", snapshot.ID).Warn("Erro ao publicar evento de snapshot")
	}

	s.syncMutex.Lock()
	s.lastSnapshotID = snapshot.ID
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"provenance":  snapshot.Provenance,
		"orders":      report.TotalOrders(),
		"duration":    s.now().Sub(startTime).String(),
	}).Info("Snapshot do relatório de vendas salvo")

	return nil
}

func (s *ReportSnapshotSyncService) buildSnapshot(report *domain.SalesReport) (*domain.ReportSnapshot, error) {
	id, err := s.generateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do snapshot: %w", err)
	}

	top := statistics.Top(report.SoldByQuantity(), statistics.DefaultLimit)
	productIDs := make([]int64, 0, len(top))
	for _, stat := range top {
		productIDs = append(productIDs, int64(stat.ProductID))
	}

	return &domain.ReportSnapshot{
		ID:                   id,
		Provenance:           report.Provenance,
		DeliveredOrders:      report.DeliveredOrders,
		CanceledOrders:       report.CanceledOrders,
		PendingOrders:        report.PendingOrders,
		TotalDeliveredAmount: report.TotalDeliveredAmount,
		TotalCanceledAmount:  report.TotalCanceledAmount,
		TopProductIDs:        productIDs,
		Report:               report,
		CreatedAt:            s.now(),
	}, nil
}

// TriggerManualSync inicia manualmente uma sincronização de snapshot
func (s *ReportSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshot já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshot")
	go s.runSync()
}

// GetStatus retorna o status atual do agendador
func (s *ReportSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_snapshot_id":       s.lastSnapshotID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
