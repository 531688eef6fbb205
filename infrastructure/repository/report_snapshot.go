// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	reportSnapshotTable = "sales_report_snapshots"
)

var reportSnapshotColumns = []string{
	"id",
	"provenance",
	"delivered_orders",
	"canceled_orders",
	"pending_orders",
	"total_delivered_amount",
	"total_canceled_amount",
	"top_product_ids",
	"payload",
	"created_at",
}

//go:generate mockgen -source=report_snapshot.go -destination=mocks/report_snapshot.go -package=mocks

type ReportSnapshotRepository interface {
	Save(ctx context.Context, snapshot *domain.ReportSnapshot) error
	// GetLatest retorna nil, nil quando ainda não existe snapshot
	GetLatest(ctx context.Context) (*domain.ReportSnapshot, error)
}

type reportSnapshotRepository struct {
	conn *postgres.Connection
}

func NewReportSnapshotRepository(conn *postgres.Connection) ReportSnapshotRepository {
	return &reportSnapshotRepository{
		conn: conn,
	}
}

func (r *reportSnapshotRepository) Save(ctx context.Context, snapshot *domain.ReportSnapshot) error {
	if snapshot == nil {
		return errors.New("snapshot não pode ser nulo")
	}

	payload, err := json.Marshal(snapshot.Report)
	if err != nil {
		return fmt.Errorf("erro ao serializar relatório: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(reportSnapshotTable).
		Columns(reportSnapshotColumns...).
		Values(
			snapshot.ID,
			string(snapshot.Provenance),
			snapshot.DeliveredOrders,
			snapshot.CanceledOrders,
			snapshot.PendingOrders,
			snapshot.TotalDeliveredAmount,
			snapshot.TotalCanceledAmount,
			pq.Array(snapshot.TopProductIDs),
			payload,
			snapshot.CreatedAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar snapshot: %w", err)
	}

	return nil
}

func (r *reportSnapshotRepository) GetLatest(ctx context.Context) (*domain.ReportSnapshot, error) {
	query, args, err := squirrel.
		Select(reportSnapshotColumns...).
		From(reportSnapshotTable).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		snapshot   domain.ReportSnapshot
		provenance string
		payload    []byte
		productIDs pq.Int64Array
	)

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&snapshot.ID,
		&provenance,
		&snapshot.DeliveredOrders,
		&snapshot.CanceledOrders,
		&snapshot.PendingOrders,
		&snapshot.TotalDeliveredAmount,
		&snapshot.TotalCanceledAmount,
		&productIDs,
		&payload,
		&snapshot.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	snapshot.Provenance = domain.Provenance(provenance)
	snapshot.TopProductIDs = []int64(productIDs)

	if len(payload) > 0 {
		var report domain.SalesReport
		if err := json.Unmarshal(payload, &report); err != nil {
			return nil, fmt.Errorf("erro ao decodificar relatório do snapshot: %w", err)
		}
		snapshot.Report = &report
	}

	return &snapshot, nil
}
