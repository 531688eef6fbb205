package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS sales_report_snapshots (
		id                     VARCHAR(32) PRIMARY KEY,
		provenance             VARCHAR(16) NOT NULL,
		delivered_orders       INTEGER NOT NULL DEFAULT 0,
		canceled_orders        INTEGER NOT NULL DEFAULT 0,
		pending_orders         INTEGER NOT NULL DEFAULT 0,
		total_delivered_amount NUMERIC NOT NULL DEFAULT 0,
		total_canceled_amount  NUMERIC NOT NULL DEFAULT 0,
		top_product_ids        BIGINT[] NOT NULL DEFAULT '{}',
		payload                JSONB,
		created_at             TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_report_snapshots_created_at
		ON sales_report_snapshots (created_at DESC)`,
	// somas sem limite de precisão
	`ALTER TABLE sales_report_snapshots
		ALTER COLUMN total_delivered_amount TYPE NUMERIC,
		ALTER COLUMN total_canceled_amount TYPE NUMERIC`,
}

// Migrate cria as tabelas do serviço. Pode ser executado a cada inicialização.
func (c *Connection) Migrate(ctx context.Context) error {
	err := c.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, statement := range schemaStatements {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("erro ao executar migração %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("statements", len(schemaStatements)).Info("Migrações do banco aplicadas")
	return nil
}
