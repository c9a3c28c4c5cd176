package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ad-monitor-worker/infrastructure/database/postgres"
	"github.com/vfg2006/ad-monitor-worker/internal/domain"
	"github.com/vfg2006/ad-monitor-worker/pkg/utils"
)

const metricsTable = "account_metrics"

type AccountMetricsRepository interface {
	SaveSnapshot(metrics *domain.AccountMetrics) error
}

type accountMetricsRepository struct {
	conn *postgres.Connection
}

func NewAccountMetricsRepository(conn *postgres.Connection) AccountMetricsRepository {
	return &accountMetricsRepository{
		conn: conn,
	}
}

// SaveSnapshot grava o snapshot de métricas de uma conta no ciclo atual.
// Escrita única por conta por ciclo; o core nunca lê de volta.
func (r *accountMetricsRepository) SaveSnapshot(metrics *domain.AccountMetrics) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar id do snapshot: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(metricsTable).
		Columns("id", "account_id", "spend", "impressions", "clicks", "conversions", "created_at").
		Values(
			id,
			metrics.AccountID,
			metrics.Spend,
			metrics.Impressions,
			metrics.Clicks,
			metrics.Conversions,
			squirrel.Expr("NOW()"),
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
