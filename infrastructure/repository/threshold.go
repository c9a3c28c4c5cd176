package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-monitor-worker/infrastructure/database/postgres"
)

const thresholdsTable = "ad_policy_thresholds"

type ThresholdRepository interface {
	GetPolicyThreshold() (float64, error)
}

type thresholdRepository struct {
	conn *postgres.Connection
}

func NewThresholdRepository(conn *postgres.Connection) ThresholdRepository {
	return &thresholdRepository{
		conn: conn,
	}
}

// GetPolicyThreshold lê o teto global de custo por ação. Existe exatamente
// um threshold vigente por execução; alterações exigem reinício do processo.
func (t *thresholdRepository) GetPolicyThreshold() (float64, error) {
	thresholdSQL, thresholdArgs, err := squirrel.
		Select("max_cost_per_action").
		From(thresholdsTable).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := t.conn.QueryRow(thresholdSQL, thresholdArgs...)

	var maxCostPerAction float64
	if err := row.Scan(&maxCostPerAction); err != nil {
		return 0, fmt.Errorf("erro ao ler o threshold de política: %w", err)
	}

	return maxCostPerAction, nil
}
