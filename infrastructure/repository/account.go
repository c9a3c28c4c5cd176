package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/ad-monitor-worker/infrastructure/database/postgres"
	"github.com/vfg2006/ad-monitor-worker/internal/domain"
)

const (
	accountsTable         = "monitored_accounts ma"
	telegramChannelsTable = "telegram_channels tc"
)

type AccountRepository interface {
	ListActiveAccounts() ([]*domain.MonitoredAccount, error)
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

// ListActiveAccounts retorna as contas monitoradas ativas com o canal do
// Telegram de cada uma, na ordem em que serão processadas a cada ciclo.
func (a *accountRepository) ListActiveAccounts() ([]*domain.MonitoredAccount, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select("ma.id, ma.access_token, ma.account_id, ma.is_active, ma.polling_interval, tc.bot_token, tc.chat_id").
		From(accountsTable).
		Join("telegram_channels tc ON ma.telegram_channel_id = tc.id").
		Where(squirrel.Eq{"ma.is_active": true}).
		OrderBy("ma.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := a.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.MonitoredAccount, 0)

	for rows.Next() {
		acc, err := a.deserializeAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conta monitorada: %w", err)
		}

		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func (a *accountRepository) deserializeAccount(rows *sql.Rows) (*domain.MonitoredAccount, error) {
	acc := &domain.MonitoredAccount{}

	if err := rows.Scan(
		&acc.ID,
		&acc.AccessToken,
		&acc.AccountID,
		&acc.IsActive,
		&acc.IntervalMinutes,
		&acc.Telegram.BotToken,
		&acc.Telegram.ChatID,
	); err != nil {
		return nil, err
	}

	return acc, nil
}
