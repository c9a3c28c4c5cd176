package postgres

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/lib/pq"
	"github.com/vfg2006/ad-monitor-worker/internal/config"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
}

// Connection é o recurso compartilhado do processo. O acesso é serializado:
// apenas uma operação lógica (leitura de contas, leitura de threshold,
// gravação de snapshot) executa por vez contra a conexão.
type Connection struct {
	db *sql.DB
	mu sync.Mutex
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Connection{db: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *Connection) Close() error {
	return c.db.Close()
}

func (c *Connection) Exec(query string, args ...interface{}) (sql.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.db.Exec(query, args...)
}

func (c *Connection) Query(query string, args ...interface{}) (*sql.Rows, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.db.Query(query, args...)
}

func (c *Connection) QueryRow(query string, args ...interface{}) *sql.Row {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.db.QueryRow(query, args...)
}
