package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-monitor-worker/infrastructure/database/postgres"
	"github.com/vfg2006/ad-monitor-worker/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-monitor-worker/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-monitor-worker/infrastructure/integrator/telegram"
	"github.com/vfg2006/ad-monitor-worker/infrastructure/integrator/telegram/telegramclient"
	"github.com/vfg2006/ad-monitor-worker/infrastructure/repository"
	"github.com/vfg2006/ad-monitor-worker/internal/api"
	"github.com/vfg2006/ad-monitor-worker/internal/config"
	"github.com/vfg2006/ad-monitor-worker/internal/worker"
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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	thresholdRepo := repository.NewThresholdRepository(pgConn)
	metricsRepo := repository.NewAccountMetricsRepository(pgConn)

	// Carga inicial: contas e threshold são lidos uma única vez; mudanças
	// exigem reinício do processo. Falha aqui é fatal.
	accounts, err := accountRepo.ListActiveAccounts()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar contas monitoradas")
	}

	if len(accounts) == 0 {
		logrus.Warn("Nenhuma conta monitorada ativa encontrada")
	}

	maxCostPerAction, err := thresholdRepo.GetPolicyThreshold()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar threshold de política")
	}

	logrus.WithFields(logrus.Fields{
		"accounts":            len(accounts),
		"max_cost_per_action": maxCostPerAction,
	}).Info("Configuração de monitoramento carregada do banco")

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	telegramClient := telegramclient.NewClient(cfg)
	telegramIntegrator := telegram.New(cfg, telegramClient)

	processor := worker.NewAccountProcessor(
		metaIntegrator,
		telegramIntegrator,
		metricsRepo,
		worker.PolicyThresholds{MaxCostPerAction: maxCostPerAction},
		cfg,
	)

	monitorService := worker.NewMonitorService(
		accounts,
		processor,
		telegramIntegrator,
		cfg,
	)

	// Inicia o monitor em background
	if err := monitorService.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar o monitor de contas")
	}
	logrus.Info("Monitor de contas iniciado com sucesso")

	server, err := api.New(cfg)
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

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
