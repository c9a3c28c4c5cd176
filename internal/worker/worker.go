// Package worker contém o loop de monitoramento de contas de anúncios e as
// regras de decisão por anúncio
package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-monitor-worker/internal/config"
	"github.com/vfg2006/ad-monitor-worker/internal/domain"
)

type MonitorConfig struct {
	IntervalSeconds int
	Enabled         bool
}

// MonitorService percorre todas as contas monitoradas a cada ciclo, em
// ordem de carregamento, isolando falhas por conta. A lista de contas é a
// carregada na inicialização do processo.
type MonitorService struct {
	scheduler            *gocron.Scheduler
	processor            Processor
	notifier             Notifier
	accounts             []*domain.MonitoredAccount
	config               MonitorConfig
	cycleRunning         bool
	cycleMutex           sync.Mutex
	lastCycleStartedAt   time.Time
	lastCycleCompletedAt time.Time
}

func NewMonitorService(
	accounts []*domain.MonitoredAccount,
	processor Processor,
	notifier Notifier,
	cfg *config.Config,
) *MonitorService {
	monitorConfig := MonitorConfig{
		IntervalSeconds: cfg.Monitor.IntervalSeconds, // Default: 30 minutos
		Enabled:         cfg.Monitor.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"interval_seconds": monitorConfig.IntervalSeconds,
		"accounts":         len(accounts),
	}).Info("Configuração do monitor de contas carregada")

	return &MonitorService{
		scheduler: scheduler,
		processor: processor,
		notifier:  notifier,
		accounts:  accounts,
		config:    monitorConfig,
	}
}

func (s *MonitorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Monitor de contas desabilitado por configuração")
		return nil
	}

	logrus.WithField("interval_seconds", s.config.IntervalSeconds).Info("Iniciando monitor de contas")

	// Agendar o ciclo de monitoramento em cadência fixa; SingletonMode
	// garante que um ciclo lento não sobreponha o próximo
	_, err := s.scheduler.
		Every(s.config.IntervalSeconds).
		Seconds().
		SingletonMode().
		Do(func() {
			if err := s.RunCycle(); err != nil {
				logrus.WithError(err).Error("Erro no ciclo de monitoramento")
			}
		})
	if err != nil {
		return fmt.Errorf("erro ao agendar ciclo de monitoramento: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando monitor de contas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunCycle executa uma passada completa: processa cada conta em sequência,
// na ordem de carregamento. A falha de uma conta não pula nem reordena as
// seguintes.
func (s *MonitorService) RunCycle() error {
	s.cycleMutex.Lock()
	defer s.cycleMutex.Unlock()

	if s.cycleRunning {
		logrus.Warn("Ciclo de monitoramento já está em execução")
		return nil
	}

	s.cycleRunning = true
	s.lastCycleStartedAt = time.Now()
	defer func() {
		s.cycleRunning = false
		s.lastCycleCompletedAt = time.Now()
	}()

	cycleID := uuid.New().String()
	logger := logrus.WithField("cycle_id", cycleID)

	logger.WithField("accounts", len(s.accounts)).Info("Iniciando ciclo de monitoramento")

	for _, account := range s.accounts {
		if err := s.processor.ProcessAccount(account); err != nil {
			logger.WithFields(logrus.Fields{
				"account_id": account.AccountID,
				"error":      err.Error(),
			}).Error("Erro ao processar conta monitorada")

			// Notificação de erro best-effort: falha no envio não é
			// reenviada nem escalada
			errText := fmt.Sprintf("🚨 Error in account %s: %v", account.AccountID, err)
			if sendErr := s.notifier.Send(account.Telegram, errText); sendErr != nil {
				logger.WithFields(logrus.Fields{
					"account_id": account.AccountID,
					"error":      sendErr.Error(),
				}).Warn("Falha ao notificar erro da conta")
			}
		}
	}

	logger.Info("Ciclo de monitoramento concluído")

	return nil
}

// TriggerManualCycle dispara manualmente um ciclo de monitoramento
func (s *MonitorService) TriggerManualCycle() {
	s.cycleMutex.Lock()
	if s.cycleRunning {
		s.cycleMutex.Unlock()
		logrus.Info("Ciclo de monitoramento já em andamento, ignorando solicitação manual")
		return
	}
	s.cycleMutex.Unlock()

	logrus.Info("Iniciando ciclo manual de monitoramento")
	go s.RunCycle()
}

// GetStatus retorna o status atual do monitor
func (s *MonitorService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":                 s.config.Enabled,
		"interval_seconds":        s.config.IntervalSeconds,
		"accounts":                len(s.accounts),
		"last_cycle_started_at":   s.lastCycleStartedAt,
		"last_cycle_completed_at": s.lastCycleCompletedAt,
	}
}
