package worker

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-monitor-worker/infrastructure/repository"
	"github.com/vfg2006/ad-monitor-worker/internal/config"
	"github.com/vfg2006/ad-monitor-worker/internal/domain"
)

// AccountProcessor executa o ciclo de uma conta: busca anúncios, decide por
// anúncio, aplica mudanças na plataforma, agrega as mensagens em uma única
// notificação e grava o snapshot de métricas.
type AccountProcessor struct {
	platform          AdPlatform
	notifier          Notifier
	metricsRepo       repository.AccountMetricsRepository
	thresholds        PolicyThresholds
	trackedActionType string
}

func NewAccountProcessor(
	platform AdPlatform,
	notifier Notifier,
	metricsRepo repository.AccountMetricsRepository,
	thresholds PolicyThresholds,
	cfg *config.Config,
) *AccountProcessor {
	return &AccountProcessor{
		platform:          platform,
		notifier:          notifier,
		metricsRepo:       metricsRepo,
		thresholds:        thresholds,
		trackedActionType: cfg.Meta.TrackedActionType,
	}
}

// ProcessAccount executa um ciclo completo para a conta. Erros de upstream
// abortam o ciclo da conta e são propagados ao loop; falhas de entrega de
// notificação são best-effort e apenas logadas.
func (p *AccountProcessor) ProcessAccount(account *domain.MonitoredAccount) error {
	ads, err := p.platform.GetAdsByAccount(account)
	if err != nil {
		return errors.Wrapf(err, "falha ao buscar anúncios da conta %s", account.AccountID)
	}

	if len(ads) == 0 {
		p.notify(account, fmt.Sprintf("🔍 Account %s has no active ads", account.AccountID))
		return nil
	}

	balance, err := p.platform.GetAccountBalance(account)
	if err != nil {
		return errors.Wrapf(err, "falha ao buscar saldo da conta %s", account.AccountID)
	}

	// A notificação de saldo é separada da mensagem agregada de status:
	// duas mensagens por ciclo bem-sucedido, por decisão de produto.
	p.notify(account, fmt.Sprintf("💰 Account balance %s: %s", account.AccountID, balance.AvailableFunds))

	allPaused := true
	messages := make([]string, 0, len(ads)+1)

	// Ordem de avaliação = ordem da resposta da plataforma
	for i := range ads {
		if err := p.processAd(account, &ads[i], &allPaused, &messages); err != nil {
			return err
		}
	}

	if allPaused {
		messages = append(messages, fmt.Sprintf("🚨 Account %s all ads are paused", account.AccountID))
	}

	p.notify(account, strings.Join(messages, "\n"))

	p.recordSnapshot(account, ads)

	return nil
}

func (p *AccountProcessor) processAd(
	account *domain.MonitoredAccount,
	ad *domain.Ad,
	allPaused *bool,
	messages *[]string,
) error {
	eval := EvaluateAd(ad, p.trackedActionType, p.thresholds)

	if eval.ClearsAllPaused {
		*allPaused = false
	}

	if eval.NewStatus != "" {
		if _, err := p.platform.UpdateAdStatus(account, ad.Name, eval.NewStatus); err != nil {
			return errors.Wrapf(err, "falha ao atualizar status do anúncio %s", ad.Name)
		}

		*messages = append(*messages, fmt.Sprintf("🧠 Updated ad status: %s to %s", ad.Name, eval.NewStatus))
	}

	*messages = append(*messages, eval.StatusLine)

	return nil
}

// notify envia uma notificação best-effort: falha de entrega é logada e não
// interrompe o ciclo da conta
func (p *AccountProcessor) notify(account *domain.MonitoredAccount, text string) {
	if err := p.notifier.Send(account.Telegram, text); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.AccountID,
			"chat_id":    account.Telegram.ChatID,
			"error":      err.Error(),
		}).Warn("Falha ao entregar notificação da conta")
	}
}

// recordSnapshot agrega as métricas dos anúncios buscados no ciclo e grava
// um snapshot por conta. Gravação best-effort: nunca bloqueia os caminhos
// de notificação.
func (p *AccountProcessor) recordSnapshot(account *domain.MonitoredAccount, ads []domain.Ad) {
	metrics := &domain.AccountMetrics{
		AccountID: account.AccountID,
	}

	for i := range ads {
		insights := ads[i].Insights
		if insights == nil {
			continue
		}

		metrics.Spend += insights.Spend
		metrics.Impressions += insights.Impressions
		metrics.Clicks += insights.Clicks
		metrics.Conversions += insights.Conversions
	}

	if err := p.metricsRepo.SaveSnapshot(metrics); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.AccountID,
			"error":      err.Error(),
		}).Error("Falha ao gravar snapshot de métricas da conta")
	}
}
