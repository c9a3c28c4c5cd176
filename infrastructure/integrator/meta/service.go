package meta

import (
	"fmt"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-monitor-worker/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-monitor-worker/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-monitor-worker/internal/config"
	"github.com/vfg2006/ad-monitor-worker/internal/domain"
	"github.com/vfg2006/ad-monitor-worker/pkg/utils"
)

// Símbolos das moedas usadas pelas contas monitoradas. Moedas fora do mapa
// usam o código ISO como prefixo.
var currencySymbols = map[string]string{
	"THB": "฿",
	"BRL": "R$",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetAdsByAccount busca os anúncios da conta no ciclo atual
func (s *MetaIntegrator) GetAdsByAccount(account *domain.MonitoredAccount) ([]domain.Ad, error) {
	resp, err := s.Client.GetAdsByAccountID(account)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.AccountID,
			"error":      err.Error(),
		}).Error("meta: falha ao buscar anúncios da conta")
		return nil, err
	}

	ads := make([]domain.Ad, 0, len(resp))
	for _, ad := range resp {
		ads = append(ads, factoryAd(ad))
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.AccountID,
		"ads":        len(ads),
	}).Debug("meta: anúncios da conta recuperados")

	return ads, nil
}

// UpdateAdStatus aplica o status alvo nos anúncios cujo nome contém o filtro
func (s *MetaIntegrator) UpdateAdStatus(account *domain.MonitoredAccount, nameFilter, status string) ([]domain.Ad, error) {
	resp, err := s.Client.UpdateAdStatus(account, nameFilter, status)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.AccountID,
			"ad_name":    nameFilter,
			"status":     status,
			"error":      err.Error(),
		}).Error("meta: falha ao atualizar status de anúncio")
		return nil, err
	}

	ads := make([]domain.Ad, 0, len(resp))
	for _, ad := range resp {
		ads = append(ads, factoryAd(ad))
	}

	return ads, nil
}

// GetAccountBalance lê o saldo da conta e o converte para exibição. O valor
// bruto vem em unidades menores da moeda e é dividido por 100.
func (s *MetaIntegrator) GetAccountBalance(account *domain.MonitoredAccount) (*domain.AccountBalance, error) {
	resp, err := s.Client.GetAdAccountByID(account)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.AccountID,
			"error":      err.Error(),
		}).Error("meta: falha ao buscar saldo da conta")
		return nil, err
	}

	status := "Inactive"
	if resp.AccountStatus == 1 {
		status = "Active"
	}

	return &domain.AccountBalance{
		ID:             resp.ID,
		Name:           resp.Name,
		Status:         status,
		Currency:       resp.Currency,
		AvailableFunds: FormatAvailableFunds(resp.Balance, resp.Currency),
	}, nil
}

// FormatAvailableFunds formata o saldo em unidades inteiras da moeda com o
// símbolo correspondente como prefixo
func FormatAvailableFunds(rawBalance float64, currency string) string {
	balanceInCurrency := utils.RoundWithTwoDecimalPlace(rawBalance / 100.0)

	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}

	return fmt.Sprintf("%s%.2f", symbol, balanceInCurrency)
}

func factoryAd(ad metadomain.Ad) domain.Ad {
	result := domain.Ad{
		ID:              ad.ID,
		Name:            ad.Name,
		Status:          ad.Status,
		EffectiveStatus: ad.EffectiveStatus,
	}

	if ad.Insights != nil {
		result.Insights = &domain.AdInsights{
			Impressions: ad.Insights.Impressions,
			Reach:       ad.Insights.Reach,
			Clicks:      ad.Insights.Clicks,
			Conversions: ad.Insights.Conversions,
			Spend:       ad.Insights.Spend,
		}
	}

	for _, action := range ad.CostPerActions {
		result.CostPerActions = append(result.CostPerActions, domain.CostPerAction{
			ActionType: action.ActionType,
			Value:      action.Value,
		})
	}

	return result
}
