package worker

import (
	"fmt"

	"github.com/vfg2006/ad-monitor-worker/internal/domain"
)

// PolicyThresholds é a política de custo vigente para toda a execução.
// Carregada uma vez na inicialização; mudar o teto exige reiniciar o
// processo.
type PolicyThresholds struct {
	MaxCostPerAction float64
}

// Evaluation é o resultado de avaliar um anúncio contra a política.
// NewStatus vazio significa nenhuma mudança de status.
type Evaluation struct {
	NewStatus       string
	StatusLine      string
	Disapproved     bool
	ClearsAllPaused bool
}

// EvaluateAd decide o destino de um anúncio a partir do seu próprio estado
// e custo por ação. Função pura: sem I/O, sem estado compartilhado, e a
// decisão nunca depende de outros anúncios da conta.
func EvaluateAd(ad *domain.Ad, trackedActionType string, thresholds PolicyThresholds) Evaluation {
	// Anúncio reprovado tem prioridade: nenhuma mudança de status e o
	// flag de "todos pausados" da conta não é tocado.
	if ad.EffectiveStatus == domain.AdStatusDisapproved {
		return Evaluation{
			Disapproved: true,
			StatusLine:  fmt.Sprintf("❌ Ad disapproved: %s waiting for deletion", ad.Name),
		}
	}

	eval := Evaluation{
		// Um anúncio que não está pausado pela campanha desqualifica o
		// aviso de "todos pausados" do ciclo.
		ClearsAllPaused: ad.EffectiveStatus != domain.AdStatusCampaignPaused,
	}

	costPerAction := ad.CostPerAction(trackedActionType)

	// As regras de fechar e abrir são mutuamente exclusivas por construção
	// (ACTIVE/ACTIVE vs PAUSED/PAUSED).
	if shouldCloseAd(ad, costPerAction, thresholds) {
		eval.NewStatus = domain.AdStatusPaused
	} else if shouldOpenAd(ad, costPerAction, thresholds) {
		eval.NewStatus = domain.AdStatusActive
	}

	// A linha de status independe de ter havido mudança
	if ad.Status == domain.AdStatusPaused || ad.EffectiveStatus == domain.AdStatusCampaignPaused {
		eval.StatusLine = fmt.Sprintf("❌ Ad paused: %s:💰%v", ad.Name, costPerAction)
	} else {
		eval.StatusLine = fmt.Sprintf("🟢 Ad active: %s:💰%v", ad.Name, costPerAction)
	}

	return eval
}

func shouldCloseAd(ad *domain.Ad, costPerAction float64, thresholds PolicyThresholds) bool {
	return ad.Status == domain.AdStatusActive &&
		ad.EffectiveStatus == domain.AdStatusActive &&
		costPerAction > thresholds.MaxCostPerAction
}

func shouldOpenAd(ad *domain.Ad, costPerAction float64, thresholds PolicyThresholds) bool {
	return ad.Status == domain.AdStatusPaused &&
		ad.EffectiveStatus == domain.AdStatusPaused &&
		costPerAction < thresholds.MaxCostPerAction
}
