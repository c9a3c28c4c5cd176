package domain

import "strconv"

// Status de anúncio reportados pela plataforma. EffectiveStatus é o estado
// calculado pela plataforma (reflete pausas no nível da campanha), distinto
// do campo Status do próprio anúncio.
const (
	AdStatusActive         = "ACTIVE"
	AdStatusPaused         = "PAUSED"
	AdStatusDisapproved    = "DISAPPROVED"
	AdStatusCampaignPaused = "CAMPAIGN_PAUSED"
)

// AdInsights é o recorte de métricas do anúncio na janela de relatório atual
type AdInsights struct {
	Impressions int64   `json:"impressions"`
	Reach       int64   `json:"reach"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Spend       float64 `json:"spend"`
}

// CostPerAction é o custo por tipo de ação como reportado pela plataforma.
// O valor chega como string e pode estar ausente ou mal formado.
type CostPerAction struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Ad representa um anúncio no ciclo atual. Criado a cada busca, nunca
// comparado com ciclos anteriores.
type Ad struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Status          string          `json:"status"`
	EffectiveStatus string          `json:"effective_status"`
	Insights        *AdInsights     `json:"insights,omitempty"`
	CostPerActions  []CostPerAction `json:"cost_per_action_type"`
}

// CostPerAction retorna o custo por ação do tipo rastreado. Entradas
// ausentes ou não numéricas valem 0.
func (a *Ad) CostPerAction(actionType string) float64 {
	for _, action := range a.CostPerActions {
		if action.ActionType != actionType {
			continue
		}

		value, err := strconv.ParseFloat(action.Value, 64)
		if err != nil {
			return 0
		}

		return value
	}

	return 0
}

// AccountBalance é o saldo da conta de anúncios pronto para exibição
type AccountBalance struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	Currency       string `json:"currency"`
	AvailableFunds string `json:"available_funds"`
}
