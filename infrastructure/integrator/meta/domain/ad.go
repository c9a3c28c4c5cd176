package metadomain

// Ad é o anúncio como devolvido pelo endpoint /act_<id>/ads, já com o
// recorte de insights embutido. Campos folha ausentes recebem valores
// padrão na deserialização tolerante do metaclient.
type Ad struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Status          string          `json:"status"`
	EffectiveStatus string          `json:"effective_status"`
	Insights        *AdInsights     `json:"insights,omitempty"`
	CostPerActions  []CostPerAction `json:"cost_per_action_type"`
}

type AdInsights struct {
	Impressions int64   `json:"impressions"`
	Reach       int64   `json:"reach"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Spend       float64 `json:"spend"`
}

type CostPerAction struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// AdAccount é a resposta do endpoint /act_<id> com os campos de saldo.
// O saldo chega em unidades menores da moeda (ex.: centavos, satangs).
type AdAccount struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	AccountStatus int64   `json:"account_status"`
	Currency      string  `json:"currency"`
	Balance       float64 `json:"balance"`
}
