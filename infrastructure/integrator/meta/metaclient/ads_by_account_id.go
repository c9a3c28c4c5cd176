package metaclient

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-monitor-worker/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-monitor-worker/internal/domain"
)

const adFields = "id,name,status,effective_status,insights.fields(impressions,reach,clicks,spend,cost_per_action_type,actions)"

// GetAdsByAccountID busca os anúncios de uma conta com insights embutidos.
// Falha apenas em erro de transporte, resposta não-2xx ou JSON de topo
// inválido; campos folha ausentes recebem valores padrão.
func (c *MetaClient) GetAdsByAccountID(account *domain.MonitoredAccount) ([]metadomain.Ad, error) {
	baseURL := fmt.Sprintf("%s/act_%s/ads", c.Cfg.Meta.URL, account.AccountID)

	params := url.Values{}
	params.Add("fields", adFields)
	params.Add("access_token", account.AccessToken)

	req, err := http.NewRequest(http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		return nil, err
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	ads := make([]metadomain.Ad, 0)
	for _, rawAd := range asArray(payload, "data") {
		ad, ok := rawAd.(map[string]interface{})
		if !ok {
			continue
		}

		ads = append(ads, c.parseAd(ad))
	}

	return ads, nil
}

func (c *MetaClient) parseAd(raw map[string]interface{}) metadomain.Ad {
	// O recorte de insights chega aninhado em insights.data[0]
	var insightsRaw map[string]interface{}
	if insightsData := asObject(raw, "insights"); insightsData != nil {
		entries := asArray(insightsData, "data")
		if len(entries) > 0 {
			insightsRaw, _ = entries[0].(map[string]interface{})
		}
	}

	trackedType := c.Cfg.Meta.TrackedActionType
	costPerAction := "0"

	insights := &metadomain.AdInsights{}
	if insightsRaw != nil {
		insights.Impressions = asInt64(insightsRaw, "impressions")
		insights.Reach = asInt64(insightsRaw, "reach")
		insights.Clicks = asInt64(insightsRaw, "clicks")
		insights.Spend = asFloat64(insightsRaw, "spend")

		costPerAction = actionValue(asArray(insightsRaw, "cost_per_action_type"), trackedType, "0")

		rawConversions := actionValue(asArray(insightsRaw, "actions"), trackedType, "0")
		if parsed, err := strconv.ParseInt(rawConversions, 10, 64); err == nil {
			insights.Conversions = parsed
		}
	}

	return metadomain.Ad{
		ID:              asString(raw, "id"),
		Name:            asString(raw, "name"),
		Status:          asString(raw, "status"),
		EffectiveStatus: asString(raw, "effective_status"),
		Insights:        insights,
		CostPerActions: []metadomain.CostPerAction{
			{
				ActionType: trackedType,
				Value:      costPerAction,
			},
		},
	}
}
