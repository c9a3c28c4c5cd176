package metaclient

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-monitor-worker/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-monitor-worker/internal/domain"
)

const accountFields = "balance,name,id,account_status,currency"

// GetAdAccountByID lê os campos de saldo da conta. O balance vem em
// unidades menores da moeda e como número ou string numérica conforme a
// versão da API.
func (c *MetaClient) GetAdAccountByID(account *domain.MonitoredAccount) (*metadomain.AdAccount, error) {
	baseURL := fmt.Sprintf("%s/act_%s", c.Cfg.Meta.URL, account.AccountID)

	params := url.Values{}
	params.Add("fields", accountFields)
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

	return &metadomain.AdAccount{
		ID:            asString(payload, "id"),
		Name:          asString(payload, "name"),
		AccountStatus: asInt64(payload, "account_status"),
		Currency:      asString(payload, "currency"),
		Balance:       asFloat64(payload, "balance"),
	}, nil
}
