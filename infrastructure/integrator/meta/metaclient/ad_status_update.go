package metaclient

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-monitor-worker/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-monitor-worker/internal/domain"
)

// UpdateAdStatus localiza os anúncios cujo nome contém o filtro e aplica o
// status alvo em cada um cujo effective_status ainda difere dele. Sinônimos
// de status (a/active, p/paused) são normalizados; qualquer outro valor é
// rejeitado com metadomain.ErrInvalidStatus.
func (c *MetaClient) UpdateAdStatus(account *domain.MonitoredAccount, nameFilter, status string) ([]metadomain.Ad, error) {
	targetStatus, err := metadomain.NormalizeStatus(status)
	if err != nil {
		return nil, err
	}

	baseURL := fmt.Sprintf("%s/act_%s/ads", c.Cfg.Meta.URL, account.AccountID)

	params := url.Values{}
	params.Add("fields", "id,name,status,effective_status")
	params.Add("filtering", fmt.Sprintf("[{'field':'name','operator':'CONTAIN','value':'%s'}]", nameFilter))
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

	updatedAds := make([]metadomain.Ad, 0)

	for _, rawAd := range asArray(payload, "data") {
		ad, ok := rawAd.(map[string]interface{})
		if !ok {
			continue
		}

		if asString(ad, "effective_status") == targetStatus {
			continue
		}

		adID := asString(ad, "id")
		if err := c.postAdStatus(account, adID, targetStatus); err != nil {
			return nil, err
		}

		updatedAds = append(updatedAds, metadomain.Ad{
			ID:              adID,
			Name:            asString(ad, "name"),
			Status:          targetStatus,
			EffectiveStatus: targetStatus,
		})
	}

	return updatedAds, nil
}

func (c *MetaClient) postAdStatus(account *domain.MonitoredAccount, adID, status string) error {
	updateURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, adID)

	params := url.Values{}
	params.Add("status", status)
	params.Add("access_token", account.AccessToken)

	req, err := http.NewRequest(http.MethodPost, updateURL+"?"+params.Encode(), nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição de atualização")
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao atualizar status do anúncio")
		return err
	}
	defer resp.Body.Close()

	if _, err := c.HandleResponse(resp); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"ad_id":  adID,
		"status": status,
	}).Info("Status do anúncio atualizado na Graph API")

	return nil
}
