package metaclient

import (
	"fmt"
	"io"
	"net/http"
	"time"

	metadomain "github.com/vfg2006/ad-monitor-worker/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-monitor-worker/internal/config"
	"github.com/vfg2006/ad-monitor-worker/internal/domain"
)

type Client interface {
	GetAdsByAccountID(account *domain.MonitoredAccount) ([]metadomain.Ad, error)
	UpdateAdStatus(account *domain.MonitoredAccount, nameFilter, status string) ([]metadomain.Ad, error)
	GetAdAccountByID(account *domain.MonitoredAccount) (*metadomain.AdAccount, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	client := &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	return client
}

// HandleResponse manipula a resposta HTTP da Graph API. Respostas não-2xx
// são convertidas no envelope de erro do Meta quando possível.
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return body, nil
	}

	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error.Message != "" {
		return nil, fmt.Errorf(
			"erro na resposta da API do Meta. Status: %d, Código: %d, Mensagem: %s",
			resp.StatusCode, errorResp.Error.Code, errorResp.Error.Message,
		)
	}

	return nil, fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", resp.StatusCode, string(body))
}
