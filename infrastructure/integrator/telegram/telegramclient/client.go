package telegramclient

import (
	"fmt"
	"net/http"
	"time"

	"github.com/vfg2006/ad-monitor-worker/internal/config"
	"github.com/vfg2006/ad-monitor-worker/internal/domain"
)

type Client interface {
	SendMessage(channel domain.TelegramChannel, text string) error
}

type TelegramClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &TelegramClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// DeliveryError indica que a API do Bot recusou a mensagem; o corpo da
// resposta é preservado como diagnóstico
type DeliveryError struct {
	Body string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("telegram: falha ao enviar mensagem: %s", e.Body)
}
