package telegram

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-monitor-worker/infrastructure/integrator/telegram/telegramclient"
	"github.com/vfg2006/ad-monitor-worker/internal/config"
	"github.com/vfg2006/ad-monitor-worker/internal/domain"
)

type TelegramIntegrator struct {
	cfg    *config.Config
	Client telegramclient.Client
}

func New(cfg *config.Config, client telegramclient.Client) *TelegramIntegrator {
	return &TelegramIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// Send entrega uma notificação de texto ao canal de destino da conta
func (s *TelegramIntegrator) Send(channel domain.TelegramChannel, text string) error {
	if err := s.Client.SendMessage(channel, text); err != nil {
		logrus.WithFields(logrus.Fields{
			"chat_id": channel.ChatID,
			"error":   err.Error(),
		}).Error("telegram: falha na entrega da notificação")
		return err
	}

	return nil
}
