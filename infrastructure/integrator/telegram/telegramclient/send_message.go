package telegramclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-monitor-worker/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type sendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage envia uma mensagem de texto para o chat do canal informado.
// Resposta não-2xx vira DeliveryError com o corpo como diagnóstico.
func (c *TelegramClient) SendMessage(channel domain.TelegramChannel, text string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", c.config.Telegram.BaseURL, channel.BotToken)

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    channel.ChatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("erro ao serializar mensagem: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao enviar mensagem ao Telegram")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			body = []byte("Unknown error")
		}

		return &DeliveryError{Body: string(body)}
	}

	logrus.WithField("chat_id", channel.ChatID).Debug("Mensagem enviada ao Telegram")

	return nil
}
