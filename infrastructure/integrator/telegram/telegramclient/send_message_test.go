package telegramclient

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-monitor-worker/internal/config"
	"github.com/vfg2006/ad-monitor-worker/internal/domain"
)

func newTestClient(serverURL string) Client {
	cfg := &config.Config{}
	cfg.Telegram.BaseURL = serverURL

	return NewClient(cfg)
}

func TestTelegramClient_SendMessage(t *testing.T) {
	var gotPath string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	channel := domain.TelegramChannel{BotToken: "bot-token", ChatID: -100123}

	err := client.SendMessage(channel, "💰 Account balance act_123: ฿1500.00")
	assert.NoError(t, err)

	assert.Equal(t, "/botbot-token/sendMessage", gotPath)

	var payload map[string]interface{}
	assert.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, float64(-100123), payload["chat_id"])
	assert.Equal(t, "💰 Account balance act_123: ฿1500.00", payload["text"])
	assert.Equal(t, "HTML", payload["parse_mode"])
}

func TestTelegramClient_SendMessage_RespostaNao2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok": false, "description": "Bad Request: chat not found"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.SendMessage(domain.TelegramChannel{BotToken: "bot-token", ChatID: 1}, "oi")
	assert.Error(t, err)

	var deliveryErr *DeliveryError
	assert.ErrorAs(t, err, &deliveryErr)
	assert.Contains(t, deliveryErr.Body, "chat not found")
}
