package metaclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ad-monitor-worker/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-monitor-worker/internal/config"
	"github.com/vfg2006/ad-monitor-worker/internal/domain"
)

func newTestClient(serverURL string) Client {
	cfg := &config.Config{}
	cfg.Meta.URL = serverURL
	cfg.Meta.TrackedActionType = "offsite_conversion.fb_pixel_custom"

	return NewClient(cfg)
}

func testAccount() *domain.MonitoredAccount {
	return &domain.MonitoredAccount{
		ID:          1,
		AccountID:   "123",
		AccessToken: "token-123",
	}
}

func TestMetaClient_GetAdsByAccountID(t *testing.T) {
	payload := `{
		"data": [
			{
				"id": "ad1",
				"name": "A",
				"status": "ACTIVE",
				"effective_status": "ACTIVE",
				"insights": {
					"data": [
						{
							"impressions": "100",
							"reach": "80",
							"clicks": "10",
							"spend": "14.4",
							"cost_per_action_type": [
								{"action_type": "offsite_conversion.fb_pixel_custom", "value": "7.2"},
								{"action_type": "link_click", "value": "1.44"}
							],
							"actions": [
								{"action_type": "offsite_conversion.fb_pixel_custom", "value": "2"}
							]
						}
					]
				}
			},
			{
				"id": "ad2",
				"name": "B",
				"status": "PAUSED",
				"effective_status": "PAUSED"
			}
		]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/act_123/ads", r.URL.Path)
		assert.Equal(t, "token-123", r.URL.Query().Get("access_token"))
		assert.Contains(t, r.URL.Query().Get("fields"), "cost_per_action_type")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ads, err := client.GetAdsByAccountID(testAccount())
	assert.NoError(t, err)
	assert.Len(t, ads, 2)

	assert.Equal(t, "ad1", ads[0].ID)
	assert.Equal(t, "A", ads[0].Name)
	assert.Equal(t, "ACTIVE", ads[0].Status)
	assert.Equal(t, int64(100), ads[0].Insights.Impressions)
	assert.Equal(t, int64(80), ads[0].Insights.Reach)
	assert.Equal(t, int64(10), ads[0].Insights.Clicks)
	assert.Equal(t, int64(2), ads[0].Insights.Conversions)
	assert.InDelta(t, 14.4, ads[0].Insights.Spend, 0.0001)
	assert.Equal(t, []metadomain.CostPerAction{
		{ActionType: "offsite_conversion.fb_pixel_custom", Value: "7.2"},
	}, ads[0].CostPerActions)

	// Campos folha ausentes recebem valores padrão, nunca erro
	assert.Equal(t, "ad2", ads[1].ID)
	assert.Equal(t, int64(0), ads[1].Insights.Impressions)
	assert.InDelta(t, 0.0, ads[1].Insights.Spend, 0.0001)
	assert.Equal(t, []metadomain.CostPerAction{
		{ActionType: "offsite_conversion.fb_pixel_custom", Value: "0"},
	}, ads[1].CostPerActions)
}

func TestMetaClient_GetAdsByAccountID_ListaVazia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ads, err := client.GetAdsByAccountID(testAccount())
	assert.NoError(t, err)
	assert.Empty(t, ads)
}

func TestMetaClient_GetAdsByAccountID_ErroDaGraphAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"message": "Invalid OAuth access token", "type": "OAuthException", "code": 190}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ads, err := client.GetAdsByAccountID(testAccount())
	assert.Error(t, err)
	assert.Nil(t, ads)
	assert.Contains(t, err.Error(), "Invalid OAuth access token")
}

func TestMetaClient_GetAdsByAccountID_JSONInvalido(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetAdsByAccountID(testAccount())
	assert.Error(t, err)
}

func TestMetaClient_UpdateAdStatus(t *testing.T) {
	var postedIDs []string
	var postedStatuses []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/act_123/ads":
			assert.Contains(t, r.URL.Query().Get("filtering"), "'value':'A'")
			// ad1 ainda ativo, ad2 já está no status alvo
			w.Write([]byte(`{
				"data": [
					{"id": "ad1", "name": "A", "status": "ACTIVE", "effective_status": "ACTIVE"},
					{"id": "ad2", "name": "A copy", "status": "PAUSED", "effective_status": "PAUSED"}
				]
			}`))
		case r.Method == http.MethodPost:
			postedIDs = append(postedIDs, r.URL.Path)
			postedStatuses = append(postedStatuses, r.URL.Query().Get("status"))
			w.Write([]byte(`{"success": true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	updated, err := client.UpdateAdStatus(testAccount(), "A", "PAUSED")
	assert.NoError(t, err)

	// Só o anúncio cujo effective_status difere do alvo é atualizado
	assert.Len(t, updated, 1)
	assert.Equal(t, "ad1", updated[0].ID)
	assert.Equal(t, "PAUSED", updated[0].Status)
	assert.Equal(t, "PAUSED", updated[0].EffectiveStatus)

	assert.Equal(t, []string{"/ad1"}, postedIDs)
	assert.Equal(t, []string{"PAUSED"}, postedStatuses)
}

func TestMetaClient_UpdateAdStatus_SinonimosDeStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Write([]byte(`{"data": [{"id": "ad1", "name": "A", "status": "PAUSED", "effective_status": "PAUSED"}]}`))
			return
		}
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	updated, err := client.UpdateAdStatus(testAccount(), "A", "a")
	assert.NoError(t, err)
	assert.Len(t, updated, 1)
	assert.Equal(t, "ACTIVE", updated[0].Status)
}

func TestMetaClient_UpdateAdStatus_StatusInvalido(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	// Status fora da enumeração é rejeitado antes de qualquer requisição
	_, err := client.UpdateAdStatus(testAccount(), "A", "deleted")
	assert.ErrorIs(t, err, metadomain.ErrInvalidStatus)
	assert.Equal(t, 0, requests)
}

func TestMetaClient_GetAdAccountByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_123", r.URL.Path)
		assert.Equal(t, accountFields, r.URL.Query().Get("fields"))

		// A Graph API entrega o balance como string numérica em unidades
		// menores da moeda
		w.Write([]byte(`{
			"id": "act_123",
			"name": "Conta Principal",
			"account_status": 1,
			"currency": "THB",
			"balance": "150000"
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	adAccount, err := client.GetAdAccountByID(testAccount())
	assert.NoError(t, err)
	assert.Equal(t, "act_123", adAccount.ID)
	assert.Equal(t, "Conta Principal", adAccount.Name)
	assert.Equal(t, int64(1), adAccount.AccountStatus)
	assert.Equal(t, "THB", adAccount.Currency)
	assert.InDelta(t, 150000.0, adAccount.Balance, 0.0001)
}

func TestMetaClient_GetAdAccountByID_BalanceNumerico(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "act_123", "account_status": 2, "currency": "USD", "balance": 987}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	adAccount, err := client.GetAdAccountByID(testAccount())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), adAccount.AccountStatus)
	assert.InDelta(t, 987.0, adAccount.Balance, 0.0001)
}
